package config

import "github.com/spf13/viper"

// SetViperDefaults sets all default configuration values in Viper
func SetViperDefaults() {
	viper.SetDefault("async", false)
	viper.SetDefault("log-level", DefaultLogLevel)
	viper.SetDefault("format", DefaultFormat)

	// Audit defaults
	viper.SetDefault("audit-db", DefaultAuditDBPath)
	viper.SetDefault("audit-log", DefaultAuditLogPath)
	viper.SetDefault("history.limit", DefaultHistoryLimit)

	viper.SetDefault("env.file", DefaultEnvFile)
	viper.SetDefault("demo.dir", DefaultDemoDir)
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		Format:       DefaultFormat,
		AuditDBPath:  DefaultAuditDBPath,
		AuditLogPath: DefaultAuditLogPath,
		HistoryLimit: DefaultHistoryLimit,
		EnvFile:      DefaultEnvFile,
		DemoDir:      DefaultDemoDir,
	}
}
