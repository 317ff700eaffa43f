package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/computerscienceiscool/scriptkit/pkg/app"
	"github.com/computerscienceiscool/scriptkit/pkg/config"
)

// initConfig reads the config file. An explicit path must exist; the default
// lookup may find nothing.
func initConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found; using defaults and flags
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// buildConfig constructs a config.Config from Viper values
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		Async:        viper.GetBool("async"),
		LogLevel:     viper.GetString("log-level"),
		Format:       viper.GetString("format"),
		AuditDBPath:  viper.GetString("audit-db"),
		AuditLogPath: viper.GetString("audit-log"),
		HistoryLimit: viper.GetInt("history.limit"),
		EnvFile:      viper.GetString("env.file"),
		DemoDir:      viper.GetString("demo.dir"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp builds the config, bootstraps the app and runs fn against it.
func withApp(fn func(a *app.App) error) error {
	cfg, err := buildConfig()
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	a, err := app.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer a.Close()

	return fn(a)
}
