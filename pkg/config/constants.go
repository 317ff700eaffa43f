package config

// Default values for the scriptkit CLI
const (
	// Config file lookup
	ConfigName = "scriptkit.config"
	EnvPrefix  = "SCRIPTKIT"

	// Output
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultFormat   = FormatText
	DefaultLogLevel = "info"

	// Audit sinks are disabled when their path is empty
	DefaultAuditDBPath  = ""
	DefaultAuditLogPath = ""
	DefaultHistoryLimit = 20

	// Environment reporter
	DefaultEnvFile = ".env"

	// Demo output folder
	DefaultDemoDir = "users"
)
