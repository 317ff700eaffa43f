package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scriptkit",
		Short: "Small scripting utilities for project files",
		Long: `scriptkit reads and writes .txt, .json and .rtf files, lists and purges
project trees while skipping service entries (node_modules, .git, .env, ...),
sorts strings with Russian collation and reports identifying env variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().Bool("async", false, "Run file operations through the asynchronous API")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("format", config.DefaultFormat, "Output format (text, json, yaml)")
	root.PersistentFlags().String("audit-db", config.DefaultAuditDBPath, "SQLite database recording every command (disabled when empty)")
	root.PersistentFlags().String("audit-log", config.DefaultAuditLogPath, "JSON lines audit log file (disabled when empty)")
	root.PersistentFlags().String("config", "", "Config file (default: ./scriptkit.config.yaml or $HOME/scriptkit.config.yaml)")

	// Bind flags to viper
	viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		newEnvCmd(),
		newDemoCmd(),
		newSortCmd(),
		newHistoryCmd(),
		newListCmd(),
	)
	root.AddCommand(fileCommands()...)
	return root
}

// setup runs before every subcommand: config file, logging, then settings.
func setup(cmd *cobra.Command, args []string) error {
	if err := initConfig(viper.GetString("config")); err != nil {
		return err
	}
	return logging.Initialize(viper.GetString("log-level"), cmd.ErrOrStderr())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func configureViper() {
	// Set all default values in Viper
	config.SetViperDefaults()

	// Set default config file name
	viper.SetConfigName(config.ConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	// Environment variables use the SCRIPTKIT prefix: SCRIPTKIT_LOG_LEVEL
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func init() {
	configureViper()
}
