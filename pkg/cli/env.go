package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/envreport"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Report NAME, SURNAME, GROUP, NUMBER and MODE from the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			if err := envreport.LoadDotEnv(cfg.EnvFile); err != nil {
				return err
			}
			report, err := envreport.Read()
			if err != nil {
				return err
			}

			if cfg.Format == config.FormatText {
				report.Log(logging.Get("env"))
				return nil
			}
			return render(cmd.OutOrStdout(), cfg.Format, report)
		},
	}
	cmd.Flags().String("env-file", config.DefaultEnvFile, "Optional dotenv file loaded before reading (existing variables win)")
	viper.BindPFlag("env.file", cmd.Flags().Lookup("env-file"))
	return cmd
}
