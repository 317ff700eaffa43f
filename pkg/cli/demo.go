package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/scriptkit/pkg/app"
	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/demo"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the sorted mock users to names.txt and emails.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				result := a.Run(cmd.Context(), "demo", a.GetConfig().DemoDir)
				if !result.Success {
					return fmt.Errorf("demo: %w", result.Error)
				}

				res := result.Result.(*demo.Result)
				logger := logging.Get("demo")
				logger.Info().Msgf("Users folder prepared: %s and %s", res.NamesPath, res.EmailsPath)

				if a.GetConfig().Format == config.FormatText {
					return nil
				}
				return render(cmd.OutOrStdout(), a.GetConfig().Format, res)
			})
		},
	}
	cmd.Flags().String("dir", config.DefaultDemoDir, "Folder receiving names.txt and emails.txt")
	viper.BindPFlag("demo.dir", cmd.Flags().Lookup("dir"))
	return cmd
}
