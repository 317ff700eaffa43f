package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/scriptkit/pkg/app"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
)

// runCommand evaluates one command through the app and prints its result.
func runCommand(cmd *cobra.Command, cmdType string, args ...string) error {
	return withApp(func(a *app.App) error {
		result := a.Run(cmd.Context(), cmdType, args...)
		if !result.Success {
			return result.Error
		}

		logger := logging.Get("cli")
		logger.Debug().
			Str("command", cmdType).
			Strs("args", args).
			Dur("took", result.ExecutionTime).
			Msg("command completed")

		return render(cmd.OutOrStdout(), a.GetConfig().Format, newResponse(result))
	})
}

type fileCommand struct {
	use   string
	short string
	args  cobra.PositionalArgs
}

var fileCommandSpecs = []fileCommand{
	{use: "write <path> <data>", short: "Write data to a file, creating parent folders", args: cobra.ExactArgs(2)},
	{use: "read <path>", short: "Print the content of a file", args: cobra.ExactArgs(1)},
	{use: "replace <path> <data>", short: "Truncate a file and write new data", args: cobra.ExactArgs(2)},
	{use: "clear <path>", short: "Truncate a file to zero length", args: cobra.ExactArgs(1)},
	{use: "denoise <path>", short: "Remove digits from a file and lowercase it", args: cobra.ExactArgs(1)},
	{use: "copy <src> <dst>", short: "Copy a file, creating the destination folder", args: cobra.ExactArgs(2)},
	{use: "mkdir <path>", short: "Create a folder and its parents", args: cobra.ExactArgs(1)},
	{use: "rmdir <path>", short: "Delete a folder recursively", args: cobra.ExactArgs(1)},
	{use: "purge [root]", short: "Delete every top-level entry of a project except service entries", args: cobra.MaximumNArgs(1)},
}

func fileCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(fileCommandSpecs))
	for _, spec := range fileCommandSpecs {
		cmds = append(cmds, &cobra.Command{
			Use:   spec.use,
			Short: spec.short,
			Args:  spec.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCommand(cmd, cmd.Name(), args...)
			},
		})
	}
	return cmds
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List project files, skipping service entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			match, _ := cmd.Flags().GetString("match")
			if match == "" {
				return runCommand(cmd, "list", root)
			}
			return runCommand(cmd, "list", root, match)
		},
	}
	cmd.Flags().String("match", "", "Only print files whose path relative to root matches a glob (e.g. **/*.txt)")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded commands from the audit database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				events, err := a.History(a.GetConfig().HistoryLimit)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), a.GetConfig().Format, events)
			})
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of events to show")
	viper.BindPFlag("history.limit", cmd.Flags().Lookup("limit"))
	return cmd
}
