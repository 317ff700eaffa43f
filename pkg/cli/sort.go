package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/computerscienceiscool/scriptkit/pkg/fstools"
	"github.com/computerscienceiscool/scriptkit/pkg/sorter"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [items...]",
		Short: "Sort strings with Russian collation, ignoring whitespace and case",
		Long: `Sort the given items, or the JSON array stored in --file. Whitespace is
ignored when comparing and equal items keep their input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				return runCommand(cmd, "sort", args...)
			}
			if len(args) > 0 {
				return fmt.Errorf("sort takes either --file or items, not both")
			}

			items, err := loadSortItems(file)
			if err != nil {
				return err
			}
			return runCommand(cmd, "sort", items...)
		},
	}
	cmd.Flags().String("file", "", "JSON file holding an array of strings")
	return cmd
}

// loadSortItems reads a JSON document and coerces it to strings in input
// order; the sort command sorts them. Anything other than an array is
// rejected.
func loadSortItems(path string) ([]string, error) {
	content, err := fstools.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return sorter.Coerce(v)
}
