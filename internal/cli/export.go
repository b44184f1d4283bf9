package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/export"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.db>",
		Short: "Dump the session log into a SQLite file",
		Long: `Dump every session into a standalone SQLite file for ad-hoc SQL
reporting. The dump is one-way: the JSON document remains the only store,
and the tracker never reads an exported file back.

Example:
  wtt export history.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runExport(opts *RootOptions, cmd *cobra.Command, target string) error {
	_, store, err := loadStore(opts, cmd)
	if err != nil {
		return reportOpError(opts, cmd, err)
	}

	count, err := export.ToSQLite(target, store.Sessions())
	if err != nil {
		return reportOpError(opts, cmd, err)
	}

	f := formatter(opts, cmd)
	return f.SuccessText(
		fmt.Sprintf("Exported %d session(s) to %s\n", count, target),
		map[string]any{"sessions": count, "path": target},
	)
}
