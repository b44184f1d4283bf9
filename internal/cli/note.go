package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/persist"
)

// NewNoteCommand creates the note command.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <session-id> <text>",
		Short: "Replace the note on a session",
		Long: `Replace the note on a session, running or ended.

Example:
  wtt note 3f1a... "pairing with Dana on the importer"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNote(rootOpts, cmd, args[0], args[1])
		},
	}
	return cmd
}

func runNote(opts *RootOptions, cmd *cobra.Command, id, note string) error {
	cfg, store, err := loadStore(opts, cmd)
	if err != nil {
		return reportOpError(opts, cmd, err)
	}

	sess, err := store.UpdateNote(id, note)
	if err != nil {
		return reportOpError(opts, cmd, err)
	}
	if err := persist.Save(cfg.DatabasePath, store); err != nil {
		return reportOpError(opts, cmd, err)
	}

	f := formatter(opts, cmd)
	return f.SuccessText(
		fmt.Sprintf("Updated note on session %s\n", sess.ID),
		viewOf(sess, opts.Now()),
	)
}
