package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/persist"
	"github.com/roach88/wtt/internal/track"
)

// EndOptions holds flags for the end command.
type EndOptions struct {
	*RootOptions
	ID   string
	Note string
}

// NewEndCommand creates the end command.
func NewEndCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EndOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "end",
		Short: "End a running work session",
		Long: `End a running work session at the current instant.

Without --id, the running session with the latest start is ended. The note
always replaces whatever was there before; ending without --note clears it.

Example:
  wtt end --note "reviewed the quarterly numbers"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "session id to end (default: newest running session)")
	cmd.Flags().StringVarP(&opts.Note, "note", "n", "", "note to record on the session")

	return cmd
}

func runEnd(opts *EndOptions, cmd *cobra.Command) error {
	cfg, store, err := loadStore(opts.RootOptions, cmd)
	if err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}

	sess, err := store.EndSession(opts.ID, opts.Note)
	if err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}
	if err := persist.Save(cfg.DatabasePath, store); err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}

	now := opts.Now()
	f := formatter(opts.RootOptions, cmd)
	return f.SuccessText(
		fmt.Sprintf("Ended session %s after %s\n", sess.ID, track.FormatMinutes(sess.Minutes(now))),
		viewOf(sess, now),
	)
}
