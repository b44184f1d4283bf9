package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/persist"
)

// StartOptions holds flags for the start command.
type StartOptions struct {
	*RootOptions
	Labels []string
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		Long: `Start a new work session at the current instant.

The session stays open until "wtt end". Labels attached here can later be
used to filter the sessions table.

Example:
  wtt start --label client-a --label billable`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(opts, cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Labels, "label", "l", nil, "label to attach (repeatable)")

	return cmd
}

func runStart(opts *StartOptions, cmd *cobra.Command) error {
	cfg, store, err := loadStore(opts.RootOptions, cmd)
	if err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}

	sess := store.StartSession(opts.Labels)
	if err := persist.Save(cfg.DatabasePath, store); err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}

	f := formatter(opts.RootOptions, cmd)
	return f.SuccessText(
		fmt.Sprintf("Started session %s\n", sess.ID),
		viewOf(sess, opts.Now()),
	)
}
