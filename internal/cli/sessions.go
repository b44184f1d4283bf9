package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/track"
)

// SessionsOptions holds flags for the sessions command.
type SessionsOptions struct {
	*RootOptions
	From   string
	To     string
	Labels []string
}

// NewSessionsCommand creates the sessions command.
func NewSessionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SessionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions as a table",
		Long: `List sessions matching the given filters, ascending by start time.

Dates use dd-mm-yyyy; --from also accepts "today". The from-bound is an
inclusive lower bound on the start instant, the to-bound an inclusive upper
bound on the end instant; running sessions are never excluded by --to.
Labels combine as any-of.

Example:
  wtt sessions --from today --label billable`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", `inclusive lower bound on start (dd-mm-yyyy or "today")`)
	cmd.Flags().StringVar(&opts.To, "to", "", "inclusive upper bound on end (dd-mm-yyyy)")
	cmd.Flags().StringSliceVarP(&opts.Labels, "label", "l", nil, "label filter, any-of (repeatable)")

	return cmd
}

func runSessions(opts *SessionsOptions, cmd *cobra.Command) error {
	now := opts.Now()

	// Validate the filter before touching the store.
	filter := track.Filter{Labels: opts.Labels}
	if opts.From != "" {
		from, err := track.ParseDate(opts.From, now)
		if err != nil {
			return reportOpError(opts.RootOptions, cmd, err)
		}
		filter.From = &from
	}
	if opts.To != "" {
		to, err := track.ParseDate(opts.To, now)
		if err != nil {
			return reportOpError(opts.RootOptions, cmd, err)
		}
		filter.To = &to
	}

	cfg, store, err := loadStore(opts.RootOptions, cmd)
	if err != nil {
		return reportOpError(opts.RootOptions, cmd, err)
	}

	sessions := store.GetAllSessions(filter)

	views := make([]sessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, viewOf(sess, now))
	}

	f := formatter(opts.RootOptions, cmd)
	f.VerboseLog("%d of %d sessions match", len(sessions), store.Len())
	return f.SuccessText(renderSessionsTable(sessions, cfg.NoteWidth, now), views)
}
