package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/config"
	"github.com/roach88/wtt/internal/persist"
	"github.com/roach88/wtt/internal/track"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Now stamps session instants and live durations. Overridable in tests;
	// defaults to time.Now.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the wtt CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Now: time.Now}

	cmd := &cobra.Command{
		Use:   "wtt",
		Short: "wtt - personal work time tracker",
		Long:  "Track timed work sessions in a single JSON document: start, end, annotate, label and tabulate them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewStartCommand(opts))
	cmd.AddCommand(NewEndCommand(opts))
	cmd.AddCommand(NewNoteCommand(opts))
	cmd.AddCommand(NewSessionsCommand(opts))
	cmd.AddCommand(NewLabelsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatter builds the output formatter for a command invocation.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadStore resolves configuration and loads the backing document.
// Every command begins here; nothing touches the environment afterwards.
func loadStore(opts *RootOptions, cmd *cobra.Command) (config.Config, *track.Store, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return config.Config{}, nil, err
	}
	store, err := persist.Load(cfg.DatabasePath)
	if err != nil {
		return config.Config{}, nil, err
	}
	store.SetNowFunc(opts.Now)
	f := formatter(opts, cmd)
	f.VerboseLog("loaded %d sessions from %s", store.Len(), cfg.DatabasePath)
	return cfg, store, nil
}

// reportOpError renders a domain error and converts it to an ExitError so
// the process exits non-zero with the right code. Cobra's own error output
// is silenced on every command; this is the single reporting path.
func reportOpError(opts *RootOptions, cmd *cobra.Command, err error) error {
	f := formatter(opts, cmd)
	code := track.CodeOf(err)
	if code == "" {
		code = "ERROR"
	}
	f.Error(string(code), err.Error())
	return &ExitError{Code: GetExitCode(err), Message: err.Error(), Err: err}
}
