package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wtt/internal/persist"
)

// NewLabelsCommand creates the labels command group.
func NewLabelsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List the labels in use",
		Long: `List every label currently carried by at least one session.

Labels are not registered anywhere: a label exists exactly as long as some
session references it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsList(rootOpts, cmd)
		},
	}

	cmd.AddCommand(newLabelsRemoveCommand(rootOpts))

	return cmd
}

func newLabelsRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a label from every session",
		Long: `Strip the given label from every session's label list.

Sessions keep running or ended state and their notes; a session whose last
label is removed stays in the store with an empty label list. Removing a
label that appears nowhere is not an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsRemove(rootOpts, cmd, args[0])
		},
	}
}

func runLabelsList(opts *RootOptions, cmd *cobra.Command) error {
	_, store, err := loadStore(opts, cmd)
	if err != nil {
		return reportOpError(opts, cmd, err)
	}

	labels := store.Labels()
	f := formatter(opts, cmd)
	text := ""
	if len(labels) > 0 {
		text = strings.Join(labels, "\n") + "\n"
	}
	return f.SuccessText(text, labels)
}

func runLabelsRemove(opts *RootOptions, cmd *cobra.Command, name string) error {
	cfg, store, err := loadStore(opts, cmd)
	if err != nil {
		return reportOpError(opts, cmd, err)
	}

	changed := store.RemoveLabel(name)
	if changed > 0 {
		if err := persist.Save(cfg.DatabasePath, store); err != nil {
			return reportOpError(opts, cmd, err)
		}
	}

	f := formatter(opts, cmd)
	return f.SuccessText(
		fmt.Sprintf("Removed label %q from %d session(s)\n", name, changed),
		map[string]any{"label": name, "sessions_changed": changed},
	)
}
