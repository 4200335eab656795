package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/internal/ui"
	"github.com/nodelens/nodelens/store"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Open the addressed node in the interactive edit panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			st, err := store.Open(args[0], log)
			if err != nil {
				return err
			}
			path, err := opts.path()
			if err != nil {
				return err
			}
			node, err := nodelens.NodeAt(st.DocumentText(), path)
			if err != nil {
				return err
			}
			sess := nodelens.NewSession(st, node,
				nodelens.WithLogger(log),
				nodelens.WithEditOptions(editOptions(cfg)...))

			if _, err := tea.NewProgram(ui.New(sess), tea.WithAltScreen()).Run(); err != nil {
				return err
			}
			if !st.Dirty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no changes")
				return nil
			}
			if err := st.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", st.Path())
			return nil
		},
	}
}
