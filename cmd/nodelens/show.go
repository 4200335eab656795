package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/store"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a node's display form and locator",
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
			if cfg.StrictPaths {
				doc, err := nodelens.Parse(st.DocumentText())
				if err != nil {
					return err
				}
				if _, err := nodelens.ResolveStrict(doc.Root(), path); err != nil {
					return err
				}
			}
			node, err := nodelens.NodeAt(st.DocumentText(), path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), locatorColor.Sprint(path.Locator()))
			fmt.Fprintln(cmd.OutOrStdout(), highlightJSON(nodelens.Normalize(node.Rows)))
			return nil
		},
	}
}
