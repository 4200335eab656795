package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/store"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file>",
		Short: "Print the value addressed by the path",
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
			doc, err := nodelens.Parse(st.DocumentText())
			if err != nil {
				return err
			}
			var value any
			if cfg.StrictPaths {
				value, err = nodelens.ResolveStrict(doc.Root(), path)
				if err != nil {
					return err
				}
			} else {
				value = doc.Resolve(path)
			}
			out, err := nodelens.MarshalValue(value, cfg.Indent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), highlightJSON(string(out)))
			return nil
		},
	}
}
