package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/internal/ui"
	"github.com/nodelens/nodelens/store"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	var renames []string
	cmd := &cobra.Command{
		Use:   "set <file> [key=value[:type]]...",
		Short: "Edit fields of the addressed node and rewrite the document",
		Long: `Edit fields of the addressed node and rewrite the document.

Each argument names a field of the node and its new value, with an optional
declared type (string, number, boolean, null), e.g.

  nodelens set config.json -p '$["server"]' port=8080:number host=localhost

Renaming a key is --rename old=new; the value splits on the first '=', so it
may itself contain '='.`,
		Args: cobra.MinimumNArgs(1),
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

			if len(args) == 1 && len(renames) == 0 {
				return fmt.Errorf("nodelens: nothing to set")
			}
			for _, spec := range renames {
				if err := renameField(sess, spec); err != nil {
					return err
				}
			}
			for _, arg := range args[1:] {
				if err := applyFieldSpec(sess, arg); err != nil {
					return err
				}
			}

			if dryRun {
				before, after, err := sess.Preview()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDiff(string(before), string(after)))
				return nil
			}

			patch, err := sess.MergePatch()
			if err != nil {
				return err
			}
			if err := sess.Save(); err != nil {
				return err
			}
			if err := st.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", locatorColor.Sprint(path.Locator()), patch)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the diff without writing the file")
	cmd.Flags().StringArrayVar(&renames, "rename", nil, "rename a field, old=new (repeatable)")
	return cmd
}

// applyFieldSpec applies one key=value[:type] argument to the session's
// working rows. Only the first '=' separates key from value, so the value may
// contain '=' itself.
func applyFieldSpec(sess *nodelens.Session, spec string) error {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) < 2 {
		return fmt.Errorf("nodelens: field spec %q needs key=value", spec)
	}
	key, rawValue := parts[0], parts[1]
	if key == "" {
		return fmt.Errorf("nodelens: field spec %q has an empty key", spec)
	}

	value := rawValue
	ftype := nodelens.StringType
	typed := false
	if i := strings.LastIndexByte(rawValue, ':'); i >= 0 {
		if err := ftype.UnmarshalText([]byte(rawValue[i+1:])); err == nil {
			value = rawValue[:i]
			typed = true
		}
	}

	for i, row := range sess.Rows() {
		if row.Key != key {
			continue
		}
		row.Value = value
		if typed {
			row.Type = ftype
		} else if !row.Type.IsLeaf() {
			return fmt.Errorf("nodelens: field %q holds a container and cannot be set directly", key)
		}
		sess.SetRow(i, row)
		return nil
	}
	sess.AddRow(nodelens.Row{Key: key, Value: value, Type: ftype})
	return nil
}

// renameField applies one --rename old=new argument, keeping the field's
// value and identity.
func renameField(sess *nodelens.Session, spec string) error {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("nodelens: rename %q needs old=new", spec)
	}
	for i, row := range sess.Rows() {
		if row.Key != parts[0] {
			continue
		}
		row.Key = parts[1]
		sess.SetRow(i, row)
		return nil
	}
	return fmt.Errorf("nodelens: cannot rename %q: no such field", parts[0])
}
