package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

func newDiffCmd(app *appContext) *cobra.Command {
	var context int

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare the resolved output of two widget documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := resolveText(app, args[0])
			if err != nil {
				return err
			}
			after, err := resolveText(app, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result := diff.Unified(before, after, args[0], args[1], context)
			if result == "" {
				fmt.Fprintln(out, "no changes")
				return nil
			}

			inserted, deleted := diff.Changes(before, after)
			app.log.Info("documents differ", "inserted", inserted, "deleted", deleted)
			_, err = fmt.Fprint(out, result)
			return err
		},
	}

	cmd.Flags().IntVar(&context, "context", 3, "Unchanged lines shown around each change; negative shows all")

	return cmd
}

func resolveText(app *appContext, path string) ([]byte, error) {
	if err := validateDocumentPath(path); err != nil {
		return nil, err
	}
	doc, err := config.ParseDocument(path)
	if err != nil {
		return nil, err
	}
	result, err := app.engine.ResolveDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := writeText(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
