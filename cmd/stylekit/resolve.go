package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/engine"
	"github.com/alexisbeaulieu97/stylekit/internal/preview"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatPreview = "preview"
)

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

var termWidth = func(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func newResolveCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <document>",
		Short: "Resolve every widget in a document",
		Long: `Resolve loads a widget document, resolves the page shell and every widget,
and prints the class list, element kind and attributes of each one.
Exits with code 2 on the first configuration error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, args[0])
		},
	}

	cmd.Flags().StringP("format", "o", "", "Output format: text, json, yaml or preview (default preview on a terminal, text otherwise)")
	cmd.Flags().Bool("mobile", false, "Preview with small-screen responsive classes applied")
	cmd.Flags().Bool("show-classes", false, "Preview with the class list under every element")

	return cmd
}

func validateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("document path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path %s is a directory", abs)
	}
	return nil
}

func runResolve(cmd *cobra.Command, app *appContext, path string) error {
	if err := validateDocumentPath(path); err != nil {
		return err
	}

	doc, err := config.ParseDocument(path)
	if err != nil {
		return err
	}

	app.log.WithFields(map[string]any{
		"document": path,
		"widgets":  len(doc.Widgets),
	}).Info("resolving document")

	result, err := app.engine.ResolveDocument(doc)
	if err != nil {
		app.log.Error(err, "resolution failed", "document", path)
		return err
	}

	out := cmd.OutOrStdout()
	format := app.settings.Format
	if format == "" {
		format = detectFormat(out)
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case formatPreview:
		return writePreview(out, app.settings, result)
	default:
		return writeText(out, result)
	}
}

func detectFormat(out io.Writer) string {
	if file, ok := out.(*os.File); ok && termIsTerminal(int(file.Fd())) {
		return formatPreview
	}
	return formatText
}

func writeText(out io.Writer, result *engine.DocumentResult) error {
	if result.Name != "" {
		fmt.Fprintf(out, "document: %s\n", result.Name)
	}
	if page := result.Page; page != nil {
		fmt.Fprintf(out, "page %s\n", page.Context.Variant)
		fmt.Fprintf(out, "  container: %s\n", page.Container)
		fmt.Fprintf(out, "  main:      %s\n", page.Main)
		fmt.Fprintf(out, "  footer:    %s\n", page.Footer)
		fmt.Fprintf(out, "  header: %t  footer: %t\n", page.Context.HasHeader, page.Context.HasFooter)
	}
	for _, w := range result.Widgets {
		fmt.Fprintf(out, "%s %s\n", w.Kind, w.ID)
		writeResolution(out, w.Resolution, "  ")
	}
	return nil
}

func writeResolution(out io.Writer, r components.Resolution, indent string) {
	fmt.Fprintf(out, "%sclass: %s\n", indent, r.Class)
	if el := r.Element; el != nil {
		fmt.Fprintf(out, "%selement: %s", indent, el.Kind)
		if el.Inert {
			fmt.Fprint(out, " (inert)")
		}
		fmt.Fprintln(out)
		if el.Attributes.Href != "" {
			fmt.Fprintf(out, "%shref: %s  external: %t", indent, el.Attributes.Href, el.Attributes.IsExternal)
			if el.Attributes.Target != "" {
				fmt.Fprintf(out, "  target: %s", el.Attributes.Target)
			}
			if el.Attributes.Rel != "" {
				fmt.Fprintf(out, "  rel: %s", el.Attributes.Rel)
			}
			fmt.Fprintln(out)
		}
	}
	if r.LoadingText != "" {
		fmt.Fprintf(out, "%slabel: %s\n", indent, r.LoadingText)
	} else if r.Label != "" {
		fmt.Fprintf(out, "%slabel: %s\n", indent, r.Label)
	}
	for i, child := range r.Children {
		fmt.Fprintf(out, "%s%s[%d]\n", indent, child.Component, i)
		writeResolution(out, child, indent+"  ")
	}
}

func writePreview(out io.Writer, s settings, result *engine.DocumentResult) error {
	theme := preview.DefaultTheme()
	if file, ok := out.(*os.File); ok {
		if width := termWidth(int(file.Fd())); width > 8 {
			theme.FullWidth = width - 8
		}
	}
	renderer := preview.New(preview.Options{Theme: theme, Mobile: s.Mobile, ShowClasses: s.ShowClasses})

	blocks := make([]string, 0, len(result.Widgets))
	for _, w := range result.Widgets {
		block, err := renderer.Render(w.Resolution)
		if err != nil {
			return fmt.Errorf("widget %s: %w", w.ID, err)
		}
		blocks = append(blocks, block)
	}

	if result.Page != nil {
		page, err := renderer.RenderPage(*result.Page, blocks...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, page)
		return err
	}

	_, err := fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
	return err
}
