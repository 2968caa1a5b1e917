package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var specsByKind = map[string]*style.Spec{
	"button": components.ButtonSpec,
	"cta":    components.CallToActionSpec,
	"logo":   components.LogoSpec,
	"group":  components.GroupSpec,
	"header": components.HeaderSpec,
	"footer": components.FooterSpec,
}

func specKinds() []string {
	kinds := make([]string, 0, len(specsByKind))
	for kind := range specsByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func newDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "dimensions <kind>",
		Short:     "List the dimension tables and rules of a widget kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: specKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, ok := specsByKind[args[0]]
			if !ok {
				return fmt.Errorf("unknown widget kind %q (known: %s)", args[0], strings.Join(specKinds(), ", "))
			}
			writeSpec(cmd.OutOrStdout(), spec)
			return nil
		},
	}
}

func writeSpec(out io.Writer, spec *style.Spec) {
	fmt.Fprintf(out, "%s\n", spec.Name())
	for _, dim := range spec.Registry().Dimensions() {
		writeDimension(out, dim, "  ")
	}
	if rules := spec.Rules(); len(rules) > 0 {
		fmt.Fprintln(out, "  rules:")
		for _, rule := range rules {
			fmt.Fprintf(out, "    %-12s %s\n", rule.Name, rule.Class)
		}
	}
}

func writeDimension(out io.Writer, dim style.Dimension, indent string) {
	fmt.Fprintf(out, "%s%s (default %s)\n", indent, dim.Name(), dim.Default())
	for _, value := range dim.Allowed() {
		fragment, _ := dim.Fragment(value)
		if fragment == "" {
			fragment = "-"
		}
		fmt.Fprintf(out, "%s  %-10s %s\n", indent, value, fragment)
	}
}

func newPresetsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List layout presets and max-width keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := app.engine.Presets()
			for _, p := range presets.Presets() {
				fmt.Fprintf(out, "%s (max width %s, header %t, footer %t)\n", p.Name, p.DefaultMaxWidth, p.HasHeader, p.HasFooter)
				fmt.Fprintf(out, "  container: %s\n", p.Container)
				fmt.Fprintf(out, "  main:      %s\n", p.Main)
				fmt.Fprintf(out, "  footer:    %s\n", p.Footer)
			}
			writeDimension(out, presets.MaxWidths(), "")
			return nil
		},
	}
}
