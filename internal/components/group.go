package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/layout"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// GroupSpec lays out a row or column of items such as navigation links or
// button rows. Responsive behaviour follows the layout responsive table.
var GroupSpec = style.NewSpec(
	style.MustRegistry("group",
		style.MustDimension("variant", "default",
			style.Option{Value: "default"},
			style.Option{Value: "primary", Class: "text-primary"},
			style.Option{Value: "secondary", Class: "text-secondary-foreground"},
			style.Option{Value: "muted", Class: "text-muted-foreground"},
		),
		style.MustDimension("width", "auto",
			style.Option{Value: "auto"},
			style.Option{Value: "fixed", Class: "w-full max-w-screen-md"},
			style.Option{Value: "full", Class: "w-full"},
		),
		layout.DirectionDimension(),
		style.MustDimension("align", "center",
			style.Option{Value: "start", Class: "items-start"},
			style.Option{Value: "center", Class: "items-center"},
			style.Option{Value: "end", Class: "items-end"},
			style.Option{Value: "between", Class: "items-center justify-between"},
			style.Option{Value: "stretch", Class: "items-stretch"},
		),
		style.MustDimension("gap", "md",
			style.Option{Value: "none", Class: "gap-0"},
			style.Option{Value: "sm", Class: "gap-2"},
			style.Option{Value: "md", Class: "gap-4"},
			style.Option{Value: "lg", Class: "gap-8"},
		),
		layout.MobileDimension(),
	),
	[]string{"flex"},
	layout.ResponsiveRules()...,
)

// GroupConfig configures a group and its items.
type GroupConfig struct {
	Variant        string         `yaml:"variant,omitempty" json:"variant,omitempty"`
	Width          string         `yaml:"width,omitempty" json:"width,omitempty"`
	Direction      string         `yaml:"direction,omitempty" json:"direction,omitempty"`
	Align          string         `yaml:"align,omitempty" json:"align,omitempty"`
	Gap            string         `yaml:"gap,omitempty" json:"gap,omitempty"`
	MobileBehavior string         `yaml:"mobile_behavior,omitempty" json:"mobile_behavior,omitempty"`
	Items          []ButtonConfig `yaml:"items,omitempty" json:"items,omitempty"`
	Class          string         `yaml:"class,omitempty" json:"class,omitempty"`

	// Deprecated: use MobileBehavior.
	Responsive string `yaml:"responsive,omitempty" json:"responsive,omitempty"`
}

// ResolveGroup resolves a group. Items resolve as generic buttons.
func ResolveGroup(cfg GroupConfig) (Resolution, error) {
	var warnings []skerrors.DeprecatedKeyWarning
	if cfg.Responsive != "" {
		warnings = append(warnings, skerrors.NewDeprecatedKeyWarning("group", "responsive", "mobile_behavior"))
		if cfg.MobileBehavior == "" {
			cfg.MobileBehavior = cfg.Responsive
		}
	}

	classes, err := GroupSpec.Resolve(style.Selection{Values: map[string]string{
		"variant":         cfg.Variant,
		"width":           cfg.Width,
		"direction":       cfg.Direction,
		"align":           cfg.Align,
		"gap":             cfg.Gap,
		"mobile_behavior": cfg.MobileBehavior,
	}}, cfg.Class)
	if err != nil {
		return Resolution{}, err
	}

	children := make([]Resolution, 0, len(cfg.Items))
	for i, item := range cfg.Items {
		child, err := ResolveButton(item)
		if err != nil {
			return Resolution{}, fmt.Errorf("group item %d: %w", i, err)
		}
		children = append(children, child)
	}

	return Resolution{
		Component: GroupSpec.Name(),
		Class:     classes.String(),
		Children:  children,
		Warnings:  warnings,
	}, nil
}
