package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/layout"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// HeaderSpec is the navigation header template.
var HeaderSpec = style.NewSpec(
	style.MustRegistry("header",
		style.MustDimension("variant", "solid",
			style.Option{Value: "solid", Class: "bg-background"},
			style.Option{Value: "transparent", Class: "bg-transparent"},
			style.Option{Value: "blurred", Class: "bg-background/80 backdrop-blur"},
		),
	),
	[]string{"w-full flex items-center justify-between px-4 py-3"},
	style.NewRule("in-shell", style.FlagSet("in_shell"), "shrink-0"),
	style.NewRule("sticky", style.FlagSet("sticky"), "sticky top-0 z-50"),
	style.NewRule("bordered", style.FlagSet("bordered"), "border-b"),
	style.NewRule("overlay", style.AllOf(
		style.FlagSet("full_bleed"),
		style.ValueIs("variant", "transparent"),
	), "absolute inset-x-0 top-0"),
)

// FooterSpec is the page footer template.
var FooterSpec = style.NewSpec(
	style.MustRegistry("footer",
		style.MustDimension("variant", "simple",
			style.Option{Value: "simple", Class: "flex items-center justify-center py-6"},
			style.Option{Value: "columns", Class: "grid grid-cols-2 gap-8 py-12 md:grid-cols-4"},
			style.Option{Value: "minimal", Class: "py-3 text-sm"},
		),
	),
	[]string{"w-full px-4"},
	style.NewRule("in-shell", style.FlagSet("in_shell"), "mt-auto shrink-0"),
	style.NewRule("bordered", style.FlagSet("bordered"), "border-t"),
)

// HeaderConfig configures a navigation header.
type HeaderConfig struct {
	Variant  string       `yaml:"variant,omitempty" json:"variant,omitempty"`
	Sticky   bool         `yaml:"sticky,omitempty" json:"sticky,omitempty"`
	Bordered bool         `yaml:"bordered,omitempty" json:"bordered,omitempty"`
	Logo     *LogoConfig  `yaml:"logo,omitempty" json:"logo,omitempty"`
	Nav      *GroupConfig `yaml:"nav,omitempty" json:"nav,omitempty"`
	Class    string       `yaml:"class,omitempty" json:"class,omitempty"`
}

// FooterConfig configures a page footer.
type FooterConfig struct {
	Variant  string       `yaml:"variant,omitempty" json:"variant,omitempty"`
	Bordered bool         `yaml:"bordered,omitempty" json:"bordered,omitempty"`
	Nav      *GroupConfig `yaml:"nav,omitempty" json:"nav,omitempty"`
	Class    string       `yaml:"class,omitempty" json:"class,omitempty"`
}

// ResolveHeader resolves a header. shell is the context of the enclosing
// page shell, or nil when the header stands alone.
func ResolveHeader(cfg HeaderConfig, shell *layout.Context) (Resolution, error) {
	classes, err := HeaderSpec.Resolve(style.Selection{
		Values: map[string]string{"variant": cfg.Variant},
		Flags: map[string]bool{
			"in_shell":   shell != nil,
			"full_bleed": shell != nil && shell.Variant == "full-bleed",
			"sticky":     cfg.Sticky,
			"bordered":   cfg.Bordered,
		},
	}, cfg.Class)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Component: HeaderSpec.Name(), Class: classes.String()}
	if cfg.Logo != nil {
		logo, err := ResolveLogo(*cfg.Logo)
		if err != nil {
			return Resolution{}, fmt.Errorf("header logo: %w", err)
		}
		res.Children = append(res.Children, logo)
	}
	if cfg.Nav != nil {
		nav, err := ResolveGroup(*cfg.Nav)
		if err != nil {
			return Resolution{}, fmt.Errorf("header nav: %w", err)
		}
		res.Children = append(res.Children, nav)
	}
	return res, nil
}

// ResolveFooter resolves a footer. shell is the context of the enclosing
// page shell, or nil when the footer stands alone.
func ResolveFooter(cfg FooterConfig, shell *layout.Context) (Resolution, error) {
	classes, err := FooterSpec.Resolve(style.Selection{
		Values: map[string]string{"variant": cfg.Variant},
		Flags: map[string]bool{
			"in_shell": shell != nil,
			"bordered": cfg.Bordered,
		},
	}, cfg.Class)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Component: FooterSpec.Name(), Class: classes.String()}
	if cfg.Nav != nil {
		nav, err := ResolveGroup(*cfg.Nav)
		if err != nil {
			return Resolution{}, fmt.Errorf("footer nav: %w", err)
		}
		res.Children = append(res.Children, nav)
	}
	return res, nil
}
