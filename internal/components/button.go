package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/element"
	"github.com/alexisbeaulieu97/stylekit/internal/link"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Fragments shared by the button rule table.
const (
	InertClass   = "opacity-50 cursor-not-allowed pointer-events-none"
	LoadingClass = "cursor-wait"
)

// ButtonSpec is the generic button template. Width defaults to auto.
var ButtonSpec = style.NewSpec(
	style.MustRegistry("button",
		style.MustDimension("variant", "primary",
			style.Option{Value: "primary", Class: "bg-primary text-primary-foreground hover:bg-primary/90"},
			style.Option{Value: "secondary", Class: "bg-secondary text-secondary-foreground hover:bg-secondary/80"},
			style.Option{Value: "outline", Class: "border border-input bg-background hover:bg-accent"},
			style.Option{Value: "ghost", Class: "hover:bg-accent hover:text-accent-foreground"},
			style.Option{Value: "link", Class: "text-primary underline-offset-4 hover:underline"},
			style.Option{Value: "danger", Class: "bg-destructive text-destructive-foreground hover:bg-destructive/90"},
		),
		style.MustDimension("size", "md",
			style.Option{Value: "sm", Class: "h-8 px-3 text-sm"},
			style.Option{Value: "md", Class: "h-10 px-4 py-2"},
			style.Option{Value: "lg", Class: "h-12 px-8 text-lg"},
		),
		style.MustDimension("width", "auto",
			style.Option{Value: "auto"},
			style.Option{Value: "fixed", Class: "w-48"},
			style.Option{Value: "full", Class: "w-full"},
		),
	),
	[]string{"inline-flex items-center justify-center rounded-md font-medium transition-colors focus-visible:outline-none focus-visible:ring-2"},
	style.NewRule("inert", style.AnyOf(style.FlagSet("disabled"), style.FlagSet("loading")), InertClass),
	style.NewRule("loading", style.FlagSet("loading"), LoadingClass),
	style.NewRule("icon", style.FlagSet("icon"), "gap-2"),
	style.NewRule("icon-right", style.FlagSet("icon_right"), "flex-row-reverse"),
)

// CallToActionSpec is the composed call-to-action button. It shares the
// button tables but keeps its own defaults: fixed width and large size.
var CallToActionSpec = mustDerive(ButtonSpec, "cta", map[string]string{
	"width": "fixed",
	"size":  "lg",
})

// ButtonConfig configures a button or call-to-action.
type ButtonConfig struct {
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Variant     string `yaml:"variant,omitempty" json:"variant,omitempty"`
	Size        string `yaml:"size,omitempty" json:"size,omitempty"`
	Width       string `yaml:"width,omitempty" json:"width,omitempty"`
	link.Config `yaml:",inline"`
	Icon        *Icon  `yaml:"icon,omitempty" json:"icon,omitempty"`
	Loading     bool   `yaml:"loading,omitempty" json:"loading,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	LoadingText string `yaml:"loading_text,omitempty" json:"loading_text,omitempty"`
	Class       string `yaml:"class,omitempty" json:"class,omitempty"`

	// Deprecated: use Width "full".
	FullWidth *bool `yaml:"full_width,omitempty" json:"full_width,omitempty"`
	// Deprecated: use External.
	IsExternal *bool `yaml:"is_external,omitempty" json:"is_external,omitempty"`

	OnActivate any `yaml:"-" json:"-"`
	Ref        any `yaml:"-" json:"-"`
}

// ResolveButton resolves a generic button.
func ResolveButton(cfg ButtonConfig) (Resolution, error) {
	return resolveButton(ButtonSpec, cfg)
}

// ResolveCallToAction resolves a call-to-action button.
func ResolveCallToAction(cfg ButtonConfig) (Resolution, error) {
	return resolveButton(CallToActionSpec, cfg)
}

func resolveButton(spec *style.Spec, cfg ButtonConfig) (Resolution, error) {
	name := spec.Name()
	cfg, warnings := migrateButton(name, cfg)

	if err := validateIcon(name, cfg.Icon); err != nil {
		return Resolution{}, err
	}

	classes, err := spec.Resolve(style.Selection{
		Values: map[string]string{
			"variant": cfg.Variant,
			"size":    cfg.Size,
			"width":   cfg.Width,
		},
		Flags: map[string]bool{
			"disabled":   cfg.Disabled,
			"loading":    cfg.Loading,
			"icon":       cfg.Icon != nil,
			"icon_right": iconOnRight(cfg.Icon),
		},
	}, cfg.Class)
	if err != nil {
		return Resolution{}, err
	}

	el := element.Build(cfg.Config, element.State{Disabled: cfg.Disabled, Loading: cfg.Loading}, cfg.OnActivate, cfg.Ref)

	res := Resolution{
		Component: name,
		Class:     classes.String(),
		Element:   &el,
		Label:     cfg.Label,
		Icon:      cfg.Icon,
		Warnings:  warnings,
	}
	if cfg.Loading {
		res.Label = ""
		res.LoadingText = cfg.LoadingText
		if res.LoadingText == "" {
			res.LoadingText = DefaultLoadingText
		}
	}
	return res, nil
}

// migrateButton honors legacy keys. The current key wins when both are set;
// the warning is raised either way.
func migrateButton(component string, cfg ButtonConfig) (ButtonConfig, []skerrors.DeprecatedKeyWarning) {
	var warnings []skerrors.DeprecatedKeyWarning

	if cfg.FullWidth != nil {
		warnings = append(warnings, skerrors.NewDeprecatedKeyWarning(component, "full_width", "width: full"))
		if cfg.Width == "" && *cfg.FullWidth {
			cfg.Width = "full"
		}
		cfg.FullWidth = nil
	}
	if cfg.IsExternal != nil {
		warnings = append(warnings, skerrors.NewDeprecatedKeyWarning(component, "is_external", "external"))
		if cfg.External == nil {
			cfg.External = cfg.IsExternal
		}
		cfg.IsExternal = nil
	}

	return cfg, warnings
}

func mustDerive(spec *style.Spec, name string, defaults map[string]string) *style.Spec {
	derived, err := spec.WithDefaults(name, defaults)
	if err != nil {
		panic(err)
	}
	return derived
}
