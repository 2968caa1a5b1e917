package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/element"
	"github.com/alexisbeaulieu97/stylekit/internal/link"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/validation"
)

// LogoSpec is the logo template. Size defaults to md.
var LogoSpec = style.NewSpec(
	style.MustRegistry("logo",
		style.MustDimension("size", "md",
			style.Option{Value: "sm", Class: "h-6"},
			style.Option{Value: "md", Class: "h-8"},
			style.Option{Value: "lg", Class: "h-10"},
			style.Option{Value: "xl", Class: "h-12"},
		),
	),
	[]string{"inline-flex items-center shrink-0"},
	style.NewRule("link", style.FlagSet("navigable"), "hover:opacity-80 transition-opacity"),
)

// LogoConfig configures a logo. The image is required.
type LogoConfig struct {
	Image       Icon   `yaml:"image" json:"image"`
	Size        string `yaml:"size,omitempty" json:"size,omitempty"`
	link.Config `yaml:",inline"`
	Class       string `yaml:"class,omitempty" json:"class,omitempty"`

	Ref any `yaml:"-" json:"-"`
}

// ResolveLogo resolves a logo. A logo with an address is navigable; one
// without is an actionable element with no activation handle.
func ResolveLogo(cfg LogoConfig) (Resolution, error) {
	if err := validation.Struct("logo.image", cfg.Image); err != nil {
		return Resolution{}, err
	}

	classes, err := LogoSpec.Resolve(style.Selection{
		Values: map[string]string{"size": cfg.Size},
		Flags:  map[string]bool{"navigable": cfg.Href != ""},
	}, cfg.Class)
	if err != nil {
		return Resolution{}, err
	}

	image := cfg.Image
	el := element.Build(cfg.Config, element.State{}, nil, cfg.Ref)
	return Resolution{
		Component: LogoSpec.Name(),
		Class:     classes.String(),
		Element:   &el,
		Icon:      &image,
	}, nil
}
