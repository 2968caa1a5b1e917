// Package layout resolves page-shell presets into structural class triples
// and the per-render shell context.
package layout

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Preset holds the structural classes of a named page shell.
type Preset struct {
	Name            string
	Container       string
	Main            string
	Footer          string
	DefaultMaxWidth string
	HasHeader       bool
	HasFooter       bool
}

// Overrides are the per-instance adjustments applied on top of a preset.
type Overrides struct {
	MaxWidth       string `yaml:"max_width,omitempty" json:"max_width,omitempty"`
	Header         *bool  `yaml:"header,omitempty" json:"header,omitempty"`
	Footer         *bool  `yaml:"footer,omitempty" json:"footer,omitempty"`
	Direction      string `yaml:"direction,omitempty" json:"direction,omitempty"`
	MobileBehavior string `yaml:"mobile_behavior,omitempty" json:"mobile_behavior,omitempty"`
	ContainerClass string `yaml:"container_class,omitempty" json:"container_class,omitempty"`
	MainClass      string `yaml:"main_class,omitempty" json:"main_class,omitempty"`
	FooterClass    string `yaml:"footer_class,omitempty" json:"footer_class,omitempty"`
}

// Context is derived once per shell resolution and handed by value to the
// components rendered inside that shell.
type Context struct {
	Variant   string `yaml:"variant" json:"variant"`
	HasHeader bool   `yaml:"has_header" json:"has_header"`
	HasFooter bool   `yaml:"has_footer" json:"has_footer"`
}

// Shell is the result of a page-shell resolution.
type Shell struct {
	Container style.Resolved
	Main      style.Resolved
	Footer    style.Resolved
	Context   Context
}

// Registry is the immutable preset table.
type Registry struct {
	order     []string
	presets   map[string]Preset
	maxWidths style.Dimension
}

// NewRegistry builds a preset registry. Every preset default max width must
// exist in the width table.
func NewRegistry(maxWidths style.Dimension, presets ...Preset) (*Registry, error) {
	r := &Registry{
		order:     make([]string, 0, len(presets)),
		presets:   make(map[string]Preset, len(presets)),
		maxWidths: maxWidths,
	}
	for _, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if _, dup := r.presets[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		if p.DefaultMaxWidth != "" && !maxWidths.Has(p.DefaultMaxWidth) {
			return nil, fmt.Errorf("preset %s: unknown default max width %q", p.Name, p.DefaultMaxWidth)
		}
		r.order = append(r.order, p.Name)
		r.presets[p.Name] = p
	}
	return r, nil
}

// Presets returns the registered presets in declaration order.
func (r *Registry) Presets() []Preset {
	out := make([]Preset, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.presets[name])
	}
	return out
}

// Preset looks up a preset by name.
func (r *Registry) Preset(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// MaxWidths returns the max-width table.
func (r *Registry) MaxWidths() style.Dimension {
	return r.maxWidths
}

// Resolve composes the class triple for presetName with overrides applied.
// Unknown presets and unknown max-width keys fail with a ConfigError.
func (r *Registry) Resolve(presetName string, o Overrides) (Shell, error) {
	preset, ok := r.presets[presetName]
	if !ok {
		return Shell{}, skerrors.UnknownPreset(presetName, r.order)
	}

	widthKey := preset.DefaultMaxWidth
	if o.MaxWidth != "" {
		widthKey = o.MaxWidth
	}
	var widthClass string
	if widthKey != "" {
		frag, ok := r.maxWidths.Fragment(widthKey)
		if !ok {
			return Shell{}, skerrors.UnknownMaxWidth(widthKey, r.maxWidths.Allowed())
		}
		widthClass = frag
	}

	var responsive string
	if o.MobileBehavior != "" || o.Direction != "" {
		resolved, err := Responsive(o.MobileBehavior, o.Direction)
		if err != nil {
			return Shell{}, err
		}
		responsive = "flex " + resolved.String()
	}

	ctx := Context{
		Variant:   preset.Name,
		HasHeader: preset.HasHeader,
		HasFooter: preset.HasFooter,
	}
	if o.Header != nil {
		ctx.HasHeader = *o.Header
	}
	if o.Footer != nil {
		ctx.HasFooter = *o.Footer
	}

	return Shell{
		Container: style.Merge(preset.Container, o.ContainerClass),
		Main:      style.Merge(preset.Main, widthClass, responsive, o.MainClass),
		Footer:    style.Merge(preset.Footer, o.FooterClass),
		Context:   ctx,
	}, nil
}
