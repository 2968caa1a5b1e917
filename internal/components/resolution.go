// Package components turns per-kind widget configuration into the
// (class string, element kind, attributes) tuples a Renderer consumes.
//
// Every component kind owns a style.Spec built once at process start. The
// Resolve* functions are pure: they validate the configuration, compose the
// class list and decide the element kind, and never touch a rendering
// surface.
package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/element"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// DefaultLoadingText replaces the label while a component is loading.
const DefaultLoadingText = "Loading..."

// Resolution is the output of one component resolution.
type Resolution struct {
	Component   string           `yaml:"component" json:"component"`
	Class       string           `yaml:"class" json:"class"`
	Element     *element.Element `yaml:"element,omitempty" json:"element,omitempty"`
	Label       string           `yaml:"label,omitempty" json:"label,omitempty"`
	LoadingText string           `yaml:"loading_text,omitempty" json:"loading_text,omitempty"`
	Icon        *Icon            `yaml:"icon,omitempty" json:"icon,omitempty"`
	Children    []Resolution     `yaml:"children,omitempty" json:"children,omitempty"`

	Warnings []skerrors.DeprecatedKeyWarning `yaml:"-" json:"-"`
}

// Kind returns the element kind, or false for structural components.
func (r Resolution) Kind() (element.Kind, bool) {
	if r.Element == nil {
		return 0, false
	}
	return r.Element.Kind, true
}

// AllWarnings returns the warnings of r and all of its children, depth first.
func (r Resolution) AllWarnings() []skerrors.DeprecatedKeyWarning {
	out := append([]skerrors.DeprecatedKeyWarning(nil), r.Warnings...)
	for _, child := range r.Children {
		out = append(out, child.AllWarnings()...)
	}
	return out
}

// Renderer constructs the visual element for a resolution. Implementations
// attach the class string and attributes and handle activation.
type Renderer interface {
	Render(r Resolution) (string, error)
}
