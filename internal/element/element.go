// Package element decides which kind of interactive element a component
// renders as and layers the loading and disabled states on top of it.
package element

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/link"
)

// Kind is the interactive element kind handed to the renderer.
type Kind int

const (
	// Actionable elements carry an activation handle instead of an address.
	Actionable Kind = iota
	// Navigable elements carry an address and navigation attributes.
	Navigable
)

func (k Kind) String() string {
	switch k {
	case Navigable:
		return "navigable"
	case Actionable:
		return "actionable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "navigable":
		*k = Navigable
	case "actionable":
		*k = Actionable
	default:
		return fmt.Errorf("unknown element kind %q", text)
	}
	return nil
}

// Resolve picks the element kind. A destination address is the only
// discriminant.
func Resolve(hasDestination bool) Kind {
	if hasDestination {
		return Navigable
	}
	return Actionable
}

// State holds the interaction flags that apply to either kind.
type State struct {
	Disabled bool
	Loading  bool
}

// Inert reports whether activation is suppressed. Loading implies it.
func (s State) Inert() bool {
	return s.Disabled || s.Loading
}

// Element is the resolved element description. Handles are opaque: they
// are carried through untouched and never inspected.
type Element struct {
	Kind       Kind            `yaml:"kind" json:"kind"`
	Attributes link.Attributes `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Inert      bool            `yaml:"inert" json:"inert"`
	Spinner    bool            `yaml:"spinner" json:"spinner"`
	OnActivate any             `yaml:"-" json:"-"`
	Ref        any             `yaml:"-" json:"-"`
}

// Build resolves the element for a link configuration and state. Navigable
// elements get the resolved link attributes; actionable elements get the
// activation handle unless the state suppresses activation.
func Build(cfg link.Config, state State, onActivate, ref any) Element {
	el := Element{
		Kind:    Resolve(cfg.Href != ""),
		Inert:   state.Inert(),
		Spinner: state.Loading,
		Ref:     ref,
	}

	switch el.Kind {
	case Navigable:
		el.Attributes = link.Resolve(cfg)
	case Actionable:
		if !el.Inert {
			el.OnActivate = onActivate
		}
	}
	return el
}
