package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
)

// Widget kinds accepted in a document.
const (
	KindButton = "button"
	KindCTA    = "cta"
	KindLogo   = "logo"
	KindGroup  = "group"
	KindHeader = "header"
	KindFooter = "footer"
)

// Document is a full widget document.
type Document struct {
	Version string                 `yaml:"version" validate:"required,semver"`
	Name    string                 `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Page    *components.PageConfig `yaml:"page,omitempty"`
	Widgets []Widget               `yaml:"widgets" validate:"omitempty,dive"`
}

// Widget is one entry of a document. Exactly one body matching Kind is set
// after decoding.
type Widget struct {
	ID   string `yaml:"id" validate:"required,widget_id"`
	Kind string `yaml:"kind" validate:"required,oneof=button cta logo group header footer"`

	Button *components.ButtonConfig `yaml:"-"`
	Logo   *components.LogoConfig   `yaml:"-"`
	Group  *components.GroupConfig  `yaml:"-"`
	Header *components.HeaderConfig `yaml:"-"`
	Footer *components.FooterConfig `yaml:"-"`
}

// UnmarshalYAML decodes the kind-specific body from the same mapping as the
// id and kind keys.
func (w *Widget) UnmarshalYAML(value *yaml.Node) error {
	type baseWidget struct {
		ID   string `yaml:"id"`
		Kind string `yaml:"kind"`
	}

	var base baseWidget
	if err := value.Decode(&base); err != nil {
		return err
	}

	*w = Widget{ID: base.ID, Kind: base.Kind}

	switch base.Kind {
	case KindButton, KindCTA:
		var button components.ButtonConfig
		if err := value.Decode(&button); err != nil {
			return err
		}
		w.Button = &button
	case KindLogo:
		var logo components.LogoConfig
		if err := value.Decode(&logo); err != nil {
			return err
		}
		w.Logo = &logo
	case KindGroup:
		var group components.GroupConfig
		if err := value.Decode(&group); err != nil {
			return err
		}
		w.Group = &group
	case KindHeader:
		var header components.HeaderConfig
		if err := value.Decode(&header); err != nil {
			return err
		}
		w.Header = &header
	case KindFooter:
		var footer components.FooterConfig
		if err := value.Decode(&footer); err != nil {
			return err
		}
		w.Footer = &footer
	}

	return nil
}
