package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/layout"
)

// PageConfig configures a page shell and its chrome.
type PageConfig struct {
	Preset           string `yaml:"preset" json:"preset"`
	layout.Overrides `yaml:",inline"`
	HeaderConfig     *HeaderConfig `yaml:"header_config,omitempty" json:"header_config,omitempty"`
	FooterConfig     *FooterConfig `yaml:"footer_config,omitempty" json:"footer_config,omitempty"`
}

// Page is a resolved page shell. Header and Footer are nil when the shell
// context has no header or footer, or when none was configured.
type Page struct {
	Container string         `yaml:"container" json:"container"`
	Main      string         `yaml:"main" json:"main"`
	Footer    string         `yaml:"footer" json:"footer"`
	Context   layout.Context `yaml:"context" json:"context"`
	Header    *Resolution    `yaml:"header,omitempty" json:"header,omitempty"`
	FooterBar *Resolution    `yaml:"footer_bar,omitempty" json:"footer_bar,omitempty"`
}

// ResolvePage resolves a page shell against presets and hands the derived
// context to the header and footer. Configured chrome is always validated;
// it is only attached when the shell has a slot for it.
func ResolvePage(presets *layout.Registry, cfg PageConfig) (Page, error) {
	shell, err := presets.Resolve(cfg.Preset, cfg.Overrides)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Container: shell.Container.String(),
		Main:      shell.Main.String(),
		Footer:    shell.Footer.String(),
		Context:   shell.Context,
	}

	ctx := shell.Context
	if cfg.HeaderConfig != nil {
		header, err := ResolveHeader(*cfg.HeaderConfig, &ctx)
		if err != nil {
			return Page{}, fmt.Errorf("page header: %w", err)
		}
		if ctx.HasHeader {
			page.Header = &header
		}
	}
	if cfg.FooterConfig != nil {
		footer, err := ResolveFooter(*cfg.FooterConfig, &ctx)
		if err != nil {
			return Page{}, fmt.Errorf("page footer: %w", err)
		}
		if ctx.HasFooter {
			page.FooterBar = &footer
		}
	}
	return page, nil
}
