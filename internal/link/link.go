// Package link derives external-link detection and safe default navigation
// attributes for address-bearing elements.
package link

import "strings"

const (
	// TargetBlank opens the destination in a new browsing context.
	TargetBlank = "_blank"
	// SafeRel keeps the opened context from reaching its opener.
	SafeRel = "noopener noreferrer"
)

// Config is the caller's link input. Nil or empty optional fields mean
// "not supplied".
type Config struct {
	Href     string `yaml:"href,omitempty" json:"href,omitempty"`
	External *bool  `yaml:"external,omitempty" json:"external,omitempty"`
	Target   string `yaml:"target,omitempty" json:"target,omitempty"`
	Rel      string `yaml:"rel,omitempty" json:"rel,omitempty"`
}

// Attributes are the resolved navigation attributes.
type Attributes struct {
	Href       string `yaml:"href,omitempty" json:"href,omitempty"`
	IsExternal bool   `yaml:"external" json:"external"`
	Target     string `yaml:"target,omitempty" json:"target,omitempty"`
	Rel        string `yaml:"rel,omitempty" json:"rel,omitempty"`
}

// IsExternal reports whether href leaves the application: absolute
// http(s) addresses and protocol-relative addresses do.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http") || strings.HasPrefix(href, "//")
}

// Resolve applies the defaulting rules. Explicit target and rel always win;
// otherwise external links get a new-context target, and any new-context
// target gets a rel that cuts the opener reference.
func Resolve(cfg Config) Attributes {
	external := IsExternal(cfg.Href)
	if cfg.External != nil && *cfg.External {
		external = true
	}

	attrs := Attributes{
		Href:       cfg.Href,
		IsExternal: external,
		Target:     cfg.Target,
		Rel:        cfg.Rel,
	}
	if attrs.Target == "" && external {
		attrs.Target = TargetBlank
	}
	if attrs.Rel == "" && (external || OpensNewContext(attrs.Target)) {
		attrs.Rel = SafeRel
	}
	return attrs
}

// OpensNewContext reports whether target names a new browsing context.
func OpensNewContext(target string) bool {
	return target == TargetBlank
}
