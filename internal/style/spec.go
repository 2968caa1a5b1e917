package style

import (
	"sort"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Spec is the read-only style template of one component kind: base
// classes, the dimension registry and an ordered rule table. A Spec is
// built once at process start and shared by every resolution.
type Spec struct {
	registry *Registry
	base     []string
	rules    []Rule
}

// NewSpec constructs a Spec. The slices are copied.
func NewSpec(registry *Registry, base []string, rules ...Rule) *Spec {
	return &Spec{
		registry: registry,
		base:     append([]string(nil), base...),
		rules:    append([]Rule(nil), rules...),
	}
}

// Name returns the component kind of the underlying registry.
func (s *Spec) Name() string {
	return s.registry.Component()
}

// Registry returns the dimension registry.
func (s *Spec) Registry() *Registry {
	return s.registry
}

// Rules returns a copy of the rule table.
func (s *Spec) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// WithDefaults derives a spec named name with replaced dimension defaults.
func (s *Spec) WithDefaults(name string, defaults map[string]string) (*Spec, error) {
	registry, err := s.registry.WithDefaults(name, defaults)
	if err != nil {
		return nil, err
	}
	return &Spec{registry: registry, base: s.base, rules: s.rules}, nil
}

// Effective validates sel against the registry and returns a copy with every
// omitted dimension replaced by its default.
func (s *Spec) Effective(sel Selection) (Selection, error) {
	unknown := make([]string, 0)
	for name := range sel.Values {
		if _, ok := s.registry.Dimension(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Selection{}, skerrors.NewConfigError(s.Name(), unknown[0], "unknown dimension", nil)
	}

	values := make(map[string]string, len(s.registry.order))
	for _, d := range s.registry.Dimensions() {
		value := sel.Values[d.Name()]
		if value == "" {
			value = d.Default()
		}
		if !d.Has(value) {
			return Selection{}, skerrors.UnknownValue(s.Name(), d.Name(), value, d.Allowed())
		}
		values[d.Name()] = value
	}

	flags := make(map[string]bool, len(sel.Flags))
	for name, set := range sel.Flags {
		flags[name] = set
	}

	return Selection{Values: values, Flags: flags}, nil
}

// Resolve turns a selection into a class list. Rule predicates see the
// effective selection, so an omitted value behaves exactly like its default.
func (s *Spec) Resolve(sel Selection, overrides ...string) (Resolved, error) {
	effective, err := s.Effective(sel)
	if err != nil {
		return Resolved{}, err
	}

	fragments := make([]string, 0, len(s.registry.order))
	for _, name := range s.registry.order {
		frag, err := s.registry.Resolve(name, effective.Values[name])
		if err != nil {
			return Resolved{}, err
		}
		fragments = append(fragments, frag)
	}

	return Compose(s.base, fragments, s.rules, effective, overrides...), nil
}
