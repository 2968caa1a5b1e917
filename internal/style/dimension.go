package style

import (
	"fmt"
	"sort"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Option pairs an allowed dimension value with its class fragment. An empty
// Class is the declared "no contribution" case.
type Option struct {
	Value string
	Class string
}

// Dimension is a named axis of style configuration with an enumerated
// domain, a default value and exactly one fragment per allowed value.
type Dimension struct {
	name      string
	def       string
	values    []string
	fragments map[string]string
}

// NewDimension builds a dimension. The default must be one of the options
// and every option value must be non-empty and unique.
func NewDimension(name, def string, options ...Option) (Dimension, error) {
	if name == "" {
		return Dimension{}, fmt.Errorf("dimension name is required")
	}
	if len(options) == 0 {
		return Dimension{}, fmt.Errorf("dimension %s: at least one option is required", name)
	}

	d := Dimension{
		name:      name,
		def:       def,
		values:    make([]string, 0, len(options)),
		fragments: make(map[string]string, len(options)),
	}
	for _, opt := range options {
		if opt.Value == "" {
			return Dimension{}, fmt.Errorf("dimension %s: option value must not be empty", name)
		}
		if _, dup := d.fragments[opt.Value]; dup {
			return Dimension{}, fmt.Errorf("dimension %s: duplicate option %q", name, opt.Value)
		}
		d.values = append(d.values, opt.Value)
		d.fragments[opt.Value] = opt.Class
	}
	if _, ok := d.fragments[def]; !ok {
		return Dimension{}, fmt.Errorf("dimension %s: default %q is not an allowed value", name, def)
	}

	return d, nil
}

// MustDimension is NewDimension for static tables built at process start.
func MustDimension(name, def string, options ...Option) Dimension {
	d, err := NewDimension(name, def, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the dimension name.
func (d Dimension) Name() string {
	return d.name
}

// Default returns the declared default value.
func (d Dimension) Default() string {
	return d.def
}

// Allowed returns the allowed values in declaration order.
func (d Dimension) Allowed() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}

// Has reports whether value is in the allowed set.
func (d Dimension) Has(value string) bool {
	_, ok := d.fragments[value]
	return ok
}

// Fragment returns the class fragment for value.
func (d Dimension) Fragment(value string) (string, bool) {
	frag, ok := d.fragments[value]
	return frag, ok
}

// WithDefault returns a copy of the dimension with a different default.
func (d Dimension) WithDefault(value string) (Dimension, error) {
	if !d.Has(value) {
		return Dimension{}, fmt.Errorf("dimension %s: default %q is not an allowed value", d.name, value)
	}
	d.def = value
	return d, nil
}

// Registry maps each style dimension of one component kind to its allowed
// values and fragments. It is immutable after construction and safe for
// concurrent reads.
type Registry struct {
	component string
	order     []string
	dims      map[string]Dimension
}

// NewRegistry builds a registry for component. Dimension order is kept as
// the composition order.
func NewRegistry(component string, dims ...Dimension) (*Registry, error) {
	r := &Registry{
		component: component,
		order:     make([]string, 0, len(dims)),
		dims:      make(map[string]Dimension, len(dims)),
	}
	for _, d := range dims {
		if d.name == "" {
			return nil, fmt.Errorf("registry %s: dimension without a name", component)
		}
		if _, dup := r.dims[d.name]; dup {
			return nil, fmt.Errorf("registry %s: duplicate dimension %q", component, d.name)
		}
		r.order = append(r.order, d.name)
		r.dims[d.name] = d
	}
	return r, nil
}

// MustRegistry is NewRegistry for static tables built at process start.
func MustRegistry(component string, dims ...Dimension) *Registry {
	r, err := NewRegistry(component, dims...)
	if err != nil {
		panic(err)
	}
	return r
}

// Component returns the component kind the registry describes.
func (r *Registry) Component() string {
	return r.component
}

// Dimensions returns the dimensions in declaration order.
func (r *Registry) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.dims[name])
	}
	return out
}

// Dimension looks up a dimension by name.
func (r *Registry) Dimension(name string) (Dimension, bool) {
	d, ok := r.dims[name]
	return d, ok
}

// Resolve returns the fragment for value in the named dimension. An empty
// value means "omitted" and resolves the declared default. Unknown
// dimensions and unknown values fail with a ConfigError.
func (r *Registry) Resolve(name, value string) (string, error) {
	d, ok := r.dims[name]
	if !ok {
		return "", skerrors.NewConfigError(r.component, name, "unknown dimension", nil)
	}
	if value == "" {
		value = d.def
	}
	frag, ok := d.fragments[value]
	if !ok {
		return "", skerrors.UnknownValue(r.component, name, value, d.values)
	}
	return frag, nil
}

// WithDefaults derives a registry that shares every table but replaces the
// defaults named in defaults. The receiver is left untouched.
func (r *Registry) WithDefaults(component string, defaults map[string]string) (*Registry, error) {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	derived := &Registry{
		component: component,
		order:     append([]string(nil), r.order...),
		dims:      make(map[string]Dimension, len(r.dims)),
	}
	for name, d := range r.dims {
		derived.dims[name] = d
	}
	for _, name := range names {
		d, ok := derived.dims[name]
		if !ok {
			return nil, fmt.Errorf("registry %s: unknown dimension %q", r.component, name)
		}
		updated, err := d.WithDefault(defaults[name])
		if err != nil {
			return nil, err
		}
		derived.dims[name] = updated
	}
	return derived, nil
}
