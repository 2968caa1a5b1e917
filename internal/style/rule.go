package style

// Selection is one configuration instance: dimension values keyed by
// dimension name plus boolean state flags. A missing or empty value means
// the dimension default applies.
type Selection struct {
	Values map[string]string
	Flags  map[string]bool
}

// Value returns the configured value for a dimension, or "".
func (s Selection) Value(name string) string {
	return s.Values[name]
}

// Flag reports whether the named flag is set.
func (s Selection) Flag(name string) bool {
	return s.Flags[name]
}

// Predicate decides whether a conditional rule applies to a selection.
type Predicate func(Selection) bool

// Rule appends Class when When holds. Rules are evaluated in declaration
// order after every dimension fragment.
type Rule struct {
	Name  string
	When  Predicate
	Class string
}

// NewRule constructs a Rule.
func NewRule(name string, when Predicate, class string) Rule {
	return Rule{Name: name, When: when, Class: class}
}

// FlagSet matches selections where flag is set.
func FlagSet(flag string) Predicate {
	return func(s Selection) bool {
		return s.Flag(flag)
	}
}

// ValueIs matches selections where dimension resolves to value.
func ValueIs(dimension, value string) Predicate {
	return func(s Selection) bool {
		return s.Value(dimension) == value
	}
}

// AnyOf matches when at least one predicate matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(s Selection) bool {
		for _, p := range preds {
			if p != nil && p(s) {
				return true
			}
		}
		return false
	}
}

// AllOf matches when every predicate matches.
func AllOf(preds ...Predicate) Predicate {
	return func(s Selection) bool {
		for _, p := range preds {
			if p == nil || !p(s) {
				return false
			}
		}
		return true
	}
}
