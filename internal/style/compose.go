package style

import "strings"

// Resolved is the per-call output of a composition: an ordered class list
// with every token appearing once, at the position of its last occurrence.
type Resolved struct {
	Classes []string
}

// String joins the class list with single spaces.
func (r Resolved) String() string {
	return strings.Join(r.Classes, " ")
}

// Has reports whether token is part of the class list.
func (r Resolved) Has(token string) bool {
	for _, c := range r.Classes {
		if c == token {
			return true
		}
	}
	return false
}

// HasAll reports whether every token of fragment is part of the class list.
func (r Resolved) HasAll(fragment string) bool {
	for _, token := range strings.Fields(fragment) {
		if !r.Has(token) {
			return false
		}
	}
	return true
}

// Compose merges class fragments in a fixed order: base classes, dimension
// fragments (already in dimension declaration order), the fragments of
// every rule whose predicate holds for sel, then overrides. Empty
// fragments contribute nothing. Duplicate tokens keep only their last
// occurrence.
func Compose(base, fragments []string, rules []Rule, sel Selection, overrides ...string) Resolved {
	tokens := make([]string, 0, 16)
	tokens = appendFields(tokens, base...)
	tokens = appendFields(tokens, fragments...)
	for _, rule := range rules {
		if rule.When == nil || !rule.When(sel) {
			continue
		}
		tokens = appendFields(tokens, rule.Class)
	}
	tokens = appendFields(tokens, overrides...)

	return Resolved{Classes: dedupeLast(tokens)}
}

// Merge composes plain fragments in argument order with the same
// dedupe-by-last-occurrence semantics as Compose.
func Merge(fragments ...string) Resolved {
	return Resolved{Classes: dedupeLast(appendFields(nil, fragments...))}
}

func appendFields(dst []string, fragments ...string) []string {
	for _, frag := range fragments {
		dst = append(dst, strings.Fields(frag)...)
	}
	return dst
}

func dedupeLast(tokens []string) []string {
	last := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		last[tok] = i
	}
	out := make([]string, 0, len(last))
	for i, tok := range tokens {
		if last[tok] == i {
			out = append(out, tok)
		}
	}
	return out
}
