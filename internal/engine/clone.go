package engine

import (
	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/element"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// clone deep-copies a resolution so cached values are never shared with
// callers.
func clone(r components.Resolution) components.Resolution {
	if r.Element != nil {
		el := *r.Element
		r.Element = &el
	}
	if r.Icon != nil {
		icon := *r.Icon
		r.Icon = &icon
	}
	if r.Children != nil {
		children := make([]components.Resolution, len(r.Children))
		for i, child := range r.Children {
			children[i] = clone(child)
		}
		r.Children = children
	}
	if r.Warnings != nil {
		r.Warnings = append([]skerrors.DeprecatedKeyWarning(nil), r.Warnings...)
	}
	return r
}

func clonePage(p components.Page) components.Page {
	if p.Header != nil {
		header := clone(*p.Header)
		p.Header = &header
	}
	if p.FooterBar != nil {
		footer := clone(*p.FooterBar)
		p.FooterBar = &footer
	}
	return p
}

// attachHandles reattaches per-call handles to a cached resolution. The
// activation handle is only kept for actionable elements that are not inert.
func attachHandles(r *components.Resolution, onActivate, ref any) {
	if r.Element == nil {
		return
	}
	r.Element.Ref = ref
	if r.Element.Kind == element.Actionable && !r.Element.Inert {
		r.Element.OnActivate = onActivate
	}
}
