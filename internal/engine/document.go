package engine

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/layout"
)

// WidgetResult pairs a widget id with its resolution.
type WidgetResult struct {
	ID         string                `yaml:"id" json:"id"`
	Kind       string                `yaml:"kind" json:"kind"`
	Resolution components.Resolution `yaml:"resolution" json:"resolution"`
}

// DocumentResult is the resolved form of a whole document.
type DocumentResult struct {
	Name    string           `yaml:"name,omitempty" json:"name,omitempty"`
	Page    *components.Page `yaml:"page,omitempty" json:"page,omitempty"`
	Widgets []WidgetResult   `yaml:"widgets" json:"widgets"`
}

// ResolveDocument resolves the page shell, if any, and every widget in
// declaration order. A header or footer widget is resolved inside the page
// shell context only when that shell reserves the matching slot; otherwise
// it is resolved standalone. The first ConfigError aborts the call.
func (e *Engine) ResolveDocument(doc *config.Document) (*DocumentResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	result := &DocumentResult{
		Name:    doc.Name,
		Widgets: make([]WidgetResult, 0, len(doc.Widgets)),
	}

	var shell *layout.Context
	if doc.Page != nil {
		page, err := e.Page(*doc.Page)
		if err != nil {
			return nil, fmt.Errorf("page: %w", err)
		}
		result.Page = &page
		ctx := page.Context
		shell = &ctx
	}

	for _, w := range doc.Widgets {
		res, err := e.widget(w, shell)
		if err != nil {
			return nil, fmt.Errorf("widget %s: %w", w.ID, err)
		}
		result.Widgets = append(result.Widgets, WidgetResult{ID: w.ID, Kind: w.Kind, Resolution: res})
	}

	return result, nil
}

func (e *Engine) widget(w config.Widget, shell *layout.Context) (components.Resolution, error) {
	switch {
	case w.Kind == config.KindButton && w.Button != nil:
		return e.Button(*w.Button)
	case w.Kind == config.KindCTA && w.Button != nil:
		return e.CallToAction(*w.Button)
	case w.Kind == config.KindLogo && w.Logo != nil:
		return e.Logo(*w.Logo)
	case w.Kind == config.KindGroup && w.Group != nil:
		return e.Group(*w.Group)
	case w.Kind == config.KindHeader && w.Header != nil:
		if shell != nil && !shell.HasHeader {
			shell = nil
		}
		return e.Header(*w.Header, shell)
	case w.Kind == config.KindFooter && w.Footer != nil:
		if shell != nil && !shell.HasFooter {
			shell = nil
		}
		return e.Footer(*w.Footer, shell)
	default:
		return components.Resolution{}, fmt.Errorf("unsupported widget kind %q", w.Kind)
	}
}
