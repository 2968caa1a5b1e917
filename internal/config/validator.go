package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/validation"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on the document.
// Dimension values are not checked here; they are rejected at resolution
// time against the registries.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return skerrors.NewConfigError("document", "", "document is nil", nil)
	}

	if err := validation.Struct("document", doc); err != nil {
		return err
	}

	seen := make(map[string]int, len(doc.Widgets))
	for i, w := range doc.Widgets {
		if first, exists := seen[w.ID]; exists {
			return skerrors.NewConfigError("document", fieldForWidget(i, "id"),
				fmt.Sprintf("duplicate widget id %q (first declared at widgets[%d])", w.ID, first), nil)
		}
		seen[w.ID] = i

		if !w.hasBody() {
			return skerrors.MissingField("document", fieldForWidget(i, w.Kind))
		}
	}

	return nil
}

func (w Widget) hasBody() bool {
	switch w.Kind {
	case KindButton, KindCTA:
		return w.Button != nil
	case KindLogo:
		return w.Logo != nil
	case KindGroup:
		return w.Group != nil
	case KindHeader:
		return w.Header != nil
	case KindFooter:
		return w.Footer != nil
	default:
		return false
	}
}

func fieldForWidget(index int, field string) string {
	return fmt.Sprintf("widgets[%d].%s", index, field)
}
