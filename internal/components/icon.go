package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/validation"
)

// Icon positions relative to the label.
const (
	IconLeft  = "left"
	IconRight = "right"
)

// Icon is an opaque image descriptor. The address and alt text must be
// present and a position, when given, must be left or right; dimensions
// pass through untouched.
type Icon struct {
	Address  string `yaml:"src" json:"src" validate:"required"`
	AltText  string `yaml:"alt" json:"alt" validate:"required"`
	Width    int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height   int    `yaml:"height,omitempty" json:"height,omitempty"`
	Position string `yaml:"position,omitempty" json:"position,omitempty" validate:"omitempty,oneof=left right"`
}

// validateIcon checks a declared icon. A nil icon is not declared and is
// always valid.
func validateIcon(component string, icon *Icon) error {
	if icon == nil {
		return nil
	}
	return validation.Struct(component+".icon", icon)
}

func iconOnRight(icon *Icon) bool {
	return icon != nil && icon.Position == IconRight
}
