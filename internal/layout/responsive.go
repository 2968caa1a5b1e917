package layout

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// Mobile behaviours and directions accepted by the responsive table.
const (
	MobileStack  = "stack"
	MobileWrap   = "wrap"
	MobileScroll = "scroll"

	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Fragments contributed by the responsive rules.
const (
	StackClass  = "max-sm:flex-col"
	WrapClass   = "flex-wrap"
	ScrollClass = "overflow-x-auto flex-nowrap"
)

// MobileDimension enumerates mobile behaviours. Its fragments are empty:
// contributions come from ResponsiveRules because stacking depends on the
// direction.
func MobileDimension() style.Dimension {
	return style.MustDimension("mobile_behavior", MobileStack,
		style.Option{Value: MobileStack},
		style.Option{Value: MobileWrap},
		style.Option{Value: MobileScroll},
	)
}

// DirectionDimension enumerates layout directions with their row/column
// fragments.
func DirectionDimension() style.Dimension {
	return style.MustDimension("direction", Horizontal,
		style.Option{Value: Horizontal, Class: "flex-row"},
		style.Option{Value: Vertical, Class: "flex-col"},
	)
}

// ResponsiveRules returns the conditional rules for specs that declare both
// the mobile_behavior and direction dimensions. Stacking only changes
// row-direction layouts; wrap and scroll apply in either direction.
func ResponsiveRules() []style.Rule {
	return []style.Rule{
		style.NewRule("mobile-stack", style.AllOf(
			style.ValueIs("mobile_behavior", MobileStack),
			style.ValueIs("direction", Horizontal),
		), StackClass),
		style.NewRule("mobile-wrap", style.ValueIs("mobile_behavior", MobileWrap), WrapClass),
		style.NewRule("mobile-scroll", style.ValueIs("mobile_behavior", MobileScroll), ScrollClass),
	}
}

var responsiveSpec = style.NewSpec(
	style.MustRegistry("responsive", MobileDimension(), DirectionDimension()),
	nil,
	ResponsiveRules()...,
)

// Responsive resolves the two-axis responsive input into its fragments.
// Empty inputs take the dimension defaults.
func Responsive(mobileBehavior, direction string) (style.Resolved, error) {
	return responsiveSpec.Resolve(style.Selection{Values: map[string]string{
		"mobile_behavior": mobileBehavior,
		"direction":       direction,
	}})
}
