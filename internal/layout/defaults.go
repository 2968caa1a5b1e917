package layout

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// MaxWidthDimension is the fixed max-width table. "none" contributes nothing.
func MaxWidthDimension() style.Dimension {
	return style.MustDimension("max_width", "7xl",
		style.Option{Value: "sm", Class: "max-w-screen-sm"},
		style.Option{Value: "md", Class: "max-w-screen-md"},
		style.Option{Value: "lg", Class: "max-w-screen-lg"},
		style.Option{Value: "xl", Class: "max-w-screen-xl"},
		style.Option{Value: "2xl", Class: "max-w-screen-2xl"},
		style.Option{Value: "7xl", Class: "max-w-7xl"},
		style.Option{Value: "prose", Class: "max-w-prose"},
		style.Option{Value: "full", Class: "max-w-full"},
		style.Option{Value: "none"},
	)
}

var defaultRegistry = mustRegistry(MaxWidthDimension(),
	Preset{
		Name:            "default",
		Container:       "flex min-h-screen flex-col",
		Main:            "flex-1 w-full mx-auto px-4 sm:px-6",
		Footer:          "w-full border-t",
		DefaultMaxWidth: "7xl",
		HasHeader:       true,
		HasFooter:       true,
	},
	Preset{
		Name:            "centered",
		Container:       "flex min-h-screen flex-col items-center justify-center",
		Main:            "w-full mx-auto px-4",
		Footer:          "w-full text-center",
		DefaultMaxWidth: "md",
	},
	Preset{
		Name:            "full-bleed",
		Container:       "flex min-h-screen flex-col",
		Main:            "flex-1 w-full",
		Footer:          "w-full",
		DefaultMaxWidth: "full",
		HasHeader:       true,
		HasFooter:       true,
	},
	Preset{
		Name:            "sidebar",
		Container:       "grid min-h-screen grid-cols-[16rem_1fr]",
		Main:            "min-w-0 p-6",
		Footer:          "col-span-2 border-t",
		DefaultMaxWidth: "none",
		HasHeader:       true,
	},
	Preset{
		Name:            "marketing",
		Container:       "flex min-h-screen flex-col bg-background",
		Main:            "flex-1 w-full mx-auto px-6 py-12",
		Footer:          "w-full border-t bg-muted",
		DefaultMaxWidth: "7xl",
		HasHeader:       true,
		HasFooter:       true,
	},
)

// Default returns the preset registry built at process start.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(maxWidths style.Dimension, presets ...Preset) *Registry {
	r, err := NewRegistry(maxWidths, presets...)
	if err != nil {
		panic(err)
	}
	return r
}
