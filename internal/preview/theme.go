package preview

import "github.com/charmbracelet/lipgloss"

// Theme maps the semantic color tokens used in class strings to terminal
// colors.
type Theme struct {
	Primary       lipgloss.Color
	PrimaryText   lipgloss.Color
	Secondary     lipgloss.Color
	SecondaryText lipgloss.Color
	Destructive   lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color

	// FixedWidth is the cell width used for fixed-width elements.
	FixedWidth int
	// FullWidth is the cell width used for full-width elements. Zero leaves
	// them at their natural width.
	FullWidth int
}

// DefaultTheme returns the 256-color theme used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Primary:       lipgloss.Color("33"),
		PrimaryText:   lipgloss.Color("231"),
		Secondary:     lipgloss.Color("238"),
		SecondaryText: lipgloss.Color("252"),
		Destructive:   lipgloss.Color("196"),
		Accent:        lipgloss.Color("39"),
		Muted:         lipgloss.Color("244"),
		Border:        lipgloss.Color("240"),
		FixedWidth:    24,
		FullWidth:     60,
	}
}

// StyleFunc applies one class token to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

type tokenRule struct {
	token string
	apply StyleFunc
}

// tokenRules is applied in order; later rules win on conflicting properties.
var tokenRules = []tokenRule{
	{"bg-primary", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Background(t.Primary).Foreground(t.PrimaryText)
	}},
	{"bg-secondary", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Background(t.Secondary).Foreground(t.SecondaryText)
	}},
	{"bg-destructive", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Background(t.Destructive).Foreground(t.PrimaryText)
	}},
	{"text-primary", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Accent)
	}},
	{"text-muted-foreground", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Muted)
	}},
	{"border", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(lipgloss.RoundedBorder()).BorderForeground(t.Border)
	}},
	{"border-b", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(t.Border)
	}},
	{"border-t", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(t.Border)
	}},
	{"underline-offset-4", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Underline(true)
	}},
	{"font-medium", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}},
	{"font-semibold", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}},
	{"px-3", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(0, 1)
	}},
	{"px-4", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(0, 2)
	}},
	{"px-8", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(0, 4)
	}},
	{"w-48", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Width(t.FixedWidth).Align(lipgloss.Center)
	}},
	{"w-full", func(s lipgloss.Style, t Theme) lipgloss.Style {
		if t.FullWidth <= 0 {
			return s
		}
		return s.Width(t.FullWidth).Align(lipgloss.Center)
	}},
	{"opacity-50", func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Faint(true)
	}},
}
