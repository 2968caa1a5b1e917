// Package preview renders resolved components as styled terminal text. It
// is the CLI's implementation of components.Renderer and exists to eyeball
// a document without a browser.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/element"
	"github.com/alexisbeaulieu97/stylekit/internal/layout"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	shellStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Options configures a Renderer.
type Options struct {
	Theme Theme
	// Mobile applies the max-sm responsive classes.
	Mobile bool
	// ShowClasses prints the class string under every element.
	ShowClasses bool
}

// Renderer draws resolutions with lipgloss.
type Renderer struct {
	theme       Theme
	mobile      bool
	showClasses bool
}

var _ components.Renderer = (*Renderer)(nil)

// New creates a Renderer. A zero Theme selects DefaultTheme.
func New(opts Options) *Renderer {
	theme := opts.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme()
	}
	return &Renderer{theme: theme, mobile: opts.Mobile, showClasses: opts.ShowClasses}
}

// Render draws r and its children.
func (p *Renderer) Render(r components.Resolution) (string, error) {
	if r.Component == "" {
		return "", fmt.Errorf("render: resolution has no component name")
	}

	tokens := tokenSet(r.Class)
	var out string
	if r.Element != nil {
		out = p.element(r, tokens)
	} else {
		body, err := p.children(r.Children, tokens)
		if err != nil {
			return "", err
		}
		out = p.styleFor(tokens).Render(body)
	}

	if p.showClasses {
		out = lipgloss.JoinVertical(lipgloss.Left, out, metaStyle.Render(r.Class))
	}
	return out, nil
}

// RenderPage draws a page shell with its header, the given body blocks and
// its footer.
func (p *Renderer) RenderPage(page components.Page, body ...string) (string, error) {
	blocks := []string{titleStyle.Render(page.Context.Variant) + " " + metaStyle.Render(page.Container)}

	if page.Header != nil {
		header, err := p.Render(*page.Header)
		if err != nil {
			return "", fmt.Errorf("render page header: %w", err)
		}
		blocks = append(blocks, header)
	}

	main := strings.Join(body, "\n")
	if main == "" {
		main = metaStyle.Render("(empty)")
	}
	blocks = append(blocks, main)
	if p.showClasses {
		blocks = append(blocks, metaStyle.Render("main: "+page.Main))
	}

	if page.FooterBar != nil {
		footer, err := p.Render(*page.FooterBar)
		if err != nil {
			return "", fmt.Errorf("render page footer: %w", err)
		}
		blocks = append(blocks, footer)
	}

	return shellStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...)), nil
}

func (p *Renderer) element(r components.Resolution, tokens map[string]bool) string {
	text := r.Label
	if r.LoadingText != "" {
		text = r.LoadingText
	}
	if r.Icon != nil {
		glyph := "[" + r.Icon.AltText + "]"
		switch {
		case text == "":
			text = glyph
		case r.Icon.Position == components.IconRight:
			text = text + " " + glyph
		default:
			text = glyph + " " + text
		}
	}
	if text == "" {
		text = r.Component
	}

	rendered := p.styleFor(tokens).Render(text)

	el := r.Element
	if el.Kind == element.Navigable {
		dest := "-> " + el.Attributes.Href
		if el.Attributes.IsExternal {
			dest += " (external)"
		}
		rendered = lipgloss.JoinHorizontal(lipgloss.Center, rendered, " ", metaStyle.Render(dest))
	}
	return rendered
}

func (p *Renderer) children(children []components.Resolution, tokens map[string]bool) (string, error) {
	parts := make([]string, 0, len(children))
	for i, child := range children {
		out, err := p.Render(child)
		if err != nil {
			return "", fmt.Errorf("child %d: %w", i, err)
		}
		parts = append(parts, out)
	}
	if len(parts) == 0 {
		return "", nil
	}

	if p.vertical(tokens) {
		return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
	}

	spaced := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, part)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, spaced...)

	if p.mobile && tokens["flex-wrap"] && p.theme.FullWidth > 0 && lipgloss.Width(row) > p.theme.FullWidth {
		return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
	}
	return row, nil
}

func (p *Renderer) vertical(tokens map[string]bool) bool {
	if tokens["flex-col"] {
		return true
	}
	return p.mobile && tokens[layout.StackClass]
}

func (p *Renderer) styleFor(tokens map[string]bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, rule := range tokenRules {
		if tokens[rule.token] {
			style = rule.apply(style, p.theme)
		}
	}
	return style
}

func tokenSet(class string) map[string]bool {
	fields := strings.Fields(class)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
