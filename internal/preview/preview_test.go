package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/layout"
	"github.com/alexisbeaulieu97/stylekit/internal/link"
)

func lineWith(t *testing.T, out, needle string) int {
	t.Helper()
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return i
		}
	}
	t.Fatalf("%q not found in:\n%s", needle, out)
	return -1
}

func TestRenderButtonStates(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	res, err := components.ResolveButton(components.ButtonConfig{Label: "Save", Loading: true})
	require.NoError(t, err)
	out, err := r.Render(res)
	require.NoError(t, err)
	assert.Contains(t, out, components.DefaultLoadingText)
	assert.NotContains(t, out, "Save")

	res, err = components.ResolveButton(components.ButtonConfig{
		Label:  "Docs",
		Config: link.Config{Href: "https://example.com"},
		Icon:   &components.Icon{Address: "/i.svg", AltText: "book", Position: components.IconRight},
	})
	require.NoError(t, err)
	out, err = r.Render(res)
	require.NoError(t, err)
	assert.Contains(t, out, "Docs [book]")
	assert.Contains(t, out, "-> https://example.com (external)")
}

func TestRenderGroupDirection(t *testing.T) {
	t.Parallel()

	cfg := components.GroupConfig{
		Items: []components.ButtonConfig{{Label: "One", Variant: "ghost"}, {Label: "Two", Variant: "ghost"}},
	}
	res, err := components.ResolveGroup(cfg)
	require.NoError(t, err)

	desktop, err := New(Options{}).Render(res)
	require.NoError(t, err)
	assert.Equal(t, lineWith(t, desktop, "One"), lineWith(t, desktop, "Two"))

	mobile, err := New(Options{Mobile: true}).Render(res)
	require.NoError(t, err)
	assert.Less(t, lineWith(t, mobile, "One"), lineWith(t, mobile, "Two"))

	cfg.MobileBehavior = layout.MobileScroll
	res, err = components.ResolveGroup(cfg)
	require.NoError(t, err)
	scroll, err := New(Options{Mobile: true}).Render(res)
	require.NoError(t, err)
	assert.Equal(t, lineWith(t, scroll, "One"), lineWith(t, scroll, "Two"))
}

func TestRenderShowsClasses(t *testing.T) {
	t.Parallel()

	res, err := components.ResolveButton(components.ButtonConfig{Label: "Go"})
	require.NoError(t, err)

	out, err := New(Options{ShowClasses: true}).Render(res)
	require.NoError(t, err)
	assert.Contains(t, out, "inline-flex")
}

func TestRenderRejectsAnonymousResolution(t *testing.T) {
	t.Parallel()

	_, err := New(Options{}).Render(components.Resolution{})
	require.Error(t, err)
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	page, err := components.ResolvePage(layout.Default(), components.PageConfig{
		Preset:       "default",
		HeaderConfig: &components.HeaderConfig{Nav: &components.GroupConfig{Items: []components.ButtonConfig{{Label: "Home", Config: link.Config{Href: "/"}}}}},
		FooterConfig: &components.FooterConfig{},
	})
	require.NoError(t, err)

	out, err := New(Options{}).RenderPage(page, "body text")
	require.NoError(t, err)
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "Home")
	assert.Less(t, lineWith(t, out, "Home"), lineWith(t, out, "body text"))
}
