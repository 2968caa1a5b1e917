package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/stylekit/internal/element"
	"github.com/alexisbeaulieu97/stylekit/internal/layout"
	"github.com/alexisbeaulieu97/stylekit/internal/link"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func boolPtr(v bool) *bool {
	return &v
}

func classesOf(res Resolution) style.Resolved {
	return style.Resolved{Classes: strings.Fields(res.Class)}
}

func TestResolveButtonDefaults(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Save"})
	require.NoError(t, err)

	kind, ok := res.Kind()
	require.True(t, ok)
	assert.Equal(t, element.Actionable, kind)
	assert.Equal(t, "button", res.Component)
	assert.Equal(t, "Save", res.Label)

	explicit, err := ResolveButton(ButtonConfig{Label: "Save", Variant: "primary", Size: "md", Width: "auto"})
	require.NoError(t, err)
	assert.Equal(t, explicit.Class, res.Class, "omitted values resolve their defaults")
	assert.False(t, classesOf(res).Has("w-48"))
}

func TestCallToActionKeepsItsOwnDefaults(t *testing.T) {
	t.Parallel()

	cta, err := ResolveCallToAction(ButtonConfig{Label: "Start"})
	require.NoError(t, err)
	assert.Equal(t, "cta", cta.Component)
	assert.True(t, classesOf(cta).Has("w-48"), "call-to-action defaults to fixed width")
	assert.True(t, classesOf(cta).HasAll("h-12 px-8 text-lg"))

	generic, err := ResolveButton(ButtonConfig{Label: "Start"})
	require.NoError(t, err)
	assert.False(t, classesOf(generic).Has("w-48"), "generic button defaults to auto width")

	auto, err := ResolveCallToAction(ButtonConfig{Label: "Start", Width: "auto"})
	require.NoError(t, err)
	assert.False(t, classesOf(auto).Has("w-48"))
}

func TestResolveButtonUnknownValueFails(t *testing.T) {
	t.Parallel()

	_, err := ResolveButton(ButtonConfig{Variant: "neon"})
	require.ErrorIs(t, err, skerrors.ErrConfig)

	var configErr *skerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "variant", configErr.Field)
	assert.Equal(t, "neon", configErr.Value)
}

func TestResolveButtonLoadingImpliesDisabled(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Pay", Loading: true, OnActivate: func() {}})
	require.NoError(t, err)

	assert.True(t, classesOf(res).HasAll(InertClass))
	assert.True(t, classesOf(res).Has(LoadingClass))
	assert.Empty(t, res.Label)
	assert.Equal(t, DefaultLoadingText, res.LoadingText)
	require.NotNil(t, res.Element)
	assert.True(t, res.Element.Inert)
	assert.True(t, res.Element.Spinner)
	assert.Nil(t, res.Element.OnActivate)

	both, err := ResolveButton(ButtonConfig{Label: "Pay", Loading: true, Disabled: true, LoadingText: "Paying"})
	require.NoError(t, err, "loading and disabled together are valid")
	assert.Equal(t, "Paying", both.LoadingText)
	assert.Equal(t, 1, strings.Count(both.Class, "opacity-50"))
}

func TestResolveButtonDisabled(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Delete", Variant: "danger", Disabled: true})
	require.NoError(t, err)
	assert.True(t, classesOf(res).HasAll(InertClass))
	assert.False(t, classesOf(res).Has(LoadingClass))
	assert.Equal(t, "Delete", res.Label)
	assert.Empty(t, res.LoadingText)
}

func TestResolveButtonNavigable(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Docs", Config: link.Config{Href: "https://docs.example.com"}})
	require.NoError(t, err)

	kind, _ := res.Kind()
	assert.Equal(t, element.Navigable, kind)
	assert.Equal(t, link.Attributes{
		Href:       "https://docs.example.com",
		IsExternal: true,
		Target:     link.TargetBlank,
		Rel:        link.SafeRel,
	}, res.Element.Attributes)
}

func TestResolveButtonOverridesAreLast(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "x", Class: "rounded-full inline-flex"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Class, "rounded-full inline-flex"))
	assert.Equal(t, 1, strings.Count(res.Class, "inline-flex"))
}

func TestResolveButtonIcon(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Next", Icon: &Icon{Address: "/arrow.svg", AltText: "arrow", Position: IconRight}})
	require.NoError(t, err)
	assert.True(t, classesOf(res).Has("gap-2"))
	assert.True(t, classesOf(res).Has("flex-row-reverse"))
	assert.Equal(t, "/arrow.svg", res.Icon.Address)

	_, err = ResolveButton(ButtonConfig{Label: "Next", Icon: &Icon{Address: "/arrow.svg"}})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), "alt")

	_, err = ResolveButton(ButtonConfig{Label: "Next", Icon: &Icon{AltText: "arrow"}})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), "src")

	_, err = ResolveButton(ButtonConfig{Label: "Next", Icon: &Icon{Address: "/a.svg", AltText: "a", Position: "top"}})
	require.ErrorIs(t, err, skerrors.ErrConfig)

	res, err = ResolveButton(ButtonConfig{Label: "Next", Icon: &Icon{Address: "/a.svg", AltText: "a", Width: -4}})
	require.NoError(t, err, "dimensions pass through unchecked")
	assert.Equal(t, -4, res.Icon.Width)
}

func TestResolveButtonLegacyKeys(t *testing.T) {
	t.Parallel()

	res, err := ResolveButton(ButtonConfig{Label: "Go", FullWidth: boolPtr(true), IsExternal: boolPtr(true), Config: link.Config{Href: "/local"}})
	require.NoError(t, err)
	assert.True(t, classesOf(res).Has("w-full"))
	assert.True(t, res.Element.Attributes.IsExternal)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, "full_width", res.Warnings[0].Key)
	assert.Equal(t, "is_external", res.Warnings[1].Key)

	res, err = ResolveButton(ButtonConfig{Label: "Go", FullWidth: boolPtr(true), Width: "fixed"})
	require.NoError(t, err)
	assert.True(t, classesOf(res).Has("w-48"), "current key wins over legacy key")
	assert.False(t, classesOf(res).Has("w-full"))
	assert.Len(t, res.Warnings, 1)
}

func TestButtonDimensionsContributeExactlyOnce(t *testing.T) {
	dims := ButtonSpec.Registry().Dimensions()

	rapid.Check(t, func(rt *rapid.T) {
		cfg := ButtonConfig{
			Variant: rapid.SampledFrom(mustDim(rt, "variant").Allowed()).Draw(rt, "variant"),
			Size:    rapid.SampledFrom(mustDim(rt, "size").Allowed()).Draw(rt, "size"),
			Width:   rapid.SampledFrom(mustDim(rt, "width").Allowed()).Draw(rt, "width"),
		}
		values := map[string]string{"variant": cfg.Variant, "size": cfg.Size, "width": cfg.Width}

		res, err := ResolveButton(cfg)
		require.NoError(rt, err)
		again, err := ResolveButton(cfg)
		require.NoError(rt, err)
		require.Equal(rt, res.Class, again.Class)

		got := classesOf(res)
		for _, d := range dims {
			frag, ok := d.Fragment(values[d.Name()])
			require.True(rt, ok)
			require.True(rt, got.HasAll(frag), "%s=%s missing %q", d.Name(), values[d.Name()], frag)
		}
	})
}

func mustDim(t require.TestingT, name string) style.Dimension {
	d, ok := ButtonSpec.Registry().Dimension(name)
	require.True(t, ok)
	return d
}

func TestResolveLogo(t *testing.T) {
	t.Parallel()

	res, err := ResolveLogo(LogoConfig{Image: Icon{Address: "/logo.svg", AltText: "Acme"}, Config: link.Config{Href: "/"}})
	require.NoError(t, err)
	assert.True(t, classesOf(res).Has("h-8"), "logo size defaults to md")
	assert.True(t, classesOf(res).Has("hover:opacity-80"))
	kind, _ := res.Kind()
	assert.Equal(t, element.Navigable, kind)
	assert.Empty(t, res.Element.Attributes.Target)

	plain, err := ResolveLogo(LogoConfig{Image: Icon{Address: "/logo.svg", AltText: "Acme"}, Size: "xl"})
	require.NoError(t, err)
	assert.True(t, classesOf(plain).Has("h-12"))
	assert.False(t, classesOf(plain).Has("hover:opacity-80"))

	_, err = ResolveLogo(LogoConfig{Image: Icon{Address: "/logo.svg"}})
	require.ErrorIs(t, err, skerrors.ErrConfig)
}

func TestResolveGroupResponsiveStacking(t *testing.T) {
	t.Parallel()

	horizontal, err := ResolveGroup(GroupConfig{Variant: "primary", Width: "fixed", Direction: "horizontal", MobileBehavior: "stack"})
	require.NoError(t, err)
	got := classesOf(horizontal)
	assert.True(t, got.HasAll("w-full max-w-screen-md"), "fixed width fragment")
	assert.True(t, got.Has("text-primary"), "primary variant fragment")
	assert.True(t, got.Has(layout.StackClass), "stacking fragment for horizontal direction")

	vertical, err := ResolveGroup(GroupConfig{Variant: "primary", Width: "fixed", Direction: "vertical", MobileBehavior: "stack"})
	require.NoError(t, err)
	assert.False(t, classesOf(vertical).Has(layout.StackClass))
	assert.True(t, classesOf(vertical).Has("flex-col"))

	wrapped, err := ResolveGroup(GroupConfig{Direction: "vertical", MobileBehavior: "wrap"})
	require.NoError(t, err)
	assert.True(t, classesOf(wrapped).Has(layout.WrapClass))
}

func TestResolveGroupItemsAndLegacyKey(t *testing.T) {
	t.Parallel()

	res, err := ResolveGroup(GroupConfig{
		Responsive: "scroll",
		Items: []ButtonConfig{
			{Label: "Home", Variant: "link", Config: link.Config{Href: "/"}},
			{Label: "Blog", Variant: "link", Config: link.Config{Href: "//blog.example.com"}},
		},
	})
	require.NoError(t, err)
	assert.True(t, classesOf(res).Has("overflow-x-auto"))
	require.Len(t, res.Children, 2)
	assert.True(t, res.Children[1].Element.Attributes.IsExternal)
	require.Len(t, res.AllWarnings(), 1)
	assert.Equal(t, "responsive", res.AllWarnings()[0].Key)

	_, err = ResolveGroup(GroupConfig{Items: []ButtonConfig{{Variant: "nope"}}})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), "group item 0")
}

func TestResolveHeaderAndFooterInShell(t *testing.T) {
	t.Parallel()

	standalone, err := ResolveHeader(HeaderConfig{Sticky: true}, nil)
	require.NoError(t, err)
	assert.True(t, classesOf(standalone).HasAll("sticky top-0 z-50"))
	assert.False(t, classesOf(standalone).Has("shrink-0"))

	ctx := layout.Context{Variant: "full-bleed", HasHeader: true, HasFooter: true}
	overlay, err := ResolveHeader(HeaderConfig{Variant: "transparent"}, &ctx)
	require.NoError(t, err)
	assert.True(t, classesOf(overlay).HasAll("absolute inset-x-0 top-0 shrink-0"))

	footer, err := ResolveFooter(FooterConfig{Bordered: true}, &ctx)
	require.NoError(t, err)
	assert.True(t, classesOf(footer).HasAll("mt-auto border-t"))

	_, err = ResolveFooter(FooterConfig{Variant: "huge"}, nil)
	require.ErrorIs(t, err, skerrors.ErrConfig)
}

func TestResolvePage(t *testing.T) {
	t.Parallel()

	page, err := ResolvePage(layout.Default(), PageConfig{
		Preset:       "marketing",
		Overrides:    layout.Overrides{MaxWidth: "xl", Footer: boolPtr(false)},
		HeaderConfig: &HeaderConfig{Logo: &LogoConfig{Image: Icon{Address: "/l.svg", AltText: "L"}}},
		FooterConfig: &FooterConfig{},
	})
	require.NoError(t, err)

	assert.Contains(t, page.Main, "max-w-screen-xl")
	assert.Equal(t, layout.Context{Variant: "marketing", HasHeader: true, HasFooter: false}, page.Context)
	require.NotNil(t, page.Header)
	assert.Contains(t, page.Header.Class, "shrink-0")
	require.Len(t, page.Header.Children, 1)
	assert.Nil(t, page.FooterBar, "footer is dropped when the shell has none")

	_, err = ResolvePage(layout.Default(), PageConfig{Preset: "unknown"})
	require.ErrorIs(t, err, skerrors.ErrConfig)
}

func TestResolvePageValidatesChromeWithoutSlot(t *testing.T) {
	t.Parallel()

	_, err := ResolvePage(layout.Default(), PageConfig{
		Preset:       "centered",
		HeaderConfig: &HeaderConfig{Variant: "neon"},
	})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), "page header")

	_, err = ResolvePage(layout.Default(), PageConfig{
		Preset:       "centered",
		FooterConfig: &FooterConfig{Variant: "bogus"},
	})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), "page footer")

	_, err = ResolvePage(layout.Default(), PageConfig{
		Preset:       "default",
		Overrides:    layout.Overrides{Header: boolPtr(false)},
		HeaderConfig: &HeaderConfig{Variant: "neon"},
	})
	require.ErrorIs(t, err, skerrors.ErrConfig)

	page, err := ResolvePage(layout.Default(), PageConfig{
		Preset:       "centered",
		HeaderConfig: &HeaderConfig{Variant: "blurred"},
		FooterConfig: &FooterConfig{Variant: "minimal"},
	})
	require.NoError(t, err)
	assert.Nil(t, page.Header)
	assert.Nil(t, page.FooterBar)
}
