package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestResolveUnknownPresetFails(t *testing.T) {
	t.Parallel()

	_, err := Default().Resolve("nope", Overrides{})
	require.ErrorIs(t, err, skerrors.ErrConfig)
	assert.Contains(t, err.Error(), `"nope"`)

	var configErr *skerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "preset", configErr.Field)
}

func TestResolveUnknownMaxWidthFails(t *testing.T) {
	t.Parallel()

	_, err := Default().Resolve("default", Overrides{MaxWidth: "giant"})
	require.ErrorIs(t, err, skerrors.ErrConfig)

	var configErr *skerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "max_width", configErr.Field)
	assert.Equal(t, "giant", configErr.Value)
}

func TestResolvePresetTriple(t *testing.T) {
	t.Parallel()

	shell, err := Default().Resolve("default", Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "flex min-h-screen flex-col", shell.Container.String())
	assert.True(t, shell.Main.Has("max-w-7xl"))
	assert.Equal(t, "w-full border-t", shell.Footer.String())
	assert.Equal(t, Context{Variant: "default", HasHeader: true, HasFooter: true}, shell.Context)
}

func TestResolveAppliesOverrides(t *testing.T) {
	t.Parallel()

	shell, err := Default().Resolve("centered", Overrides{
		MaxWidth:       "lg",
		Header:         boolPtr(true),
		Footer:         boolPtr(false),
		ContainerClass: "bg-white items-center",
		MainClass:      "px-8",
		FooterClass:    "text-sm",
	})
	require.NoError(t, err)

	assert.Equal(t, "flex min-h-screen flex-col justify-center bg-white items-center", shell.Container.String())
	assert.True(t, shell.Main.Has("max-w-screen-lg"))
	assert.False(t, shell.Main.Has("max-w-screen-md"))
	assert.Equal(t, "px-8", shell.Main.Classes[len(shell.Main.Classes)-1])
	assert.Equal(t, "w-full text-center text-sm", shell.Footer.String())
	assert.Equal(t, Context{Variant: "centered", HasHeader: true, HasFooter: false}, shell.Context)
}

func TestResolveNoneMaxWidthContributesNothing(t *testing.T) {
	t.Parallel()

	shell, err := Default().Resolve("sidebar", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "min-w-0 p-6", shell.Main.String())
}

func TestResponsive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mobile    string
		direction string
		contains  []string
		excludes  []string
	}{
		{mobile: MobileStack, direction: Horizontal, contains: []string{"flex-row", StackClass}},
		{mobile: MobileStack, direction: Vertical, contains: []string{"flex-col"}, excludes: []string{StackClass}},
		{mobile: MobileWrap, direction: Vertical, contains: []string{WrapClass}, excludes: []string{StackClass}},
		{mobile: MobileScroll, direction: Horizontal, contains: []string{"overflow-x-auto", "flex-nowrap"}, excludes: []string{StackClass}},
		{mobile: "", direction: "", contains: []string{"flex-row", StackClass}},
	}

	for _, tt := range tests {
		got, err := Responsive(tt.mobile, tt.direction)
		require.NoError(t, err)
		for _, c := range tt.contains {
			assert.True(t, got.Has(c), "%s/%s should contain %s", tt.mobile, tt.direction, c)
		}
		for _, c := range tt.excludes {
			assert.False(t, got.Has(c), "%s/%s should not contain %s", tt.mobile, tt.direction, c)
		}
	}

	_, err := Responsive("collapse", Horizontal)
	require.ErrorIs(t, err, skerrors.ErrConfig)
	_, err = Responsive(MobileStack, "diagonal")
	require.ErrorIs(t, err, skerrors.ErrConfig)
}

func TestResolveMainResponsive(t *testing.T) {
	t.Parallel()

	shell, err := Default().Resolve("default", Overrides{MobileBehavior: MobileStack, Direction: Horizontal})
	require.NoError(t, err)
	assert.True(t, shell.Main.Has(StackClass))
	assert.True(t, shell.Main.Has("flex"))

	shell, err = Default().Resolve("default", Overrides{MobileBehavior: MobileStack, Direction: Vertical})
	require.NoError(t, err)
	assert.False(t, shell.Main.Has(StackClass))
}

func TestResolveProducesIndependentContexts(t *testing.T) {
	t.Parallel()

	a, err := Default().Resolve("marketing", Overrides{})
	require.NoError(t, err)
	b, err := Default().Resolve("marketing", Overrides{Footer: boolPtr(false)})
	require.NoError(t, err)

	assert.True(t, a.Context.HasFooter)
	assert.False(t, b.Context.HasFooter)
}

func TestNewRegistryRejectsInvalidPresets(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(MaxWidthDimension(), Preset{Name: "a"}, Preset{Name: "a"})
	require.Error(t, err)

	_, err = NewRegistry(MaxWidthDimension(), Preset{Name: "b", DefaultMaxWidth: "huge"})
	require.Error(t, err)
}
