package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestIsExternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want bool
	}{
		{href: "https://a.com", want: true},
		{href: "http://a.com/path", want: true},
		{href: "//a.com", want: true},
		{href: "/local", want: false},
		{href: "#section", want: false},
		{href: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsExternal(tt.href), tt.href)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want Attributes
	}{
		{
			name: "local link has no defaults",
			cfg:  Config{Href: "/local"},
			want: Attributes{Href: "/local"},
		},
		{
			name: "explicit external flag on local path",
			cfg:  Config{Href: "/local", External: boolPtr(true)},
			want: Attributes{Href: "/local", IsExternal: true, Target: TargetBlank, Rel: SafeRel},
		},
		{
			name: "absolute address without flag",
			cfg:  Config{Href: "https://a.com"},
			want: Attributes{Href: "https://a.com", IsExternal: true, Target: TargetBlank, Rel: SafeRel},
		},
		{
			name: "protocol relative address",
			cfg:  Config{Href: "//a.com"},
			want: Attributes{Href: "//a.com", IsExternal: true, Target: TargetBlank, Rel: SafeRel},
		},
		{
			name: "explicit target wins on external link",
			cfg:  Config{Href: "https://a.com", Target: "_self"},
			want: Attributes{Href: "https://a.com", IsExternal: true, Target: "_self", Rel: SafeRel},
		},
		{
			name: "explicit rel opts out of injection",
			cfg:  Config{Href: "https://a.com", Rel: "author"},
			want: Attributes{Href: "https://a.com", IsExternal: true, Target: TargetBlank, Rel: "author"},
		},
		{
			name: "explicit new context on local link still gets safe rel",
			cfg:  Config{Href: "/docs", Target: TargetBlank},
			want: Attributes{Href: "/docs", Target: TargetBlank, Rel: SafeRel},
		},
		{
			name: "false external flag does not hide absolute address",
			cfg:  Config{Href: "https://a.com", External: boolPtr(false)},
			want: Attributes{Href: "https://a.com", IsExternal: true, Target: TargetBlank, Rel: SafeRel},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.cfg))
		})
	}
}

func TestResolveProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{
			Href:   rapid.SampledFrom([]string{"", "/local", "https://a.com", "http://b.org/x", "//cdn.example", "#top"}).Draw(rt, "href"),
			Target: rapid.SampledFrom([]string{"", TargetBlank, "_self", "frame"}).Draw(rt, "target"),
			Rel:    rapid.SampledFrom([]string{"", "author", SafeRel}).Draw(rt, "rel"),
		}
		if rapid.Bool().Draw(rt, "flagged") {
			cfg.External = boolPtr(rapid.Bool().Draw(rt, "external"))
		}

		got := Resolve(cfg)

		if cfg.Target != "" {
			require.Equal(rt, cfg.Target, got.Target, "explicit target always wins")
		}
		if cfg.Rel != "" {
			require.Equal(rt, cfg.Rel, got.Rel, "explicit rel always wins")
		}
		if OpensNewContext(got.Target) && cfg.Rel == "" {
			require.Equal(rt, SafeRel, got.Rel)
		}
		require.Equal(rt, got, Resolve(cfg), "resolution must be deterministic")
	})
}
