// Package engine memoizes component and page resolutions and reports
// deprecated configuration keys to the application logger.
package engine

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/layout"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

// DefaultCacheSize bounds each resolution cache when Options leave it unset.
const DefaultCacheSize = 512

// Options configures an Engine.
type Options struct {
	CacheSize int
	Presets   *layout.Registry
	Logger    *logger.Logger
}

// Engine resolves widgets through the component specs. Outputs are a pure
// function of their inputs, so results are cached by configuration value
// and only evicted by size.
type Engine struct {
	widgets *lru.Cache[string, components.Resolution]
	pages   *lru.Cache[string, components.Page]
	presets *layout.Registry
	log     *logger.Logger
}

// New constructs an Engine.
func New(opts Options) (*Engine, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	widgets, err := lru.New[string, components.Resolution](size)
	if err != nil {
		return nil, fmt.Errorf("create widget cache: %w", err)
	}
	pages, err := lru.New[string, components.Page](size)
	if err != nil {
		return nil, fmt.Errorf("create page cache: %w", err)
	}

	presets := opts.Presets
	if presets == nil {
		presets = layout.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Engine{widgets: widgets, pages: pages, presets: presets, log: log}, nil
}

// Presets returns the layout preset registry in use.
func (e *Engine) Presets() *layout.Registry {
	return e.presets
}

// Button resolves a generic button.
func (e *Engine) Button(cfg components.ButtonConfig) (components.Resolution, error) {
	return e.button("button", cfg, components.ResolveButton)
}

// CallToAction resolves a call-to-action button.
func (e *Engine) CallToAction(cfg components.ButtonConfig) (components.Resolution, error) {
	return e.button("cta", cfg, components.ResolveCallToAction)
}

func (e *Engine) button(kind string, cfg components.ButtonConfig, resolve func(components.ButtonConfig) (components.Resolution, error)) (components.Resolution, error) {
	onActivate, ref := cfg.OnActivate, cfg.Ref
	cfg.OnActivate, cfg.Ref = nil, nil

	res, err := e.memo(kind, cfg, func() (components.Resolution, error) {
		return resolve(cfg)
	})
	if err != nil {
		return components.Resolution{}, err
	}
	attachHandles(&res, onActivate, ref)
	return res, nil
}

// Logo resolves a logo.
func (e *Engine) Logo(cfg components.LogoConfig) (components.Resolution, error) {
	ref := cfg.Ref
	cfg.Ref = nil

	res, err := e.memo("logo", cfg, func() (components.Resolution, error) {
		return components.ResolveLogo(cfg)
	})
	if err != nil {
		return components.Resolution{}, err
	}
	attachHandles(&res, nil, ref)
	return res, nil
}

// Group resolves a group. Groups whose items carry handles bypass the
// cache so every item keeps its own handles.
func (e *Engine) Group(cfg components.GroupConfig) (components.Resolution, error) {
	return e.memoUnless(groupHasHandles(cfg), "group", cfg, func() (components.Resolution, error) {
		return components.ResolveGroup(cfg)
	})
}

// Header resolves a header, optionally inside a page shell context.
func (e *Engine) Header(cfg components.HeaderConfig, shell *layout.Context) (components.Resolution, error) {
	key := struct {
		Config components.HeaderConfig `json:"config"`
		Shell  *layout.Context         `json:"shell"`
	}{cfg, shell}
	return e.memoUnless(headerHasHandles(cfg), "header", key, func() (components.Resolution, error) {
		return components.ResolveHeader(cfg, shell)
	})
}

// Footer resolves a footer, optionally inside a page shell context.
func (e *Engine) Footer(cfg components.FooterConfig, shell *layout.Context) (components.Resolution, error) {
	key := struct {
		Config components.FooterConfig `json:"config"`
		Shell  *layout.Context         `json:"shell"`
	}{cfg, shell}
	return e.memoUnless(footerHasHandles(cfg), "footer", key, func() (components.Resolution, error) {
		return components.ResolveFooter(cfg, shell)
	})
}

// Page resolves a page shell and its chrome.
func (e *Engine) Page(cfg components.PageConfig) (components.Page, error) {
	if pageHasHandles(cfg) {
		page, err := components.ResolvePage(e.presets, cfg)
		if err != nil {
			return components.Page{}, err
		}
		e.reportPage(page)
		return page, nil
	}

	key, err := cacheKey("page", cfg)
	if err != nil {
		return components.Page{}, err
	}

	page, ok := e.pages.Get(key)
	if ok {
		e.log.Debug("page cache hit", "preset", cfg.Preset)
	} else {
		page, err = components.ResolvePage(e.presets, cfg)
		if err != nil {
			return components.Page{}, err
		}
		e.pages.Add(key, page)
	}

	page = clonePage(page)
	e.reportPage(page)
	return page, nil
}

// memoUnless resolves without the cache when bypass is set.
func (e *Engine) memoUnless(bypass bool, kind string, cfg any, resolve func() (components.Resolution, error)) (components.Resolution, error) {
	if !bypass {
		return e.memo(kind, cfg, resolve)
	}
	res, err := resolve()
	if err != nil {
		return components.Resolution{}, err
	}
	e.report(res)
	return res, nil
}

func (e *Engine) memo(kind string, cfg any, resolve func() (components.Resolution, error)) (components.Resolution, error) {
	key, err := cacheKey(kind, cfg)
	if err != nil {
		return components.Resolution{}, err
	}

	res, ok := e.widgets.Get(key)
	if ok {
		e.log.Debug("resolution cache hit", "kind", kind)
	} else {
		res, err = resolve()
		if err != nil {
			return components.Resolution{}, err
		}
		e.widgets.Add(key, res)
	}

	res = clone(res)
	e.report(res)
	return res, nil
}

// report logs every deprecated key honored while resolving res.
func (e *Engine) report(res components.Resolution) {
	for _, w := range res.AllWarnings() {
		e.log.Warn("deprecated configuration key",
			"widget", w.Component,
			"key", w.Key,
			"replacement", w.Replacement,
		)
	}
}

func (e *Engine) reportPage(page components.Page) {
	if page.Header != nil {
		e.report(*page.Header)
	}
	if page.FooterBar != nil {
		e.report(*page.FooterBar)
	}
}

func cacheKey(kind string, cfg any) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode %s cache key: %w", kind, err)
	}
	return kind + ":" + string(data), nil
}

func groupHasHandles(cfg components.GroupConfig) bool {
	for _, item := range cfg.Items {
		if item.OnActivate != nil || item.Ref != nil {
			return true
		}
	}
	return false
}

func headerHasHandles(cfg components.HeaderConfig) bool {
	return (cfg.Logo != nil && cfg.Logo.Ref != nil) || (cfg.Nav != nil && groupHasHandles(*cfg.Nav))
}

func footerHasHandles(cfg components.FooterConfig) bool {
	return cfg.Nav != nil && groupHasHandles(*cfg.Nav)
}

func pageHasHandles(cfg components.PageConfig) bool {
	return (cfg.HeaderConfig != nil && headerHasHandles(*cfg.HeaderConfig)) ||
		(cfg.FooterConfig != nil && footerHasHandles(*cfg.FooterConfig))
}
