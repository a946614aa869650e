// Package theme turns a brand configuration into mode-tagged theme handles:
// a compiled component theme plus, for dark mode, the declaration-stage token
// overrides and the generated CSS overlay.
package theme

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/brandkit/internal/components"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/css"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

// Mode tags a handle with the visual mode it was compiled for.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Handle wraps a compiled component theme together with its mode tag and any
// generated overlay CSS. It is constructed atomically and never mutated; a
// mode change means constructing a new Handle.
type Handle struct {
	Compiled   *components.Theme
	Mode       Mode
	OverlayCSS string
}

// Builder derives theme handles from a single brand configuration.
type Builder struct {
	cfg *config.BrandConfig
	log *logger.Logger
}

// NewBuilder constructs a Builder for the given brand.
func NewBuilder(cfg *config.BrandConfig, log *logger.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// Build compiles a theme handle for the requested mode.
//
// When dark mode is requested without a configured dark palette, Build emits
// a single no-dark-palette warning and returns the light handle tagged
// ModeLight. The tag stays honest about provenance; callers branching on
// Mode get light-theme reads, which resolve to the same colors either way.
func (b *Builder) Build(mode Mode) (*Handle, error) {
	custom := b.customCSS()

	light, err := b.buildLight(custom)
	if err != nil {
		return nil, err
	}

	if mode != ModeDark {
		return light, nil
	}

	if !b.cfg.HasDark() {
		b.log.Warn(logger.WarnNoDarkPalette,
			"dark mode requested but the brand has no color-dark section")
		return light, nil
	}

	// Declaration-stage override: replace the ten core tokens and recompile
	// so every derived variable (rgb decompositions, subtle/emphasis shades,
	// interaction states) is re-derived from the dark values.
	tokens := tokensFromColorSet(*b.cfg.ColorDark)
	compiled, err := components.Compile(tokens, b.cfg.FontFamilies())
	if err != nil {
		return nil, err
	}

	overlay, err := css.DarkOverlay(*b.cfg.ColorDark)
	if err != nil {
		return nil, err
	}

	return &Handle{
		Compiled:   compiled,
		Mode:       ModeDark,
		OverlayCSS: overlay + custom,
	}, nil
}

func (b *Builder) buildLight(custom string) (*Handle, error) {
	tokens := tokensFromColorSet(b.cfg.Color)
	compiled, err := components.Compile(tokens, b.cfg.FontFamilies())
	if err != nil {
		return nil, err
	}
	return &Handle{
		Compiled:   compiled,
		Mode:       ModeLight,
		OverlayCSS: custom,
	}, nil
}

// customCSS loads the optional supplementary stylesheet named by the brand
// file. Absence is non-fatal: the theme stays usable and a warning records
// the degradation.
func (b *Builder) customCSS() string {
	if b.cfg.CustomCSS == "" {
		return ""
	}

	path := filepath.Join(b.cfg.Dir(), b.cfg.CustomCSS)
	data, err := os.ReadFile(path)
	if err != nil {
		b.log.Warn(logger.WarnMissingCustomCSS,
			"custom stylesheet "+path+" could not be read")
		return ""
	}
	return "\n" + string(data)
}

func tokensFromColorSet(cs config.ColorSet) components.TokenSet {
	return components.TokenSet{
		Primary:    cs.Primary,
		Secondary:  cs.Secondary,
		Success:    cs.Success,
		Danger:     cs.Danger,
		Warning:    cs.Warning,
		Info:       cs.Info,
		Light:      cs.Light,
		Dark:       cs.Dark,
		Background: cs.Background,
		Foreground: cs.Foreground,
	}
}
