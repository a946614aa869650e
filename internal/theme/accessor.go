package theme

import (
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// ResolvedColors is the eleven-field named color mapping for the active mode:
// the ten brand tokens plus the input border color, which aliases foreground.
type ResolvedColors struct {
	Primary          string
	Secondary        string
	Success          string
	Danger           string
	Warning          string
	Info             string
	Light            string
	Dark             string
	Background       string
	Foreground       string
	InputBorderColor string
}

// Accessor resolves named colors for a theme handle's active mode.
type Accessor struct {
	cfg *config.BrandConfig
}

// NewAccessor constructs an Accessor bound to the loaded brand configuration.
func NewAccessor(cfg *config.BrandConfig) *Accessor {
	return &Accessor{cfg: cfg}
}

// Resolve returns the named colors for the handle's mode.
//
// Dark handles read straight from the brand's dark set: the compiled theme's
// variable store is not a reliable read path for declaration-stage overrides,
// so it is bypassed entirely. Light handles read the compiled store.
func (a *Accessor) Resolve(h *Handle) (ResolvedColors, error) {
	if a == nil || a.cfg == nil {
		return ResolvedColors{}, brandkiterrors.NewMissingBrandFileError("", nil)
	}

	if h != nil && h.Mode == ModeDark && a.cfg.HasDark() {
		dark := a.cfg.ColorDark
		return ResolvedColors{
			Primary:          dark.Primary,
			Secondary:        dark.Secondary,
			Success:          dark.Success,
			Danger:           dark.Danger,
			Warning:          dark.Warning,
			Info:             dark.Info,
			Light:            dark.Light,
			Dark:             dark.Dark,
			Background:       dark.Background,
			Foreground:       dark.Foreground,
			InputBorderColor: dark.Foreground,
		}, nil
	}

	variable := func(name string) string {
		if h == nil || h.Compiled == nil {
			return ""
		}
		value, _ := h.Compiled.Variable(name)
		return value
	}

	return ResolvedColors{
		Primary:          variable("primary"),
		Secondary:        variable("secondary"),
		Success:          variable("success"),
		Danger:           variable("danger"),
		Warning:          variable("warning"),
		Info:             variable("info"),
		Light:            variable("light"),
		Dark:             variable("dark"),
		Background:       variable("body-bg"),
		Foreground:       variable("body-color"),
		InputBorderColor: variable("input_border_color"),
	}, nil
}

// Fonts returns the brand's ordered font-family list for host registration.
func (a *Accessor) Fonts() []string {
	if a == nil {
		return nil
	}
	return a.cfg.FontFamilies()
}
