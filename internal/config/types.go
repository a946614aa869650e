package config

// BrandConfig is the parsed representation of a brand file. It is immutable
// once loaded; the rest of the engine treats it as process-wide read-only
// configuration.
type BrandConfig struct {
	Meta       Meta              `yaml:"meta,omitempty"`
	Palette    map[string]string `yaml:"palette,omitempty"`
	Color      ColorSet          `yaml:"color" validate:"required"`
	ColorDark  *ColorSet         `yaml:"color-dark,omitempty"`
	Typography Typography        `yaml:"typography,omitempty"`
	CustomCSS  string            `yaml:"custom_css,omitempty"`

	dir string
}

// Meta carries optional descriptive fields from the brand file.
type Meta struct {
	Name    string `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Version string `yaml:"version,omitempty"`
}

// ColorSet is the fixed ten-token color mapping used for both the light and
// dark brand palettes. Values may be hex literals or keys into the top-level
// palette section; aliases are resolved at load time so every field holds a
// hex literal by the time validation runs.
type ColorSet struct {
	Primary    string `yaml:"primary" validate:"required,brandcolor"`
	Secondary  string `yaml:"secondary" validate:"required,brandcolor"`
	Success    string `yaml:"success" validate:"required,brandcolor"`
	Danger     string `yaml:"danger" validate:"required,brandcolor"`
	Warning    string `yaml:"warning" validate:"required,brandcolor"`
	Info       string `yaml:"info" validate:"required,brandcolor"`
	Light      string `yaml:"light" validate:"required,brandcolor"`
	Dark       string `yaml:"dark" validate:"required,brandcolor"`
	Background string `yaml:"background" validate:"required,brandcolor"`
	Foreground string `yaml:"foreground" validate:"required,brandcolor"`
}

// Typography describes the brand's font stack.
type Typography struct {
	Fonts []Font `yaml:"fonts,omitempty" validate:"omitempty,dive"`
}

// Font is a single entry in the ordered font list. The first entry is the
// primary font, the second (if present) the secondary font.
type Font struct {
	Family string `yaml:"family" validate:"required,min=1,max=200"`
	Source string `yaml:"source,omitempty"`
}

// Dir returns the directory the brand file was loaded from, used to locate
// optional supplementary resources such as a custom stylesheet.
func (c *BrandConfig) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// HasDark reports whether the brand configures a dark palette.
func (c *BrandConfig) HasDark() bool {
	return c != nil && c.ColorDark != nil
}

// FontFamilies returns the ordered font-family list for the host application
// to register at startup. Font registration is an explicit host-side step;
// loading a brand file has no process-wide side effects.
func (c *BrandConfig) FontFamilies() []string {
	if c == nil {
		return nil
	}
	families := make([]string, 0, len(c.Typography.Fonts))
	for _, font := range c.Typography.Fonts {
		families = append(families, font.Family)
	}
	return families
}

// PrimaryFont returns the first configured font family, or "" when the font
// list is empty.
func (c *BrandConfig) PrimaryFont() string {
	if c == nil || len(c.Typography.Fonts) == 0 {
		return ""
	}
	return c.Typography.Fonts[0].Family
}

// SecondaryFont returns the second configured font family, or "" when absent.
func (c *BrandConfig) SecondaryFont() string {
	if c == nil || len(c.Typography.Fonts) < 2 {
		return ""
	}
	return c.Typography.Fonts[1].Family
}
