package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

const validBrandYAML = `meta:
  name: "Acme"
color:
  primary: "#FF5733"
  secondary: "#337AFF"
  success: "#28A745"
  danger: "#DC3545"
  warning: "#FFC107"
  info: "#17A2B8"
  light: "#F8F9FA"
  dark: "#343A40"
  background: "#FFFFFF"
  foreground: "#212529"
color-dark:
  primary: "#FF8C66"
  secondary: "#66A3FF"
  success: "#48C774"
  danger: "#F14668"
  warning: "#FFDD57"
  info: "#3298DC"
  light: "#2B2B2B"
  dark: "#E0E0E0"
  background: "#1A1A1A"
  foreground: "#F0F0F0"
typography:
  fonts:
    - family: "Inter"
      source: "google"
    - family: "Fira Code"
`

func writeBrandFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseBrandValid(t *testing.T) {
	t.Parallel()

	cfg, err := ParseBrand(writeBrandFile(t, validBrandYAML))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "Acme", cfg.Meta.Name)
	require.Equal(t, "#FF5733", cfg.Color.Primary)
	require.True(t, cfg.HasDark())
	require.Equal(t, "#1A1A1A", cfg.ColorDark.Background)
	require.Equal(t, []string{"Inter", "Fira Code"}, cfg.FontFamilies())
	require.Equal(t, "Inter", cfg.PrimaryFont())
	require.Equal(t, "Fira Code", cfg.SecondaryFont())
	require.NotEmpty(t, cfg.Dir())
}

func TestParseBrandMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseBrand(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var missingErr *brandkiterrors.MissingBrandFileError
	require.ErrorAs(t, err, &missingErr)
}

func TestParseBrandInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseBrand(writeBrandFile(t, "color: [not, a, mapping]\n"))
	require.Error(t, err)

	var parseErr *brandkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseBrandInvalidColorLiteral(t *testing.T) {
	t.Parallel()

	broken := `color:
  primary: "#ZZZZZZ"
  secondary: "#337AFF"
  success: "#28A745"
  danger: "#DC3545"
  warning: "#FFC107"
  info: "#17A2B8"
  light: "#F8F9FA"
  dark: "#343A40"
  background: "#FFFFFF"
  foreground: "#212529"
`
	_, err := ParseBrand(writeBrandFile(t, broken))
	require.Error(t, err)

	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "primary")
}

func TestParseBrandMissingRequiredField(t *testing.T) {
	t.Parallel()

	missing := `color:
  primary: "#FF5733"
`
	_, err := ParseBrand(writeBrandFile(t, missing))
	require.Error(t, err)

	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseBrandResolvesPaletteAliases(t *testing.T) {
	t.Parallel()

	aliased := `palette:
  burnt-orange: "#FF5733"
  sky: "#337AFF"
color:
  primary: burnt-orange
  secondary: sky
  success: "#28A745"
  danger: "#DC3545"
  warning: "#FFC107"
  info: "#17A2B8"
  light: "#F8F9FA"
  dark: "#343A40"
  background: "#FFFFFF"
  foreground: "#212529"
`
	cfg, err := ParseBrand(writeBrandFile(t, aliased))
	require.NoError(t, err)
	require.Equal(t, "#FF5733", cfg.Color.Primary)
	require.Equal(t, "#337AFF", cfg.Color.Secondary)
}

func TestParseBrandUnknownPaletteAlias(t *testing.T) {
	t.Parallel()

	aliased := `color:
  primary: missing-alias
  secondary: "#337AFF"
  success: "#28A745"
  danger: "#DC3545"
  warning: "#FFC107"
  info: "#17A2B8"
  light: "#F8F9FA"
  dark: "#343A40"
  background: "#FFFFFF"
  foreground: "#212529"
`
	_, err := ParseBrand(writeBrandFile(t, aliased))
	require.Error(t, err)

	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "color.primary", validationErr.Field)
}

func TestParseBrandDarkSectionOptional(t *testing.T) {
	t.Parallel()

	lightOnly := `color:
  primary: "#FF5733"
  secondary: "#337AFF"
  success: "#28A745"
  danger: "#DC3545"
  warning: "#FFC107"
  info: "#17A2B8"
  light: "#F8F9FA"
  dark: "#343A40"
  background: "#FFFFFF"
  foreground: "#212529"
`
	cfg, err := ParseBrand(writeBrandFile(t, lightOnly))
	require.NoError(t, err)
	require.False(t, cfg.HasDark())
	require.Nil(t, cfg.ColorDark)
	require.Empty(t, cfg.FontFamilies())
}
