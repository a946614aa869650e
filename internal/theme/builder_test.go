package theme

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

func lightSet() config.ColorSet {
	return config.ColorSet{
		Primary:    "#FF5733",
		Secondary:  "#337AFF",
		Success:    "#28A745",
		Danger:     "#DC3545",
		Warning:    "#FFC107",
		Info:       "#17A2B8",
		Light:      "#F8F9FA",
		Dark:       "#343A40",
		Background: "#FFFFFF",
		Foreground: "#212529",
	}
}

func darkSet() config.ColorSet {
	return config.ColorSet{
		Primary:    "#FF8C66",
		Secondary:  "#66A3FF",
		Success:    "#48C774",
		Danger:     "#F14668",
		Warning:    "#FFDD57",
		Info:       "#3298DC",
		Light:      "#2B2B2B",
		Dark:       "#E0E0E0",
		Background: "#1A1A1A",
		Foreground: "#F0F0F0",
	}
}

func testLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log, buf
}

func warningCount(t *testing.T, buf *bytes.Buffer, kind string) int {
	t.Helper()
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["warning"] == kind {
			count++
		}
	}
	return count
}

func TestBuildLight(t *testing.T) {
	t.Parallel()

	log, _ := testLogger(t)
	cfg := &config.BrandConfig{Color: lightSet()}

	handle, err := NewBuilder(cfg, log).Build(ModeLight)
	require.NoError(t, err)
	require.Equal(t, ModeLight, handle.Mode)
	require.Empty(t, handle.OverlayCSS)

	primary, ok := handle.Compiled.Variable("primary")
	require.True(t, ok)
	require.Equal(t, "#FF5733", primary)
}

func TestBuildDarkOverridesDeclarations(t *testing.T) {
	t.Parallel()

	log, _ := testLogger(t)
	dark := darkSet()
	cfg := &config.BrandConfig{Color: lightSet(), ColorDark: &dark}

	handle, err := NewBuilder(cfg, log).Build(ModeDark)
	require.NoError(t, err)
	require.Equal(t, ModeDark, handle.Mode)

	// The declaration override cascades through derived variables.
	rgb, ok := handle.Compiled.Variable("primary-rgb")
	require.True(t, ok)
	require.Equal(t, "255, 140, 102", rgb)

	subtle, ok := handle.Compiled.Variable("primary-bg-subtle")
	require.True(t, ok)
	require.NotEmpty(t, subtle)

	require.Contains(t, handle.OverlayCSS, "--primary: #FF8C66;")
	require.Contains(t, handle.OverlayCSS, ".btn-primary:hover")
}

func TestBuildDarkWithoutPaletteFallsBackWithOneWarning(t *testing.T) {
	t.Parallel()

	log, buf := testLogger(t)
	cfg := &config.BrandConfig{Color: lightSet()}
	builder := NewBuilder(cfg, log)

	darkHandle, err := builder.Build(ModeDark)
	require.NoError(t, err)
	require.Equal(t, ModeLight, darkHandle.Mode)
	require.Equal(t, 1, warningCount(t, buf, logger.WarnNoDarkPalette))

	lightHandle, err := builder.Build(ModeLight)
	require.NoError(t, err)

	accessor := NewAccessor(cfg)
	fromDark, err := accessor.Resolve(darkHandle)
	require.NoError(t, err)
	fromLight, err := accessor.Resolve(lightHandle)
	require.NoError(t, err)
	require.Equal(t, fromLight, fromDark)
}

func TestBuildAppendsCustomCSS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.css"),
		[]byte(".sidebar { border: none; }\n"), 0o644))

	brand := `color:
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
custom_css: custom.css
`
	path := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brand), 0o644))

	cfg, err := config.ParseBrand(path)
	require.NoError(t, err)

	log, buf := testLogger(t)
	handle, err := NewBuilder(cfg, log).Build(ModeDark)
	require.NoError(t, err)
	require.Contains(t, handle.OverlayCSS, ".sidebar { border: none; }")
	require.Equal(t, 0, warningCount(t, buf, logger.WarnMissingCustomCSS))
}

func TestBuildWarnsWhenCustomCSSAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	brand := `color:
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
custom_css: missing.css
`
	path := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brand), 0o644))

	cfg, err := config.ParseBrand(path)
	require.NoError(t, err)

	log, buf := testLogger(t)
	handle, err := NewBuilder(cfg, log).Build(ModeLight)
	require.NoError(t, err)
	require.Empty(t, handle.OverlayCSS)
	require.Equal(t, 1, warningCount(t, buf, logger.WarnMissingCustomCSS))
}
