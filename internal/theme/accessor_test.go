package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func TestResolveDarkReadsBrandDirectly(t *testing.T) {
	t.Parallel()

	log, _ := testLogger(t)
	dark := darkSet()
	cfg := &config.BrandConfig{Color: lightSet(), ColorDark: &dark}

	handle, err := NewBuilder(cfg, log).Build(ModeDark)
	require.NoError(t, err)

	resolved, err := NewAccessor(cfg).Resolve(handle)
	require.NoError(t, err)

	require.Equal(t, ResolvedColors{
		Primary:          "#FF8C66",
		Secondary:        "#66A3FF",
		Success:          "#48C774",
		Danger:           "#F14668",
		Warning:          "#FFDD57",
		Info:             "#3298DC",
		Light:            "#2B2B2B",
		Dark:             "#E0E0E0",
		Background:       "#1A1A1A",
		Foreground:       "#F0F0F0",
		InputBorderColor: "#F0F0F0",
	}, resolved)
}

func TestResolveLightReadsCompiledStore(t *testing.T) {
	t.Parallel()

	log, _ := testLogger(t)
	cfg := &config.BrandConfig{Color: lightSet()}

	handle, err := NewBuilder(cfg, log).Build(ModeLight)
	require.NoError(t, err)

	resolved, err := NewAccessor(cfg).Resolve(handle)
	require.NoError(t, err)

	require.Equal(t, "#FF5733", resolved.Primary)
	require.Equal(t, "#FFFFFF", resolved.Background)
	require.Equal(t, "#212529", resolved.Foreground)
	require.Equal(t, resolved.Foreground, resolved.InputBorderColor)
}

func TestResolveWithoutBrandFails(t *testing.T) {
	t.Parallel()

	_, err := NewAccessor(nil).Resolve(nil)
	require.Error(t, err)

	var missingErr *brandkiterrors.MissingBrandFileError
	require.ErrorAs(t, err, &missingErr)
}

func TestAccessorFonts(t *testing.T) {
	t.Parallel()

	cfg := &config.BrandConfig{
		Color: lightSet(),
		Typography: config.Typography{
			Fonts: []config.Font{{Family: "Inter"}, {Family: "Fira Code"}},
		},
	}

	require.Equal(t, []string{"Inter", "Fira Code"}, NewAccessor(cfg).Fonts())
}
