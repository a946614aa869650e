package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseBrand loads a brand file from disk, resolves palette aliases,
// validates the result, and returns the immutable configuration model.
func ParseBrand(path string) (*BrandConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, brandkiterrors.NewMissingBrandFileError(path, err)
		}
		return nil, brandkiterrors.NewParseError(path, 0, err)
	}

	var cfg BrandConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, brandkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := resolveAliases(&cfg); err != nil {
		return nil, err
	}

	if err := ValidateBrand(&cfg); err != nil {
		return nil, err
	}

	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// resolveAliases replaces palette-key references in both color sets with the
// hex literal they name, so downstream code only ever sees hex values.
func resolveAliases(cfg *BrandConfig) error {
	if err := resolveColorSet(&cfg.Color, "color", cfg.Palette); err != nil {
		return err
	}
	if cfg.ColorDark != nil {
		if err := resolveColorSet(cfg.ColorDark, "color-dark", cfg.Palette); err != nil {
			return err
		}
	}
	return nil
}

func resolveColorSet(cs *ColorSet, section string, palette map[string]string) error {
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"primary", &cs.Primary},
		{"secondary", &cs.Secondary},
		{"success", &cs.Success},
		{"danger", &cs.Danger},
		{"warning", &cs.Warning},
		{"info", &cs.Info},
		{"light", &cs.Light},
		{"dark", &cs.Dark},
		{"background", &cs.Background},
		{"foreground", &cs.Foreground},
	} {
		value := *field.value
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		resolved, ok := palette[value]
		if !ok {
			return brandkiterrors.NewValidationError(
				fmt.Sprintf("%s.%s", section, field.name),
				fmt.Sprintf("references unknown palette entry %q", value), nil)
		}
		*field.value = resolved
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
