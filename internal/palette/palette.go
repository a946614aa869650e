// Package palette derives data-visualization color scales from resolved brand
// colors: anchored sequential ramps, a fixed cold-to-hot diverging ramp, and
// a discrete categorical palette in brand-priority order.
package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Kind selects the anchor set for a sequential ramp.
type Kind string

const (
	KindWarm  Kind = "warm"
	KindCool  Kind = "cool"
	KindGreen Kind = "green"
)

// DiscreteSize is the full length of the discrete palette.
const DiscreteSize = 15

// Supplementary categorical literals slotted between the brand semantic
// colors and the closing brand dark color.
var supplementary = []string{
	"#6F42C1",
	"#FD7E14",
	"#20C997",
	"#E83E8C",
	"#8C564B",
	"#7F7F7F",
	"#BCBD22",
	"#9467BD",
	"#17BECF",
}

// Factory builds palettes from resolved brand colors. Palettes are recomputed
// on demand and have no identity beyond their contents.
type Factory struct {
	log *logger.Logger
}

// NewFactory constructs a Factory; the logger carries truncation warnings.
func NewFactory(log *logger.Logger) *Factory {
	return &Factory{log: log}
}

// Sequential builds an n-color ramp anchored on the brand tokens for the
// given kind: warm runs light to primary to danger, cool runs light to info
// to secondary, green runs light to success to dark.
func (f *Factory) Sequential(cs theme.ResolvedColors, kind Kind, n int, reverse bool) ([]string, error) {
	var anchors []string
	switch kind {
	case KindWarm:
		anchors = []string{cs.Light, cs.Primary, cs.Danger}
	case KindCool:
		anchors = []string{cs.Light, cs.Info, cs.Secondary}
	case KindGreen:
		anchors = []string{cs.Light, cs.Success, cs.Dark}
	default:
		return nil, brandkiterrors.NewInvalidPaletteKindError(string(kind))
	}

	ramp, err := color.Ramp(anchors, n)
	if err != nil {
		return nil, err
	}
	if reverse {
		reverseInPlace(ramp)
	}
	return ramp, nil
}

// Diverging builds an n-color cold-to-neutral-to-hot ramp. Callers wanting a
// true neutral midpoint should request odd n; oddness is not enforced.
func (f *Factory) Diverging(cs theme.ResolvedColors, n int, reverse bool) ([]string, error) {
	anchors := []string{cs.Secondary, cs.Info, cs.Light, cs.Primary, cs.Danger}

	ramp, err := color.Ramp(anchors, n)
	if err != nil {
		return nil, err
	}
	if reverse {
		reverseInPlace(ramp)
	}
	return ramp, nil
}

// Discrete returns the full fixed 15-color categorical palette: the five
// brand semantic colors, nine supplementary literals, then the brand dark
// color. The order is brand-priority and not reversible.
func (f *Factory) Discrete(cs theme.ResolvedColors) []string {
	out := make([]string, 0, DiscreteSize)
	out = append(out, cs.Primary, cs.Secondary, cs.Success, cs.Warning, cs.Danger)
	out = append(out, supplementary...)
	out = append(out, cs.Dark)
	return out
}

// DiscreteN returns the first n entries of the discrete palette. Requests
// beyond the fixed size warn and clamp rather than fail; a non-positive n is
// caller misuse and fails loudly.
func (f *Factory) DiscreteN(cs theme.ResolvedColors, n int) ([]string, error) {
	if n < 1 {
		return nil, brandkiterrors.NewInvalidPaletteSizeError(n)
	}

	full := f.Discrete(cs)
	if n > DiscreteSize {
		f.log.Warn(logger.WarnPaletteTruncated,
			fmt.Sprintf("%d discrete colors requested, returning %d", n, DiscreteSize))
		return full, nil
	}
	return full[:n], nil
}

func reverseInPlace(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
