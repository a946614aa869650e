// Package color implements the pure color math the theme engine is built on:
// hex literal parsing, the exact RGB-channel text format the generated CSS
// interpolates into rgba() expressions, channel-wise mixing for interaction
// states, and the anchor-ramp interpolation behind the visualization palettes.
package color

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// ParseHex decomposes a #RRGGBB or #RGB literal into three 0-255 channels.
func ParseHex(s string) (r, g, b int, err error) {
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, brandkiterrors.NewInvalidColorError(s, "missing leading #")
	}

	digits := s[1:]
	switch len(digits) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}
		digits = string(expanded)
	case 6:
	default:
		return 0, 0, 0, brandkiterrors.NewInvalidColorError(s, "must have 3 or 6 hex digits")
	}

	channels := [3]int{}
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(digits[2*i])
		lo, ok2 := hexDigit(digits[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, brandkiterrors.NewInvalidColorError(s, "non-hex characters")
		}
		channels[i] = hi<<4 | lo
	}

	return channels[0], channels[1], channels[2], nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// RGBString formats three channels as "r, g, b". The consuming stylesheet
// splices this text into rgba()/color-mix() expressions, so the comma-space
// decimal layout is load-bearing, not cosmetic.
func RGBString(r, g, b int) string {
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// FormatHex renders three channels as a canonical lowercase #rrggbb literal.
func FormatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Mix interpolates two hex colors channel-wise, keeping pctA percent of a and
// (100-pctA) percent of b, and returns a canonical hex literal.
func Mix(hexA, hexB string, pctA int) (string, error) {
	if pctA < 0 || pctA > 100 {
		return "", brandkiterrors.NewInvalidColorError(
			fmt.Sprintf("%d%%", pctA), "mix percentage must be in [0, 100]")
	}

	ar, ag, ab, err := ParseHex(hexA)
	if err != nil {
		return "", err
	}
	br, bg, bb, err := ParseHex(hexB)
	if err != nil {
		return "", err
	}

	w := float64(pctA) / 100
	mixChannel := func(a, b int) int {
		return int(math.Round(float64(a)*w + float64(b)*(1-w)))
	}

	return FormatHex(mixChannel(ar, br), mixChannel(ag, bg), mixChannel(ab, bb)), nil
}

// Ramp interpolates n evenly spaced colors across the anchor sequence using
// piecewise linear RGB interpolation. Identical anchors and n always yield an
// identical sequence. A single-sample ramp returns the midpoint of the span.
func Ramp(anchors []string, n int) ([]string, error) {
	if n < 1 {
		return nil, brandkiterrors.NewInvalidPaletteSizeError(n)
	}
	if len(anchors) == 0 {
		return nil, brandkiterrors.NewInvalidColorError("", "ramp requires at least one anchor")
	}

	points := make([][3]int, len(anchors))
	for i, anchor := range anchors {
		r, g, b, err := ParseHex(anchor)
		if err != nil {
			return nil, err
		}
		points[i] = [3]int{r, g, b}
	}

	if len(points) == 1 {
		only := FormatHex(points[0][0], points[0][1], points[0][2])
		out := make([]string, n)
		for i := range out {
			out[i] = only
		}
		return out, nil
	}

	sample := func(t float64) string {
		pos := t * float64(len(points)-1)
		idx := int(math.Floor(pos))
		if idx >= len(points)-1 {
			idx = len(points) - 2
		}
		frac := pos - float64(idx)
		a, b := points[idx], points[idx+1]
		var ch [3]int
		for c := 0; c < 3; c++ {
			ch[c] = int(math.Round(float64(a[c]) + (float64(b[c])-float64(a[c]))*frac))
		}
		return FormatHex(ch[0], ch[1], ch[2])
	}

	if n == 1 {
		return []string{sample(0.5)}, nil
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = sample(float64(i) / float64(n-1))
	}
	return out, nil
}

// Luminance returns the perceived luminance of a hex color in [0, 1], used to
// pick readable label colors over swatches.
func Luminance(hex string) (float64, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	_, _, l := c.HSLuv()
	return l, nil
}
