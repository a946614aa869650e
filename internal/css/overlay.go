// Package css renders the literal dark-mode stylesheet text layered after the
// compiled theme. The overlay reaches the two places the declaration cascade
// cannot: hand-written styles referencing custom properties directly, and
// selectors owned by externally loaded widget stylesheets.
package css

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
)

// Selector scoping every overlay rule. The host toggles the attribute on its
// root element to flip modes without recompiling the stylesheet.
const darkScope = `[data-theme="dark"]`

type namedToken struct {
	property string
	value    string
}

func orderedTokens(cs config.ColorSet) []namedToken {
	return []namedToken{
		{"primary", cs.Primary},
		{"secondary", cs.Secondary},
		{"success", cs.Success},
		{"danger", cs.Danger},
		{"warning", cs.Warning},
		{"info", cs.Info},
		{"light", cs.Light},
		{"dark", cs.Dark},
		{"body-bg", cs.Background},
		{"body-color", cs.Foreground},
	}
}

// DarkOverlay renders the dark-mode override stylesheet for the given color
// set. The output is a pure function of its input: identical sets produce
// byte-identical text.
func DarkOverlay(dark config.ColorSet) (string, error) {
	var b strings.Builder

	if err := writeCustomProperties(&b, dark); err != nil {
		return "", err
	}
	if err := writeButtonOverrides(&b, dark); err != nil {
		return "", err
	}
	if err := writeWidgetOverrides(&b, dark); err != nil {
		return "", err
	}

	return b.String(), nil
}

// writeCustomProperties emits the ten custom properties and their -rgb twins.
// The -rgb values are interpolated textually into rgba() expressions by the
// consuming framework, hence the exact "r, g, b" formatting.
func writeCustomProperties(b *strings.Builder, dark config.ColorSet) error {
	fmt.Fprintf(b, "%s {\n", darkScope)
	for _, token := range orderedTokens(dark) {
		r, g, rb, err := color.ParseHex(token.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "  --%s: %s;\n", token.property, token.value)
		fmt.Fprintf(b, "  --%s-rgb: %s;\n", token.property, color.RGBString(r, g, rb))
	}
	b.WriteString("}\n")
	return nil
}

func writeButtonOverrides(b *strings.Builder, dark config.ColorSet) error {
	roles := []namedToken{
		{"primary", dark.Primary},
		{"secondary", dark.Secondary},
		{"success", dark.Success},
		{"danger", dark.Danger},
		{"warning", dark.Warning},
		{"info", dark.Info},
	}

	for _, role := range roles {
		fmt.Fprintf(b, "%s .btn-%s {\n", darkScope, role.property)
		fmt.Fprintf(b, "  background-color: %s;\n", role.value)
		fmt.Fprintf(b, "  border-color: %s;\n", role.value)
		b.WriteString("}\n")

		// Hover/active derivation is limited to the two primary brand
		// actions; the remaining roles keep their base state only.
		if role.property != "primary" && role.property != "secondary" {
			continue
		}

		hoverBg, err := color.Mix(role.value, "#000000", 85)
		if err != nil {
			return err
		}
		hoverBorder, err := color.Mix(role.value, "#000000", 80)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s .btn-%s:hover {\n", darkScope, role.property)
		fmt.Fprintf(b, "  background-color: %s;\n", hoverBg)
		fmt.Fprintf(b, "  border-color: %s;\n", hoverBorder)
		b.WriteString("}\n")

		activeBg, err := color.Mix(role.value, "#000000", 75)
		if err != nil {
			return err
		}
		activeBorder, err := color.Mix(role.value, "#000000", 70)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s .btn-%s:active,\n%s .btn-%s.active {\n",
			darkScope, role.property, darkScope, role.property)
		fmt.Fprintf(b, "  background-color: %s;\n", activeBg)
		fmt.Fprintf(b, "  border-color: %s;\n", activeBorder)
		b.WriteString("}\n")
	}
	return nil
}

// writeWidgetOverrides re-targets hard-coded selectors from externally loaded
// widget stylesheets (date picker, check/radio controls) that the style
// engine never sees.
func writeWidgetOverrides(b *strings.Builder, dark config.ColorSet) error {
	today, err := color.Mix(dark.Primary, dark.Background, 30)
	if err != nil {
		return err
	}
	r, g, rb, err := color.ParseHex(dark.Primary)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "%s .datepicker table tr td.active,\n", darkScope)
	fmt.Fprintf(b, "%s .datepicker table tr td.active:hover {\n", darkScope)
	fmt.Fprintf(b, "  background-color: %s;\n", dark.Primary)
	fmt.Fprintf(b, "  border-color: %s;\n", dark.Primary)
	fmt.Fprintf(b, "  color: %s;\n", dark.Background)
	b.WriteString("}\n")

	fmt.Fprintf(b, "%s .datepicker table tr td.today {\n", darkScope)
	fmt.Fprintf(b, "  background-color: %s;\n", today)
	fmt.Fprintf(b, "  color: %s;\n", dark.Foreground)
	b.WriteString("}\n")

	fmt.Fprintf(b, "%s .form-check-input:checked {\n", darkScope)
	fmt.Fprintf(b, "  background-color: %s;\n", dark.Primary)
	fmt.Fprintf(b, "  border-color: %s;\n", dark.Primary)
	b.WriteString("}\n")

	fmt.Fprintf(b, "%s .form-check-input:focus {\n", darkScope)
	fmt.Fprintf(b, "  border-color: %s;\n", dark.Primary)
	fmt.Fprintf(b, "  box-shadow: 0 0 0 0.25rem rgba(%s, 0.25);\n", color.RGBString(r, g, rb))
	b.WriteString("}\n")

	return nil
}
