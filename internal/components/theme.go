// Package components compiles brand token declarations into a component
// theme: lipgloss styles for the standard widget set plus a resolved variable
// store holding every derived value (RGB decompositions, subtle backgrounds,
// emphasis shades, interaction states). Overriding a declaration and
// recompiling re-derives the whole store, which is what makes
// declaration-stage dark-mode overrides cascade correctly.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
)

// TokenSet holds the ten core style-engine declarations.
type TokenSet struct {
	Primary    string
	Secondary  string
	Success    string
	Danger     string
	Warning    string
	Info       string
	Light      string
	Dark       string
	Background string
	Foreground string
}

// Role identifies a semantic component role.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleSuccess   Role = "success"
	RoleDanger    Role = "danger"
	RoleWarning   Role = "warning"
	RoleInfo      Role = "info"
)

// Roles lists the semantic roles in declaration order.
var Roles = []Role{RolePrimary, RoleSecondary, RoleSuccess, RoleDanger, RoleWarning, RoleInfo}

// Interaction-state mix ratios against black. The two primary brand actions
// get full hover/active derivation; the remaining roles render base only.
const (
	hoverBgPct      = 85
	hoverBorderPct  = 80
	activeBgPct     = 75
	activeBorderPct = 70
)

// ButtonStyles carries the three interaction states of a button role.
type ButtonStyles struct {
	Base   lipgloss.Style
	Hover  lipgloss.Style
	Active lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// ComponentStyles groups the compiled widget styles.
type ComponentStyles struct {
	Body    lipgloss.Style
	Buttons map[Role]ButtonStyles
	Alerts  map[Role]lipgloss.Style
	Input   InputStyles
}

// Theme is a compiled component theme. It is immutable after Compile; to
// change any declaration, compile a new Theme.
type Theme struct {
	Tokens    TokenSet
	Fonts     []string
	Variables map[string]string
	Styles    ComponentStyles
}

// Variable reads a value from the resolved variable store.
func (t *Theme) Variable(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	value, ok := t.Variables[name]
	return value, ok
}

// Compile derives a full component theme from the given declarations. Every
// derived variable is recomputed from scratch on each call.
func Compile(tokens TokenSet, fonts []string) (*Theme, error) {
	vars := make(map[string]string, 64)

	named := []struct {
		name  string
		value string
	}{
		{"primary", tokens.Primary},
		{"secondary", tokens.Secondary},
		{"success", tokens.Success},
		{"danger", tokens.Danger},
		{"warning", tokens.Warning},
		{"info", tokens.Info},
		{"light", tokens.Light},
		{"dark", tokens.Dark},
		{"body-bg", tokens.Background},
		{"body-color", tokens.Foreground},
	}

	for _, token := range named {
		r, g, b, err := color.ParseHex(token.value)
		if err != nil {
			return nil, err
		}
		vars[token.name] = token.value
		vars[token.name+"-rgb"] = color.RGBString(r, g, b)
	}

	for _, role := range Roles {
		base := vars[string(role)]

		subtle, err := color.Mix(tokens.Background, base, 85)
		if err != nil {
			return nil, err
		}
		vars[string(role)+"-bg-subtle"] = subtle

		emphasis, err := color.Mix(base, tokens.Foreground, 40)
		if err != nil {
			return nil, err
		}
		vars[string(role)+"-text-emphasis"] = emphasis
	}

	for _, role := range []Role{RolePrimary, RoleSecondary} {
		base := vars[string(role)]
		for _, state := range []struct {
			suffix string
			pct    int
		}{
			{"-hover-bg", hoverBgPct},
			{"-hover-border", hoverBorderPct},
			{"-active-bg", activeBgPct},
			{"-active-border", activeBorderPct},
		} {
			shade, err := color.Mix(base, "#000000", state.pct)
			if err != nil {
				return nil, err
			}
			vars[string(role)+state.suffix] = shade
		}
	}

	vars["input_border_color"] = tokens.Foreground

	theme := &Theme{
		Tokens:    tokens,
		Fonts:     append([]string(nil), fonts...),
		Variables: vars,
		Styles:    buildStyles(tokens, vars),
	}
	return theme, nil
}

func buildStyles(tokens TokenSet, vars map[string]string) ComponentStyles {
	body := lipgloss.NewStyle().
		Background(lipgloss.Color(tokens.Background)).
		Foreground(lipgloss.Color(tokens.Foreground))

	buttons := make(map[Role]ButtonStyles, len(Roles))
	for _, role := range Roles {
		base := lipgloss.NewStyle().
			Background(lipgloss.Color(vars[string(role)])).
			Foreground(lipgloss.Color(tokens.Background)).
			Padding(0, 1).
			Bold(true)

		styles := ButtonStyles{Base: base, Hover: base, Active: base}
		if hover, ok := vars[string(role)+"-hover-bg"]; ok {
			styles.Hover = base.Background(lipgloss.Color(hover))
		}
		if active, ok := vars[string(role)+"-active-bg"]; ok {
			styles.Active = base.Background(lipgloss.Color(active))
		}
		buttons[role] = styles
	}

	alerts := make(map[Role]lipgloss.Style, len(Roles))
	for _, role := range Roles {
		alerts[role] = lipgloss.NewStyle().
			Background(lipgloss.Color(vars[string(role)+"-bg-subtle"])).
			Foreground(lipgloss.Color(vars[string(role)+"-text-emphasis"])).
			Padding(0, 1)
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(vars["input_border_color"])).
			Padding(0, 1),
		Focus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(tokens.Primary)).
			Padding(0, 1),
	}

	return ComponentStyles{
		Body:    body,
		Buttons: buttons,
		Alerts:  alerts,
		Input:   input,
	}
}
