// Package preview renders an interactive swatch board for a loaded brand:
// the resolved token colors for the active mode plus one of the derived
// visualization palettes. The mode toggle key feeds the dark-mode controller
// the same signal a host toggle widget would.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/darkmode"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
)

const rampSize = 9

type paletteChoice string

const (
	choiceDiscrete  paletteChoice = "discrete"
	choiceWarm      paletteChoice = "warm"
	choiceCool      paletteChoice = "cool"
	choiceGreen     paletteChoice = "green"
	choiceDiverging paletteChoice = "diverging"
)

type keyMap struct {
	ToggleDark key.Binding
	Discrete   key.Binding
	Warm       key.Binding
	Cool       key.Binding
	Green      key.Binding
	Diverging  key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDark, k.Discrete, k.Warm, k.Cool, k.Green, k.Diverging, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleDark: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle dark")),
		Discrete:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "discrete")),
		Warm:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warm")),
		Cool:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cool")),
		Green:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "green")),
		Diverging:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "diverging")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the preview TUI model.
type Model struct {
	cfg      *config.BrandConfig
	ctrl     *darkmode.Controller
	accessor *theme.Accessor
	factory  *palette.Factory

	keys   keyMap
	help   help.Model
	choice paletteChoice
	width  int
	err    error
}

// NewModel constructs a preview for the given brand.
func NewModel(cfg *config.BrandConfig, ctrl *darkmode.Controller, factory *palette.Factory) Model {
	return Model{
		cfg:      cfg,
		ctrl:     ctrl,
		accessor: theme.NewAccessor(cfg),
		factory:  factory,
		keys:     defaultKeyMap(),
		help:     help.New(),
		choice:   choiceDiscrete,
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleDark):
			signal := darkmode.SignalDark
			if m.ctrl.Mode() == theme.ModeDark {
				signal = "light"
			}
			m.err = m.ctrl.Observe(signal)
			return m, nil
		case key.Matches(msg, m.keys.Discrete):
			m.choice = choiceDiscrete
			return m, nil
		case key.Matches(msg, m.keys.Warm):
			m.choice = choiceWarm
			return m, nil
		case key.Matches(msg, m.keys.Cool):
			m.choice = choiceCool
			return m, nil
		case key.Matches(msg, m.keys.Green):
			m.choice = choiceGreen
			return m, nil
		case key.Matches(msg, m.keys.Diverging):
			m.choice = choiceDiverging
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}

	resolved, err := m.accessor.Resolve(m.ctrl.Theme())
	if err != nil {
		return "error: " + err.Error() + "\n"
	}

	var b strings.Builder

	title := m.cfg.Meta.Name
	if title == "" {
		title = "brand"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(resolved.Primary))
	b.WriteString(titleStyle.Render(title + " · " + string(m.ctrl.Mode()) + " mode"))
	b.WriteString("\n\n")

	b.WriteString(renderSwatchRow([]swatch{
		{"primary", resolved.Primary},
		{"secondary", resolved.Secondary},
		{"success", resolved.Success},
		{"danger", resolved.Danger},
		{"warning", resolved.Warning},
		{"info", resolved.Info},
		{"light", resolved.Light},
		{"dark", resolved.Dark},
		{"background", resolved.Background},
		{"foreground", resolved.Foreground},
	}, m.width))
	b.WriteString("\n")

	colors, err := m.paletteColors(resolved)
	if err != nil {
		return "error: " + err.Error() + "\n"
	}
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(string(m.choice) + " palette"))
	b.WriteString("\n")
	swatches := make([]swatch, len(colors))
	for i, c := range colors {
		swatches[i] = swatch{label: c, value: c}
	}
	b.WriteString(renderSwatchRow(swatches, m.width))
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) paletteColors(resolved theme.ResolvedColors) ([]string, error) {
	switch m.choice {
	case choiceWarm, choiceCool, choiceGreen:
		return m.factory.Sequential(resolved, palette.Kind(m.choice), rampSize, false)
	case choiceDiverging:
		return m.factory.Diverging(resolved, rampSize, false)
	default:
		return m.factory.Discrete(resolved), nil
	}
}

type swatch struct {
	label string
	value string
}

func renderSwatchRow(swatches []swatch, width int) string {
	rendered := make([]string, 0, len(swatches))
	for _, s := range swatches {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(s.value)).
			Foreground(lipgloss.Color(labelColor(s.value))).
			Padding(0, 1)
		rendered = append(rendered, style.Render(s.label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

// labelColor picks black or white text depending on swatch luminance.
func labelColor(hex string) string {
	l, err := color.Luminance(hex)
	if err != nil || l < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}
