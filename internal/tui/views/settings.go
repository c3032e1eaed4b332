package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/config"
	"github.com/f3rmion/bmi/internal/tui/components"
)

// Settings view styles
var (
	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Width(14)

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

var settingsTabs = []string{"General", "Categories"}

// SettingsModel is the settings view model.
type SettingsModel struct {
	config    *config.Config
	configDir string

	tab int

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{
		config:    cfg,
		configDir: configDir,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
			return m, nil
		case "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = len(settingsTabs) - 1
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(settingsPathStyle.Render("Config: " + m.configDir))
	b.WriteString("\n")

	var tabViews []string
	for i, t := range settingsTabs {
		style := settingsTabStyle
		if i == m.tab {
			style = settingsTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(settingsMutedStyle.Render(strings.Repeat("─", max(min(m.width-4, 50), 10))))
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		b.WriteString(m.renderGeneral())
	case 1:
		b.WriteString(m.renderCategories())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→: switch tabs"))

	return b.String()
}

func (m SettingsModel) renderGeneral() string {
	var b strings.Builder

	row := func(key, value string) {
		b.WriteString(settingsKeyStyle.Render(key))
		b.WriteString(settingsRowStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(settingsHeaderStyle.Render("Display"))
	b.WriteString("\n")
	row("Big digits", onOff(m.config.Display.BigDigits))
	row("Legend", onOff(m.config.Display.Legend))

	b.WriteString("\n")
	b.WriteString(settingsHeaderStyle.Render("History"))
	b.WriteString("\n")
	row("Enabled", onOff(m.config.History.Enabled))
	row("Journal", m.config.HistoryPath(m.configDir))
	row("Limit", fmt.Sprintf("%d", m.config.History.Limit))

	b.WriteString("\n")
	b.WriteString(settingsMutedStyle.Render("Edit config.yaml or run 'bmi init' to change these"))

	return b.String()
}

func (m SettingsModel) renderCategories() string {
	var b strings.Builder

	b.WriteString(settingsHeaderStyle.Render(fmt.Sprintf("Categories (%d)", len(bmi.Categories()))))
	b.WriteString("\n\n")
	b.WriteString(components.Legend(""))
	b.WriteString("\n\n")
	b.WriteString(settingsMutedStyle.Render("BMI = weight (kg) / height (m)²"))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
