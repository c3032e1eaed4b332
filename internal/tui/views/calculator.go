// Package views provides the individual views for the TUI.
package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/clipboard"
	"github.com/f3rmion/bmi/internal/config"
	"github.com/f3rmion/bmi/internal/tui/bigchar"
	"github.com/f3rmion/bmi/internal/tui/components"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c77dff")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5a189a")).
			Padding(0, 1)

	fieldFocusedStyle = fieldStyle.
				BorderForeground(lipgloss.Color("#c77dff"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#5a189a")).
			Padding(0, 3).
			MarginTop(1)

	buttonFocusedStyle = buttonStyle.
				Bold(true).
				Background(lipgloss.Color("#9d4edd"))

	bmiValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c77dff")).
			Padding(0, 2)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true).
			MarginTop(1)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// Focus targets, in tab order.
const (
	focusHeight = iota
	focusWeight
	focusButton
	focusCount
)

// bigDigitRows is the height of the block-art BMI value.
const bigDigitRows = 4

// CalculatedMsg is sent after a successful calculation.
type CalculatedMsg struct {
	Result bmi.Result
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// CalculatorModel is the BMI form view model.
type CalculatorModel struct {
	calc    *bmi.Calculator
	display config.DisplayConfig

	heightInput textinput.Model
	weightInput textinput.Model
	focus       int

	copied  bool
	copyErr error

	width  int
	height int
}

// NewCalculatorModel creates a new calculator view bound to calc.
func NewCalculatorModel(calc *bmi.Calculator, display config.DisplayConfig) CalculatorModel {
	m := CalculatorModel{
		calc:        calc,
		display:     display,
		heightInput: newNumberInput("Enter your height"),
		weightInput: newNumberInput("Enter your weight"),
	}
	m.setFocus(focusHeight)
	return m
}

func newNumberInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 24
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	return ti
}

// SetSize updates the view dimensions.
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CapturesKeys reports whether a text field has focus and wants plain keys.
func (m CalculatorModel) CapturesKeys() bool {
	return m.focus != focusButton
}

func (m *CalculatorModel) setFocus(f int) {
	m.focus = f
	m.heightInput.Blur()
	m.weightInput.Blur()
	switch f {
	case focusHeight:
		m.heightInput.Focus()
	case focusWeight:
		m.weightInput.Focus()
	}
}

// Update handles messages.
func (m CalculatorModel) Update(msg tea.Msg) (CalculatorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case "enter":
			return m, m.calculate()
		case " ":
			if m.focus == focusButton {
				return m, m.calculate()
			}
		case "ctrl+y":
			if res := m.calc.Snapshot().Result; res != nil {
				m.copyErr = clipboard.WriteResult(*res)
				if m.copyErr == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusHeight:
		before := m.heightInput.Value()
		m.heightInput, cmd = m.heightInput.Update(msg)
		if v := m.heightInput.Value(); v != before {
			m.calc.SetHeight(v)
		}
	case focusWeight:
		before := m.weightInput.Value()
		m.weightInput, cmd = m.weightInput.Update(msg)
		if v := m.weightInput.Value(); v != before {
			m.calc.SetWeight(v)
		}
	}

	return m, cmd
}

func (m *CalculatorModel) calculate() tea.Cmd {
	m.copied = false
	m.copyErr = nil

	res, err := m.calc.Calculate()
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return CalculatedMsg{Result: res}
	}
}

// View renders the calculator view.
func (m CalculatorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BMI Calculator"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Enter your height and weight to calculate your BMI."))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Height (cm)", m.heightInput, m.focus == focusHeight))
	b.WriteString("\n")
	b.WriteString(m.renderField("Weight (kg)", m.weightInput, m.focus == focusWeight))
	b.WriteString("\n")

	button := buttonStyle
	if m.focus == focusButton {
		button = buttonFocusedStyle
	}
	b.WriteString(button.Render("Calculate"))
	b.WriteString("\n")

	snap := m.calc.Snapshot()
	switch {
	case snap.Error != "":
		b.WriteString(errorStyle.Render(snap.Error))
		b.WriteString("\n")
	case snap.Result != nil:
		b.WriteString(m.renderResult(*snap.Result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpParts := []string{"tab/↑↓: move", "enter: calculate"}
	if snap.Result != nil && clipboard.Available() {
		helpParts = append(helpParts, "ctrl+y: copy")
	}
	b.WriteString(helpStyle.Render(strings.Join(helpParts, " • ")))
	if m.copied {
		b.WriteString("  ")
		b.WriteString(copiedStyle.Render("Copied!"))
	} else if m.copyErr != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.UnsetMarginTop().Render(m.copyErr.Error()))
	}

	return b.String()
}

func (m CalculatorModel) renderField(label string, input textinput.Model, focused bool) string {
	style := fieldStyle
	if focused {
		style = fieldFocusedStyle
	}
	return fieldLabelStyle.Render(label) + "\n" + style.Render(input.View())
}

func (m CalculatorModel) renderResult(res bmi.Result) string {
	var value string
	if m.display.BigDigits {
		value = bigchar.GetCached(res.BMI, bigDigitRows)
	}
	if value == "" {
		value = res.BMI
	}

	lines := []string{
		bmiValueStyle.Render(value),
		components.CategoryStyle(res.Category).Render(string(res.Category)),
	}
	if m.display.Legend {
		lines = append(lines, "", components.Legend(res.Category))
	}

	return resultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
