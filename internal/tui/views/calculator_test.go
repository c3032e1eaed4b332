package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/clipboard"
	"github.com/f3rmion/bmi/internal/config"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainDisplay() config.DisplayConfig {
	return config.DisplayConfig{BigDigits: false, Legend: false}
}

func fillForm(t *testing.T, m CalculatorModel, height, weight string) CalculatorModel {
	t.Helper()
	if height != "" {
		m, _ = m.Update(runes(height))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if weight != "" {
		m, _ = m.Update(runes(weight))
	}
	return m
}

func TestCalculatorTypingUpdatesState(t *testing.T) {
	calc := bmi.NewCalculator()
	m := NewCalculatorModel(calc, plainDisplay())
	m = fillForm(t, m, "180", "75")

	s := calc.Snapshot()
	if s.Height != "180" || s.Weight != "75" {
		t.Fatalf("state = %q/%q, want 180/75", s.Height, s.Weight)
	}
	if s.Result != nil {
		t.Error("typing must not calculate")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := calc.Snapshot().Weight; got != "7" {
		t.Errorf("weight after backspace = %q, want 7", got)
	}
}

func TestCalculatorEnterCalculates(t *testing.T) {
	calc := bmi.NewCalculator()
	m := NewCalculatorModel(calc, plainDisplay())
	m = fillForm(t, m, "180", "75")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected CalculatedMsg command")
	}
	msg, ok := cmd().(CalculatedMsg)
	if !ok {
		t.Fatalf("expected CalculatedMsg, got %T", cmd())
	}
	if msg.Result.BMI != "23.1" || msg.Result.Category != bmi.Normal {
		t.Errorf("result = %+v", msg.Result)
	}

	view := m.View()
	if !strings.Contains(view, "23.1") || !strings.Contains(view, "Normal") {
		t.Errorf("view missing result:\n%s", view)
	}
}

func TestCalculatorValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		height string
		weight string
		want   string
	}{
		{"empty", "", "", "Please enter both height and weight."},
		{"missing weight", "180", "", "Please enter both height and weight."},
		{"bad height", "abc", "75", "Height must be a positive number."},
		{"zero height", "0", "75", "Height must be a positive number."},
		{"negative weight", "180", "-5", "Weight must be a positive number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCalculatorModel(bmi.NewCalculator(), plainDisplay())
			m = fillForm(t, m, tt.height, tt.weight)

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd != nil {
				t.Error("failed calculation must not emit CalculatedMsg")
			}
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, m.View())
			}
		})
	}
}

func TestCalculatorErrorReplacesResult(t *testing.T) {
	calc := bmi.NewCalculator()
	m := NewCalculatorModel(calc, plainDisplay())
	m = fillForm(t, m, "170", "90")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Obese") {
		t.Fatalf("expected result in view:\n%s", m.View())
	}

	// Clear the weight field and recalculate.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	if strings.Contains(view, "Obese") {
		t.Errorf("stale result still rendered:\n%s", view)
	}
	if !strings.Contains(view, "Please enter both height and weight.") {
		t.Errorf("missing error:\n%s", view)
	}
}

func TestCalculatorButtonFocus(t *testing.T) {
	calc := bmi.NewCalculator()
	m := NewCalculatorModel(calc, plainDisplay())
	if !m.CapturesKeys() {
		t.Fatal("height field should have focus initially")
	}

	m = fillForm(t, m, "160", "45")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.CapturesKeys() {
		t.Fatal("button should have focus after two tabs")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("space on button should calculate")
	}
	if res := calc.Snapshot().Result; res == nil || res.BMI != "17.6" {
		t.Errorf("result = %v, want 17.6", res)
	}

	// Tab wraps back to the height field.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.CapturesKeys() {
		t.Error("focus should wrap to height field")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.CapturesKeys() {
		t.Error("shift+tab from height should focus the button")
	}
}

func TestCalculatorCopyResult(t *testing.T) {
	orig := clipboard.Writer
	t.Cleanup(func() { clipboard.Writer = orig })
	var copied string
	clipboard.Writer = func(s string) error {
		copied = s
		return nil
	}

	m := NewCalculatorModel(bmi.NewCalculator(), plainDisplay())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd != nil || copied != "" {
		t.Fatal("nothing should be copied without a result")
	}

	m = fillForm(t, m, "180", "75")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Error("expected clear-copied tick")
	}
	if copied != "BMI 23.1 (Normal)" {
		t.Errorf("copied %q", copied)
	}
	if !strings.Contains(m.View(), "Copied!") {
		t.Error("view should confirm copy")
	}

	m, _ = m.Update(clearCopiedMsg{})
	if strings.Contains(m.View(), "Copied!") {
		t.Error("copy confirmation should clear")
	}
}

func TestCalculatorLegendAndBigDigits(t *testing.T) {
	calc := bmi.NewCalculator()
	m := NewCalculatorModel(calc, config.DisplayConfig{BigDigits: true, Legend: true})
	m = fillForm(t, m, "180", "75")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	for _, c := range bmi.Categories() {
		if !strings.Contains(view, string(c)) {
			t.Errorf("legend missing %s", c)
		}
	}
	if !strings.Contains(view, "█") {
		t.Error("expected block-art digits")
	}
}

func TestCalculatorCopyHintNeedsClipboard(t *testing.T) {
	orig := clipboard.Available
	t.Cleanup(func() { clipboard.Available = orig })

	m := NewCalculatorModel(bmi.NewCalculator(), plainDisplay())
	m = fillForm(t, m, "180", "75")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	clipboard.Available = func() bool { return true }
	if !strings.Contains(m.View(), "ctrl+y: copy") {
		t.Errorf("copy hint missing with a clipboard:\n%s", m.View())
	}

	clipboard.Available = func() bool { return false }
	if strings.Contains(m.View(), "ctrl+y: copy") {
		t.Errorf("copy hint shown without a clipboard:\n%s", m.View())
	}
}
