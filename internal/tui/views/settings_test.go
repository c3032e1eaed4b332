package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/bmi/internal/config"
)

func TestSettingsTabs(t *testing.T) {
	cfg := config.Default()
	cfg.History.Enabled = true
	m := NewSettingsModel(cfg, "/home/user/.config/bmi")

	view := m.View()
	for _, want := range []string{"Big digits", "Enabled", "/home/user/.config/bmi/history.db"} {
		if !strings.Contains(view, want) {
			t.Errorf("general tab missing %q:\n%s", want, view)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view = m.View()
	for _, want := range []string{"Underweight", "18.5 – 24.9", "30.0 and above"} {
		if !strings.Contains(view, want) {
			t.Errorf("categories tab missing %q:\n%s", want, view)
		}
	}

	// Wraps around in both directions.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "Big digits") {
		t.Error("right from last tab should wrap to General")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(m.View(), "30.0 and above") {
		t.Error("left from first tab should wrap to Categories")
	}
}

func TestSettingsNilConfig(t *testing.T) {
	m := NewSettingsModel(nil, "")
	if !strings.Contains(m.View(), "off") {
		t.Errorf("expected defaults rendered:\n%s", m.View())
	}
}
