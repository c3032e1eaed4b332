package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/bmi/internal/history"
	"github.com/f3rmion/bmi/internal/tui/components"
	"github.com/mattn/go-runewidth"
)

var (
	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	historyRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	historyMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	historyWarnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffe66d")).
				Bold(true)
)

const historyTimeout = 5 * time.Second

// HistoryLoadedMsg carries journal entries loaded from the store.
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistoryClearedMsg reports the outcome of clearing the journal.
type HistoryClearedMsg struct {
	Removed int64
	Err     error
}

// HistoryModel is the calculation journal view model.
type HistoryModel struct {
	store *history.Store
	limit int

	entries      []history.Entry
	err          error
	loading      bool
	confirmClear bool
	scrollY      int

	width  int
	height int
}

// NewHistoryModel creates a history view. A nil store shows the view as disabled.
func NewHistoryModel(store *history.Store, limit int) HistoryModel {
	return HistoryModel{store: store, limit: limit}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Load returns a command that reads recent entries from the store.
func (m HistoryModel) Load() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, limit := m.store, m.limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		entries, err := store.Recent(ctx, limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

func (m HistoryModel) clear() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		n, err := store.Clear(ctx)
		return HistoryClearedMsg{Removed: n, Err: err}
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case HistoryLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			if m.scrollY >= len(m.entries) {
				m.scrollY = 0
			}
		}
		return m, nil

	case HistoryClearedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.loading = true
		return m, m.Load()

	case tea.KeyMsg:
		if m.store == nil {
			return m, nil
		}
		if m.confirmClear {
			m.confirmClear = false
			if msg.String() == "y" {
				return m, m.clear()
			}
			return m, nil
		}

		switch msg.String() {
		case "j", "down":
			if m.scrollY < len(m.entries)-1 {
				m.scrollY++
			}
			return m, nil
		case "k", "up":
			if m.scrollY > 0 {
				m.scrollY--
			}
			return m, nil
		case "g":
			m.scrollY = 0
			return m, nil
		case "r":
			m.loading = true
			return m, m.Load()
		case "c":
			if len(m.entries) > 0 {
				m.confirmClear = true
			}
			return m, nil
		}
	}
	return m, nil
}

// Confirming reports whether a clear is waiting for confirmation.
func (m HistoryModel) Confirming() bool {
	return m.confirmClear
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n\n")

	if m.store == nil {
		b.WriteString(historyMutedStyle.Render("History is disabled"))
		b.WriteString("\n")
		b.WriteString(historyMutedStyle.Render("Run with --history or set history.enabled in config.yaml"))
		return b.String()
	}

	b.WriteString(historyMutedStyle.Render("Journal: " + m.store.Path()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(historyMutedStyle.Render("Loading..."))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(historyMutedStyle.Render("No calculations recorded yet"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderEntries())
	}

	b.WriteString("\n")
	if m.confirmClear {
		b.WriteString(historyWarnStyle.Render(fmt.Sprintf("Delete all %d entries? y to confirm, any other key cancels", len(m.entries))))
	} else {
		b.WriteString(helpStyle.Render("j/k: scroll • r: reload • c: clear"))
	}

	return b.String()
}

func (m HistoryModel) renderEntries() string {
	var b strings.Builder

	header := fmt.Sprintf("%-16s %8s %8s %6s  %s", "When", "Height", "Weight", "BMI", "Category")
	b.WriteString(historyHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(historyMutedStyle.Render(strings.Repeat("─", 54)))
	b.WriteString("\n")

	visibleHeight := m.height - 10
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	start := m.scrollY
	end := min(start+visibleHeight, len(m.entries))

	for i := start; i < end; i++ {
		e := m.entries[i]
		row := fmt.Sprintf("%-16s %8.1f %8.1f %6s  ",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Height, e.Weight, e.BMI)
		if m.width > 0 {
			row = runewidth.Truncate(row, max(m.width-14, 0), "…")
		}
		b.WriteString(historyRowStyle.Render(row))
		b.WriteString(components.CategoryStyle(e.Category).Render(string(e.Category)))
		b.WriteString("\n")
	}

	if len(m.entries) > visibleHeight {
		b.WriteString("\n")
		b.WriteString(historyMutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(m.entries))))
		b.WriteString("\n")
	}

	return b.String()
}
