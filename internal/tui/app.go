package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/config"
	"github.com/f3rmion/bmi/internal/history"
	"github.com/f3rmion/bmi/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewCalculator ViewType = iota
	ViewHistory
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// RecordedMsg is sent after a calculation was written to the journal
type RecordedMsg struct {
	ID  int64
	Err error
}

// Options configures the app.
type Options struct {
	Calculator *bmi.Calculator // Shared with the host; a new one is created when nil
	Config     *config.Config
	ConfigDir  string
	Store      *history.Store // Optional journal
}

// AppModel is the main TUI model
type AppModel struct {
	store *history.Store

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	calculatorView views.CalculatorModel
	historyView    views.HistoryModel
	settingsView   views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates a new TUI application
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	calc := opts.Calculator
	if calc == nil {
		calc = bmi.NewCalculator()
	}

	menuItems := []MenuItem{
		{Label: "Calculator", View: ViewCalculator, Shortcut: "1"},
		{Label: "History", View: ViewHistory, Shortcut: "2"},
		{Label: "Settings", View: ViewSettings, Shortcut: "3"},
	}

	return AppModel{
		store:        opts.Store,
		sidebarWidth: 18,
		currentView:  ViewCalculator,
		menuItems:    menuItems,

		calculatorView: views.NewCalculatorModel(calc, cfg.Display),
		historyView:    views.NewHistoryModel(opts.Store, cfg.History.Limit),
		settingsView:   views.NewSettingsModel(cfg, opts.ConfigDir),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.historyView.Load())
}

// typing reports whether plain keys belong to a focused text field.
func (m AppModel) typing() bool {
	return !m.sidebarActive && m.currentView == ViewCalculator && m.calculatorView.CapturesKeys()
}

func (m AppModel) confirmingClear() bool {
	return !m.sidebarActive && m.currentView == ViewHistory && m.historyView.Confirming()
}

func (m *AppModel) switchView(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// A pending clear confirmation takes the next key
		if m.confirmingClear() && msg.String() != "ctrl+c" {
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc goes to the sidebar, or quits from there
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		if !m.typing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				m.switchView(ViewCalculator)
				return m, nil
			case "2":
				m.switchView(ViewHistory)
				return m, nil
			case "3":
				m.switchView(ViewSettings)
				return m, nil
			}
		}

		// Tab belongs to the form while the calculator has focus
		if msg.String() == "tab" && (m.sidebarActive || m.currentView != ViewCalculator) {
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchView(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.calculatorView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		m.switchView(msg.View)
		return m, nil

	case views.CalculatedMsg:
		return m, m.record(msg.Result)

	case RecordedMsg:
		if msg.Err != nil {
			log.Printf("recording calculation: %v", msg.Err)
			return m, nil
		}
		return m, m.historyView.Load()

	case views.HistoryLoadedMsg, views.HistoryClearedMsg:
		// Journal results reach the history view even when it is hidden
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd
	}

	// Delegate to the active view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCalculator:
		m.calculatorView, cmd = m.calculatorView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	return m, cmd
}

// record writes a result to the journal asynchronously
func (m AppModel) record(res bmi.Result) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := store.Record(ctx, history.NewEntry(res, time.Now()))
		return RecordedMsg{ID: id, Err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewCalculator:
		content = m.calculatorView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render("  BMI  "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Current view, not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4 // borders and help
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  esc Menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	keyStyle := HelpKeyStyle
	descStyle := HelpDescStyle

	helpText := HelpTitleStyle.Render("BMI Calculator") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-3") + descStyle.Render("Switch views") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Focus sidebar / quit") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("q") + descStyle.Render("Quit") + "\n"

	helpText += HelpSectionStyle.Render("Calculator") + "\n"
	helpText += keyStyle.Render("tab ↑/↓") + descStyle.Render("Move between fields") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Calculate") + "\n"
	helpText += keyStyle.Render("ctrl+y") + descStyle.Render("Copy result") + "\n"

	helpText += HelpSectionStyle.Render("History") + "\n"
	helpText += keyStyle.Render("j/k ↑/↓") + descStyle.Render("Scroll") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Reload") + "\n"
	helpText += keyStyle.Render("c") + descStyle.Render("Clear journal") + "\n"

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
