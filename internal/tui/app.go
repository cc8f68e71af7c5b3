// Package tui provides the interactive Bubble Tea dashboard for tally.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tallydev/tally/internal/config"
	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/store"
	"github.com/tallydev/tally/internal/tui/components"
	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// LedgerMsg is sent when the initial ledger load finishes.
type LedgerMsg struct {
	Ledger *model.Ledger
	Err    error
}

// OpMsg reports the result of a ledger mutation.
type OpMsg struct {
	Ledger *model.Ledger
	Err    error
	Status string // transient status bar message on success
}

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	dbPath string

	// Data
	led     *model.Ledger
	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Today tab state
	cursor        int
	adding        bool
	addInput      textinput.Model
	confirmDelete string // activity pending deletion, "" when none

	// Transient status
	statusMsg   string
	statusTicks int
	saveWarn    bool

	// Calendar tab state
	calYear  int
	calMonth time.Month

	// Settings tab state
	settingsCursor int

	// Auto-refresh state
	autoRefresh     bool
	refreshInterval time.Duration
	lastRefresh     time.Time

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5

	statusTickDecay = 12 // ~3s at 250ms ticks
)

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	refreshInterval := time.Duration(cfg.TUI.RefreshIntervalSec) * time.Second
	if refreshInterval < 10*time.Second {
		refreshInterval = 30 * time.Second // minimum 10s, default 30s
	}

	now := time.Now()
	return App{
		cfg:             cfg,
		dbPath:          config.DBPath(cfg),
		needSetup:       !config.Exists(),
		autoRefresh:     cfg.TUI.AutoRefresh,
		refreshInterval: refreshInterval,
		calYear:         now.Year(),
		calMonth:        now.Month(),
		spinner:         sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		openLedgerCmd(a.dbPath),
		a.spinner.Tick,
		tickCmd(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 0 && a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 0 && a.cursor < len(a.led.Activities)-1 {
				a.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text input for a new habit intercepts all keys
		if a.adding {
			return a.updateAddInput(msg)
		}

		// Delete confirmation intercepts all keys
		if a.confirmDelete != "" {
			name := a.confirmDelete
			a.confirmDelete = ""
			if key == "y" || key == "Y" {
				return a, mutateCmd(a.dbPath, fmt.Sprintf("deleted %q", name), func(svc *ledger.Service) (*model.Ledger, error) {
					return svc.DeleteActivity(name)
				})
			}
			return a, nil
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Today tab list keybindings
		if a.activeTab == 0 {
			switch key {
			case "j", "down":
				if a.cursor < len(a.led.Activities)-1 {
					a.cursor++
				}
				return a, nil
			case "k", "up":
				if a.cursor > 0 {
					a.cursor--
				}
				return a, nil
			case "g":
				a.cursor = 0
				return a, nil
			case "G":
				if n := len(a.led.Activities); n > 0 {
					a.cursor = n - 1
				}
				return a, nil
			case " ", "enter":
				if a.cursor < len(a.led.Activities) {
					name := a.led.Activities[a.cursor]
					return a, mutateCmd(a.dbPath, "", func(svc *ledger.Service) (*model.Ledger, error) {
						return svc.ToggleActivity(name, svc.Today())
					})
				}
				return a, nil
			case "a":
				a.adding = true
				a.addInput = newHabitInput()
				a.addInput.Focus()
				return a, a.addInput.Cursor.BlinkCmd()
			case "d":
				if a.cursor < len(a.led.Activities) {
					a.confirmDelete = a.led.Activities[a.cursor]
				}
				return a, nil
			}
		}

		// Calendar tab month navigation
		if a.activeTab == 1 {
			switch key {
			case "[", "h":
				a.calYear, a.calMonth = prevMonth(a.calYear, a.calMonth)
				return a, nil
			case "]", "l":
				a.calYear, a.calMonth = nextMonth(a.calYear, a.calMonth)
				return a, nil
			}
		}

		// Settings tab navigation
		if a.activeTab == 3 {
			switch key {
			case "j", "down":
				if a.settingsCursor < settingsFieldCount-1 {
					a.settingsCursor++
				}
				return a, nil
			case "k", "up":
				if a.settingsCursor > 0 {
					a.settingsCursor--
				}
				return a, nil
			case "enter", " ":
				return a.settingsActivate()
			}
		}

		// Global quit
		if key == "q" {
			return a, tea.Quit
		}

		// Theme toggle from any tab
		if key == "t" {
			return a, mutateCmd(a.dbPath, "", func(svc *ledger.Service) (*model.Ledger, error) {
				return svc.ToggleTheme()
			})
		}

		// Manual refresh (also catches day rollover)
		if key == "r" {
			return a, openLedgerCmd(a.dbPath)
		}

		// Toggle auto-refresh
		if key == "R" {
			a.autoRefresh = !a.autoRefresh
			// Persist to config (best-effort, ignore errors)
			a.cfg.TUI.AutoRefresh = a.autoRefresh
			_ = config.Save(a.cfg)
			return a, nil
		}

		// Tab navigation
		switch key {
		case "o":
			a.activeTab = 0
		case "c":
			a.activeTab = 1
		case "s":
			a.activeTab = 2
		case "x":
			a.activeTab = 3
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case LedgerMsg:
		if msg.Ledger == nil {
			a.loadErr = msg.Err
			return a, nil
		}
		a.led = msg.Ledger
		a.loaded = true
		a.saveWarn = msg.Err != nil
		a.lastRefresh = time.Now()
		a.clampCursor()
		theme.SetActive(string(a.led.Theme))

		// Activate first-run setup after the ledger loads
		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case OpMsg:
		if msg.Ledger != nil {
			a.led = msg.Ledger
			a.clampCursor()
			theme.SetActive(string(a.led.Theme))
		}
		a.saveWarn = false
		if msg.Err != nil {
			if isValidationErr(msg.Err) {
				a.setStatus(validationStatus(msg.Err))
			} else {
				a.saveWarn = true
			}
			return a, nil
		}
		if msg.Status != "" {
			a.setStatus(msg.Status)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}

		if a.statusTicks > 0 {
			a.statusTicks--
			if a.statusTicks == 0 {
				a.statusMsg = ""
			}
		}

		// Auto-refresh: reloads the ledger and rolls the day over at
		// midnight without restarting the dashboard.
		if a.loaded && a.autoRefresh && time.Since(a.lastRefresh) >= a.refreshInterval {
			cmds = append(cmds, openLedgerCmd(a.dbPath))
		}

		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = a.saveSetupConfig()
		a.autoRefresh = a.cfg.TUI.AutoRefresh
		a.needSetup = false
		a.setupForm = nil
		if a.setupVals.Theme != string(a.led.Theme) {
			return a, mutateCmd(a.dbPath, "", func(svc *ledger.Service) (*model.Ledger, error) {
				return svc.ToggleTheme()
			})
		}
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := a.addInput.Value()
		a.adding = false
		if strings.TrimSpace(raw) == "" {
			return a, nil
		}
		return a, mutateCmd(a.dbPath, "added habit", func(svc *ledger.Service) (*model.Ledger, error) {
			return svc.AddActivity(raw)
		})
	case "esc":
		a.adding = false
		return a, nil
	}

	var cmd tea.Cmd
	a.addInput, cmd = a.addInput.Update(msg)
	return a, cmd
}

func (a *App) clampCursor() {
	if a.led == nil {
		a.cursor = 0
		return
	}
	if a.cursor >= len(a.led.Activities) {
		a.cursor = len(a.led.Activities) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(s string) {
	a.statusMsg = s
	a.statusTicks = statusTickDecay
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			errStyle.Render(fmt.Sprintf("could not open habit data: %v", a.loadErr)),
			lipgloss.WithWhitespaceBackground(t.Background))
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ tally"))
	b.WriteString(subtitleStyle.Render(" · Habit Tracker"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Opening ledger..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o c s x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate habits"},
		{"[ ]", "Previous / Next month"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Space", "Toggle habit done"},
		{"a", "Add habit"},
		{"d", "Delete habit"},
		{"t", "Toggle theme"},
		{"r", "Refresh"},
		{"R", "Toggle auto-refresh"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w, a.statusMsg, a.led.CurrentStreak, a.saveWarn)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderTodayTab(cw)
	case 1:
		content = a.renderCalendarTab(cw)
	case 2:
		content = a.renderStatsTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// openLedgerCmd opens the store, runs the app-open cycle (streak
// refresh, day rollover), and closes it again. Each command owns its
// own store handle so the dashboard never holds the database open
// between operations.
func openLedgerCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return LedgerMsg{Err: err}
		}
		defer st.Close()

		led, err := ledger.NewService(st).Open()
		return LedgerMsg{Ledger: led, Err: err}
	}
}

// mutateCmd runs a single mutation against a fresh store handle.
func mutateCmd(dbPath, status string, op func(*ledger.Service) (*model.Ledger, error)) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return OpMsg{Err: err}
		}
		defer st.Close()

		led, err := op(ledger.NewService(st))
		return OpMsg{Ledger: led, Err: err, Status: status}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func newHabitInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "habit name"
	ti.CharLimit = model.MaxNameLen
	ti.Width = 30
	return ti
}

func isValidationErr(err error) bool {
	return errors.Is(err, ledger.ErrInvalidName) ||
		errors.Is(err, ledger.ErrDuplicateName) ||
		errors.Is(err, ledger.ErrLimitExceeded) ||
		errors.Is(err, ledger.ErrUnknownActivity)
}

func validationStatus(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidName):
		return "invalid habit name"
	case errors.Is(err, ledger.ErrDuplicateName):
		return "habit already exists"
	case errors.Is(err, ledger.ErrLimitExceeded):
		return fmt.Sprintf("limit of %d habits reached", model.MaxActivities)
	case errors.Is(err, ledger.ErrUnknownActivity):
		return "no such habit"
	default:
		return err.Error()
	}
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two separator columns between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
