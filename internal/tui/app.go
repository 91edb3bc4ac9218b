// internal/tui/app.go
//
// This is the terminal UI for Sea Wolf. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: the App below, which owns exactly one game session
// 2. Update: key presses and clock ticks become session events
// 3. View: the session's read views rendered with lipgloss
//
// The session never imports this package. Everything here reads views and
// sends events.

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/logbook"
	"github.com/kingrea/seawolf/internal/session"
)

// appState is the screen on display. It follows the session status.
type appState int

const (
	stateMainMenu appState = iota // Start, Rules, Exit
	stateRules                    // Rendered rules and scoring guide
	statePlaying                  // A session in progress
	stateResults                  // Final scores
)

const (
	tickInterval = time.Second
	journalLines = 6
)

const (
	menuStart = "Start Expedition"
	menuRules = "Rules"
	menuExit  = "Exit"
)

// AppOption configures NewApp.
type AppOption func(*App)

// WithSeed fixes the generation seed for every game started from this App.
func WithSeed(seed uint64) AppOption {
	return func(a *App) {
		a.seed = &seed
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *zap.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock drives the session timer from clock.
func WithClock(clock func() time.Time) AppOption {
	return func(a *App) {
		if clock != nil {
			a.clock = clock
		}
	}
}

type tickMsg time.Time

// App is the bubbletea model. It owns one session, its journal and the widgets.
type App struct {
	state   appState
	config  *config.Config
	session *session.Session
	logbook *logbook.Logbook
	logger  *zap.Logger
	clock   func() time.Time
	seed    *uint64

	// UI components
	mainMenu  list.Model
	timerBar  progress.Model
	rules     viewport.Model
	statusMsg string

	// Profile picks are UI-local until confirmed.
	profileCursor int
	profilePicks  []string
	profileSite   int

	width  int
	height int
}

// menuItem is a main menu entry (list.Item).
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App around cfg.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	app := &App{
		state:  stateMainMenu,
		config: cfg,
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	lb, err := logbook.New(cfg.JournalPath(), logbook.WithClock(app.clock))
	if err != nil {
		return nil, err
	}
	app.logbook = lb

	app.session = session.New(cfg.Game,
		session.WithClock(app.clock),
		session.WithLogger(app.logger),
		session.WithJournal(lb),
	)

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "🐺 SEA WOLF"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	app.mainMenu = mainMenu

	app.timerBar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	app.rules = viewport.New(80, 20)
	return app, nil
}

func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: menuStart, desc: "Clean up three contaminated sites against the clock"},
		menuItem{title: menuRules, desc: "How sites, candidates and scoring work"},
		menuItem{title: menuExit, desc: "Quit Sea Wolf"},
	}
}

// Session exposes the owned session for the CLI and tests.
func (a *App) Session() *session.Session { return a.session }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the expiry ticker.
func (a *App) Init() tea.Cmd {
	return tick()
}

// Update routes keys to the active screen and ticks to the expiry check.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		a.rules.Width = max(20, msg.Width-6)
		a.rules.Height = max(5, msg.Height-8)
		a.timerBar.Width = max(10, msg.Width/3)
		return a, nil

	case tickMsg:
		a.checkExpiry()
		return a, tick()

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu || a.state == stateResults {
				return a, tea.Quit
			}
		case "esc":
			if a.state == stateRules {
				a.state = stateMainMenu
				return a, nil
			}
		}
		switch a.state {
		case stateMainMenu:
			if key == "enter" {
				return a.handleMainMenuSelection()
			}
		case stateRules:
			if key == "enter" {
				a.state = stateMainMenu
				return a, nil
			}
		case statePlaying:
			return a.handlePlayKey(key)
		case stateResults:
			switch key {
			case "enter", "n":
				return a.startGame()
			case "m":
				a.session.Reset()
				a.state = stateMainMenu
				a.statusMsg = ""
				return a, nil
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMainMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateRules:
		a.rules, cmd = a.rules.Update(msg)
	}
	return a, cmd
}

// handleMainMenuSelection acts on the highlighted menu entry.
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case menuStart:
		return a.startGame()
	case menuRules:
		a.rules.SetContent(renderRules(a.config.Game, a.rules.Width))
		a.rules.GotoTop()
		a.state = stateRules
		return a, nil
	case menuExit:
		return a, tea.Quit
	}
	return a, nil
}

// startGame begins a fresh session, discarding any finished one.
func (a *App) startGame() (tea.Model, tea.Cmd) {
	if a.session.Status() != session.StatusMenu {
		a.session.Reset()
	}
	if err := a.session.Start(a.seed); err != nil {
		a.statusMsg = refusalText(err)
		return a, nil
	}
	a.state = statePlaying
	a.resetProfile()
	a.statusMsg = fmt.Sprintf("Seed %d · good luck", a.session.Seed())
	return a, nil
}

func (a *App) checkExpiry() {
	if a.state != statePlaying {
		return
	}
	if a.session.CheckExpiry() {
		a.state = stateResults
		a.statusMsg = "Time is up. Unfinished sites were scored as they stood."
	}
}

// handlePlayKey maps a key to the event the active phase accepts.
func (a *App) handlePlayKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "[":
		return a, a.apply(a.session.ViewSite(a.session.ViewedIndex() - 1))
	case "]":
		if a.session.ViewedIndex() < a.session.SiteIndex() {
			return a, a.apply(a.session.AdvanceSite())
		}
		a.statusMsg = "Already at the active site"
		return a, nil
	}

	switch a.session.Phase() {
	case session.PhaseReview:
		switch key {
		case "k":
			return a, a.apply(a.session.DecideReview(session.DecisionKeep))
		case "r":
			return a, a.apply(a.session.DecideReview(session.DecisionReject))
		}
	case session.PhaseProfile:
		return a, a.handleProfileKey(key)
	case session.PhaseCategorize:
		switch key {
		case "k":
			return a, a.apply(a.session.DecideCategorize(session.DecisionKeep))
		case "s":
			return a, a.apply(a.session.DecideCategorize(session.DecisionSave))
		case "r":
			return a, a.apply(a.session.DecideCategorize(session.DecisionReject))
		}
	case session.PhaseProspects:
		if n, ok := digit(key); ok && n >= 1 {
			return a, a.apply(a.session.PickRound(n - 1))
		}
	case session.PhaseTreatment:
		if n, ok := digit(key); ok {
			if n == 0 {
				n = 10
			}
			return a, a.apply(a.session.ToggleFinal(n - 1))
		}
		if key == "enter" {
			return a, a.apply(a.session.Submit())
		}
	}
	return a, nil
}

func (a *App) handleProfileKey(key string) tea.Cmd {
	view, ok := a.session.Active()
	if !ok {
		return nil
	}
	if a.profileSite != view.Index {
		a.resetProfile()
		a.profileSite = view.Index
	}
	choices := view.Site.Characteristics()
	switch key {
	case "up":
		if a.profileCursor > 0 {
			a.profileCursor--
		}
	case "down":
		if a.profileCursor < len(choices)-1 {
			a.profileCursor++
		}
	case " ", "space":
		choice := choices[a.profileCursor]
		for i, p := range a.profilePicks {
			if p == choice {
				a.profilePicks = append(a.profilePicks[:i], a.profilePicks[i+1:]...)
				return nil
			}
		}
		if len(a.profilePicks) >= 2 {
			a.statusMsg = "Pick exactly two characteristics"
			return nil
		}
		a.profilePicks = append(a.profilePicks, choice)
	case "enter":
		if len(a.profilePicks) != 2 {
			a.statusMsg = "Pick exactly two characteristics"
			return nil
		}
		return a.apply(a.session.ConfirmProfile(a.profilePicks[0], a.profilePicks[1]))
	}
	return nil
}

// apply reports the outcome of an event and follows the session to results.
func (a *App) apply(err error) tea.Cmd {
	if err != nil {
		a.statusMsg = refusalText(err)
	} else {
		a.statusMsg = ""
	}
	if a.session.Status() == session.StatusResults {
		a.state = stateResults
		if a.session.Expired() {
			a.statusMsg = "Time is up. Unfinished sites were scored as they stood."
		}
	}
	if view, ok := a.session.Active(); ok && view.Index != a.profileSite {
		a.resetProfile()
		a.profileSite = view.Index
	}
	return nil
}

func (a *App) resetProfile() {
	a.profileCursor = 0
	a.profilePicks = nil
	a.profileSite = a.session.SiteIndex()
}

func refusalText(err error) string {
	var r *session.RefusalError
	if errors.As(err, &r) {
		reason := strings.ReplaceAll(string(r.Reason), "_", " ")
		if r.Detail != "" {
			return fmt.Sprintf("Not now: %s (%s)", reason, r.Detail)
		}
		return fmt.Sprintf("Not now: %s", reason)
	}
	return fmt.Sprintf("Error: %v", err)
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}
