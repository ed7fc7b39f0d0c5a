package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/lc-pierce/discogs-metatagger/config"
	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

type App struct {
	session  *tracklist.Session
	prompter *modalPrompter

	fileBrowser *FileBrowser
	table       *TrackTable
	draft       *DraftEditor
	input       textinput.Model
	layout      *Layout
	theme       *Theme

	currentMode  Mode
	previousMode Mode
	confirm      *tracklist.Prompt
	// lookupAfterToken opens the URL prompt once a token has been entered.
	lookupAfterToken bool
	// sendQueue holds album fields still to be written by send-all.
	sendQueue  []tags.Field
	sentFields int
	sentWrites int

	statusMessage string
	statusID      int
	isLoading     bool

	config     *config.Config
	newFetcher func(token string) fetcher.ReleaseFetcher
	saveConfig func(*config.Config) error
	log        *logrus.Entry
}

func NewApp(cfg *config.Config, startDir string) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return newApp(cfg, startDir, tags.NewAccessor(), func(token string) fetcher.ReleaseFetcher {
		return fetcher.NewReleaseFetcher(token, cfg.UserAgent, cfg.Timeout())
	}, config.SaveConfig)
}

func newApp(cfg *config.Config, startDir string, accessor tags.Accessor,
	newFetcher func(string) fetcher.ReleaseFetcher, saveConfig func(*config.Config) error) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	prompter := &modalPrompter{}
	input := textinput.New()
	input.CharLimit = 512

	return &App{
		session:     tracklist.NewSession(accessor, prompter, tracklist.WithTitleCase(cfg.TitleCase)),
		prompter:    prompter,
		fileBrowser: NewFileBrowser(startDir),
		table:       NewTrackTable(),
		draft:       NewDraftEditor(),
		input:       input,
		layout:      NewLayout(),
		theme:       DefaultTheme(),
		currentMode: TrackListMode,
		config:      cfg,
		newFetcher:  newFetcher,
		saveConfig:  saveConfig,
		log:         logrus.WithField("component", "tui"),
	}
}

func (a *App) Init() tea.Cmd {
	return a.setStatus("Press o to add files, f to look up a Discogs release, ? for help", 5)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Update(msg.Width, msg.Height)
		a.input.Width = max(msg.Width-24, 10)

	case tea.KeyMsg:
		if cmd := a.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case ReleaseFetchedMsg:
		if cmd := a.applyRelease(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case StatusTickMsg:
		if msg.id == a.statusID {
			a.statusMessage = ""
		}
	}

	return a, tea.Batch(cmds...)
}

// setStatus shows msg for the given number of seconds.
func (a *App) setStatus(msg string, seconds int) tea.Cmd {
	a.statusID++
	id := a.statusID
	a.statusMessage = msg
	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return StatusTickMsg{id: id}
	})
}

// setError shows an error until it is dismissed with esc.
func (a *App) setError(message, details string) {
	errorMsg := message
	if details != "" {
		errorMsg += ": " + details
	}
	a.statusID++
	a.statusMessage = IconCross + " " + errorMsg
}

// afterAction surfaces what the session asked for while running an action:
// alerts go to the status bar, a pending question opens the confirm modal.
func (a *App) afterAction() {
	a.table.Clamp(a.session.Len())

	switch alerts := a.prompter.takeAlerts(); len(alerts) {
	case 0:
	case 1:
		a.setError(alerts[0], "")
	default:
		a.setError(fmt.Sprintf("%d files could not be accessed", len(alerts)), "")
	}

	if asked := a.prompter.takePrompt(); asked != nil {
		a.confirm = asked
		if a.currentMode != ConfirmMode {
			a.previousMode = a.currentMode
		}
		a.currentMode = ConfirmMode
	}
}

func (a *App) openInput(mode Mode, placeholder, value string, secret bool) tea.Cmd {
	a.input.Reset()
	a.input.Placeholder = placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	if secret {
		a.input.EchoMode = textinput.EchoPassword
	} else {
		a.input.EchoMode = textinput.EchoNormal
	}
	a.previousMode = a.currentMode
	a.currentMode = mode
	return a.input.Focus()
}

func (a *App) closeInput(mode Mode) {
	a.input.Blur()
	a.currentMode = mode
}

func initLogging() error {
	logDir := filepath.Join(os.TempDir(), "discogs-metatagger")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logFile := filepath.Join(logDir, "tui.log")
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(f)
	logrus.WithField("ts", time.Now().Format(time.RFC3339)).Info("tui session start")
	return nil
}

func Run(cfg *config.Config, startDir string) error {
	if err := initLogging(); err != nil {
		return err
	}

	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	app := NewApp(cfg, startDir)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()

	return err
}
