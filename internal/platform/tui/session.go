package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/registry"
	"github.com/DeXoteric/MatchThreeGame/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is one SSH connection: it starts on the menu, switches to a
// game or the scoreboard, and comes back to the menu when those are left.
// Every round it records carries the session ID.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	gameConfig config.MatchThreeConfig
	logger     *log.Logger
	sessionID  string
	screen     sessionScreen
	menu       MenuModel
	gameModel  Model
	scores     ScoreboardModel
	quitting   bool
}

// NewSessionModel opens a session on the menu with preset preselected.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.MatchThreeConfig, preset config.DifficultyPreset, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:      store,
		config:     cfg,
		gameConfig: gameCfg,
		logger:     logger,
		sessionID:  uuid.NewString(),
		menu:       NewMenuModel(store, cfg, preset),
	}
}

// SessionID returns the ID recorded with every round of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id, preset := m.menu.Selected().GameID, m.menu.Preset()
		game, err := registry.CreateConfigured(id, m.gameConfig, preset)
		if err != nil {
			m.logger.Error("cannot create game", "game", id, "error", err)
			m.toMenu()
			return m, nil
		}
		m.logger.Info("game started", "game", id, "difficulty", preset, "session", m.sessionID)
		m.gameModel = NewModel(game, m.store, m.config, m.logger, m.sessionID)
		m.screen = screenGame
		return m, m.gameModel.Init()
	}
	return m, cmd
}

// updateGame forwards to the game. Leaving the game returns to the menu
// instead of ending the connection, so the game's tea.Quit is dropped.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	m.gameModel = next.(Model)

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// toMenu shows a fresh menu that keeps the chosen difficulty.
func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.store, m.config, m.menu.Preset())
	m.screen = screenMenu
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
