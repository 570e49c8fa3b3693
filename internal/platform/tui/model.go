package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/core"
)

// footerHeight is the number of rows reserved below the play field.
const footerHeight = 1

// Game is the contract between the terminal loop and a simulation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// Options tunes the session around the game.
type Options struct {
	HoldFrames    int           // Frames a direction stays held after a key press
	GameOverDelay time.Duration // Pause on the game over screen before exiting
	ScreenshotDir string        // Defaults to ~/.kokaton/screenshots
	Logger        *log.Logger   // Defaults to a discarding logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.HoldFrames),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init names the terminal window after the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case gameOverMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
// Once the game is over only quit and screenshot are honored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKey(msg) == core.ActionQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score, "frame", m.gameState.Frame)
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.gameState.GameOver {
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.hold.Press(d)
		return m, nil
	}
	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so resizing only changes how it is scaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A tick already in flight when the game ended
	if m.gameState.GameOver {
		return m, nil
	}

	m.inputFrame.Held = m.hold.Held()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.hold.Advance()
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logger.Debug(e.Kind.String(), "x", e.X, "y", e.Y, "score", result.State.Score, "frame", result.State.Frame)
	}

	if m.gameState.GameOver {
		m.hold.Release()
		m.logger.Info("game over", "score", m.gameState.Score, "frame", m.gameState.Frame)
		return m, gameOverCmd(m.opts.GameOverDelay)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current play field to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".kokaton", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), fmt.Errorf("run %s: %w", game.ID(), err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
