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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/render"
)

const (
	panelRows = 4 // Status, button and help, message, spare
	minCellPx = 3
)

// FitCellSize returns the largest cell size, in pixels, at which an n×n
// grid fits a cols×rows terminal above the panel. Each terminal row holds
// two pixel rows. It never returns less than minCellPx.
func FitCellSize(n, cols, rows int) int {
	if n < 1 {
		return minCellPx
	}
	side := min(cols, 2*(rows-panelRows)) - 1
	return max(side/n, minCellPx)
}

// Model is the Bubble Tea model for a game of gridsnake.
type Model struct {
	ctrl    *loop.Controller
	sched   *Scheduler
	cfg     config.Config
	palette render.Palette
	raster  *render.Raster
	screen  *core.Screen
	panel   *panel
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	width   int
	height  int
	cellPx  int
	shotDir string // Screenshot directory; ~/.gridsnake/screenshots if empty
	message string

	quitting bool
}

// NewModel creates a model with a fresh engine in the idle phase.
func NewModel(factory loop.EngineFactory, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette, err := cfg.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	m := Model{
		sched:   NewScheduler(),
		cfg:     cfg,
		palette: palette,
		panel:   &panel{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	r := m.fitSurface()
	m.ctrl = loop.New(factory, cfg.EngineParams(rt.Seed), loop.Options{
		Interval:  cfg.Loop.Interval,
		Renderer:  r,
		Canvas:    m.raster,
		Panel:     m.panel,
		Scheduler: m.sched,
		Logger:    logger,
	})
	m.ctrl.Draw()
	return m, nil
}

// fitSurface sizes the raster and screen for the current terminal and
// returns a renderer for them.
func (m *Model) fitSurface() *render.Renderer {
	m.cellPx = FitCellSize(m.cfg.Grid.Size, m.width, m.height)

	opts := m.cfg.RenderOptions()
	opts.CellSize = float64(m.cellPx)
	r := render.New(opts)

	m.raster = render.NewRasterFor(r, m.cfg.Grid.Size, m.palette)
	cols, rows := BlitSize(m.raster.Width(), m.raster.Height())
	if m.screen == nil {
		m.screen = core.NewScreen(cols, rows)
	} else {
		m.screen.Resize(cols, rows)
	}
	return r
}

// Controller returns the game loop controller.
func (m Model) Controller() *loop.Controller {
	return m.ctrl
}

// Init initializes the model. No loop runs until the player starts.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("gridsnake"), m.sched.Flush())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Keys without a binding steer.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Control):
		m.ctrl.Press()
		m.ctrl.Draw()
		m.message = ""
		return m, m.sched.Flush()
	}

	m.ctrl.HandleKey(msg.String())
	return m, nil
}

// handleResize refits the board to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	if FitCellSize(m.cfg.Grid.Size, m.width, m.height) != m.cellPx {
		r := m.fitSurface()
		m.ctrl.SetSurface(r, m.raster)
		m.ctrl.Draw()
	}
	return m, nil
}

// handleTick runs one loop tick and re-arms the timer while the loop lives.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Tick(msg.Handle) {
		m.sched.Rearm(msg.Handle)
	}
	return m, m.sched.Flush()
}

// saveScreenshot writes the last drawn frame as a PNG at the configured cell
// size.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.message = "screenshot failed: " + err.Error()
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.message = "saved " + path
}

func (m Model) writeScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		data, err := config.DataDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(data, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	raster := render.Rasterize(render.New(m.cfg.RenderOptions()), m.palette, m.ctrl.Snapshot())

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("gridsnake_%s.png", timestamp))
	if err := raster.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	Blit(m.screen, m.raster.Image(), 0, 0)

	controls := m.panel.buttonView() + "  " + m.help.View(m.keys)
	lines := []string{RenderScreen(m.screen), m.panel.statusLine(), controls}
	if m.message != "" {
		lines = append(lines, messageStyle.Render(m.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts the Bubble Tea program for a new game.
func Run(factory loop.EngineFactory, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(factory, cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
