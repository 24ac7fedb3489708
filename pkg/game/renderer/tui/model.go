package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/gameplay"
	"puzzlerooms/pkg/game/state"
)

// tickMsg advances the simulation by one frame
type tickMsg time.Time

// Model is the Bubbletea model for the terminal frontend. The game is only
// touched from Update.
type Model struct {
	game      *state.Game
	view      *TUIRenderer
	cursor    world.Position
	tickEvery time.Duration

	width, height int
	err           error
	quitting      bool
}

// NewModel creates a model for g, ticking tickRate times per second. The edit
// cursor starts on the player.
func NewModel(g *state.Game, view *TUIRenderer, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 30
	}
	return Model{
		game:      g,
		view:      view,
		cursor:    g.Player.Position,
		tickEvery: time.Second / time.Duration(tickRate),
	}
}

// Run starts the terminal frontend and blocks until the player quits
func Run(g *state.Game, view *TUIRenderer, tickRate int) error {
	final, err := tea.NewProgram(NewModel(g, view, tickRate), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Cursor returns the edit cursor position
func (m Model) Cursor() world.Position {
	return m.cursor
}

// Init starts the simulation clock
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles key presses, window resizes and simulation ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if _, err := gameplay.Tick(m.game, float32(m.tickEvery.Seconds())); err != nil {
			m.game.Log.WithError(err).Error("tick failed")
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// View renders the current game state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	rows, cols := m.view.GetViewportSize()
	if m.width > 0 && m.height > 0 {
		rows, cols = viewportFor(m.width, m.height)
	}
	return m.view.Frame(m.game, &m.cursor, rows, cols) + "\n"
}

// handleKey maps the key through the input bindings. Cursor moves stay in the
// model; everything else is handed to the game, editing actions at the cursor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	raw := input.RawInput{Device: input.DeviceKeyboard, Code: keyCode(msg), Timestamp: time.Now()}
	intent := input.MapToIntent(input.NewDebouncedInput(raw))

	switch intent.Action {
	case input.ActionNone:
		return m, nil
	case input.ActionCursorUp:
		m.moveCursor(world.Up)
	case input.ActionCursorDown:
		m.moveCursor(world.Down)
	case input.ActionCursorLeft:
		m.moveCursor(world.Left)
	case input.ActionCursorRight:
		m.moveCursor(world.Right)
	case input.ActionToggleCell, input.ActionClearCell:
		gameplay.ProcessIntent(m.game, intent.At(m.cursor.Row, m.cursor.Col))
	default:
		gameplay.ProcessIntent(m.game, intent)
	}

	if m.game.QuitRequested {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) moveCursor(dir world.Direction) {
	next := m.cursor.Add(dir)
	if m.game.Grid.Contains(next) {
		m.cursor = next
	}
}

// keyCode turns a Bubbletea key into an input binding code
func keyCode(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "arrow_up"
	case tea.KeyDown:
		return "arrow_down"
	case tea.KeyLeft:
		return "arrow_left"
	case tea.KeyRight:
		return "arrow_right"
	case tea.KeySpace:
		return "space"
	case tea.KeyEnter:
		return "enter"
	case tea.KeyBackspace:
		return "backspace"
	case tea.KeyEsc:
		return "escape"
	case tea.KeyF9:
		return "f9"
	}
	return msg.String()
}
