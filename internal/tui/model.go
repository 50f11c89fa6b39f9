package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/rpgo/vat-calculator/internal/keypad"
)

// buttonRow is the focus row holding the Add VAT and Remove VAT buttons
const buttonRow = 4

var actions = []domain.Operation{domain.AddVAT, domain.RemoveVAT}

// Model is the bubbletea model of the keypad window
type Model struct {
	title   string
	display *keypad.Display
	styles  Styles
	logger  calculation.Logger

	row, col int
}

// NewModel creates a keypad model over an empty display
func NewModel(config *domain.Configuration, t *calculation.Transformer) Model {
	if t == nil {
		t = calculation.NewTransformer()
	}
	return Model{
		title:   config.Title,
		display: keypad.NewDisplay(t),
		styles:  NewStyles(config.Theme),
		logger:  t.Logger,
	}
}

// Display exposes the field the model edits
func (m Model) Display() *keypad.Display { return m.display }

// Focus returns the focused row and column
func (m Model) Focus() (row, col int) { return m.row, m.col }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "c", "C":
		m.display.Clear()
	case "a", "+":
		m.apply(domain.AddVAT)
	case "r", "-":
		m.apply(domain.RemoveVAT)
	case "up", "down", "left", "right":
		m.move(k)
	case "enter", " ":
		m.activate()
	default:
		if keypad.IsKey(k) {
			_ = m.display.Press(k)
		}
	}
	return m, nil
}

func (m *Model) apply(op domain.Operation) {
	m.logger.Debugf("keypad %s on %q", op, m.display.Text())
	m.display.Apply(op)
}

// activate presses whatever has focus
func (m *Model) activate() {
	if m.row == buttonRow {
		m.apply(actions[m.col])
		return
	}
	_ = m.display.Press(keypad.Layout[m.row][m.col])
}

func (m *Model) move(dir string) {
	switch dir {
	case "up":
		if m.row == buttonRow {
			m.row = len(keypad.Layout) - 1
			m.col *= 2
		} else if m.row > 0 {
			m.row--
		}
	case "down":
		if m.row == len(keypad.Layout)-1 {
			m.row = buttonRow
			if m.col > 0 {
				m.col = 1
			}
		} else if m.row < buttonRow {
			m.row++
		}
	case "left":
		if m.col > 0 {
			m.col--
		}
	case "right":
		last := len(keypad.Layout[0]) - 1
		if m.row == buttonRow {
			last = len(actions) - 1
		}
		if m.col < last {
			m.col++
		}
	}
}

func (m Model) View() string {
	var grid []string
	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for c, k := range row {
			cells = append(cells, m.cellStyle(r, c, m.styles.Key).Render(k))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	buttons := make([]string, 0, len(actions))
	for c, op := range actions {
		buttons = append(buttons, m.cellStyle(buttonRow, c, m.styles.Action).Render(op.Label()))
	}

	text := m.display.Text()
	if text == "" {
		text = " "
	}

	return m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Header.Render(m.title),
		m.styles.Entry.Render(text),
		strings.Join(grid, "\n"),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		m.styles.Help.Render("0-9 . type · c clear · a add · r remove · arrows+enter · q quit"),
	))
}

func (m Model) cellStyle(row, col int, base lipgloss.Style) lipgloss.Style {
	if m.row == row && m.col == col {
		return base.Background(m.styles.Focused.GetBackground()).Bold(true)
	}
	return base
}

// Run starts the keypad program and blocks until the user quits
func Run(config *domain.Configuration, t *calculation.Transformer, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(config, t), opts...).Run()
	return err
}
