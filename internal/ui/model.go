// Package ui implements the interactive node edit panel.
package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nodelens/nodelens"
)

// column identifies which cell of a row the cursor is on.
type column int

const (
	colKey column = iota
	colValue
)

// Model is the bubbletea model for the node edit panel. It wraps a single
// edit session: browsing shows the working rows, an active input buffer
// edits one cell, save and cancel drive the session's lifecycle.
type Model struct {
	session *nodelens.Session

	cursor int
	col    column

	inputActive bool
	input       string

	showDiff bool
	diff     string

	width  int
	height int
	status string
	errMsg string
	styles Styles
}

// New builds a panel over session.
func New(session *nodelens.Session) Model {
	return Model{session: session, styles: DefaultStyles()}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		m.status, m.errMsg = "", ""
		if m.inputActive {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.session.Rows()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "left", "h":
		m.col = colKey
	case "right", "l":
		m.col = colValue
	case "enter", "e":
		if len(rows) == 0 {
			break
		}
		row := rows[m.cursor]
		if m.col == colValue && !row.Type.IsLeaf() {
			m.errMsg = "array/object values are read-only"
			break
		}
		m.inputActive = true
		if m.col == colKey {
			m.input = row.Key
		} else {
			m.input = row.Text()
		}
	case "t":
		if len(rows) == 0 {
			break
		}
		row := rows[m.cursor]
		if !row.Type.IsLeaf() {
			m.errMsg = "array/object rows keep their type"
			break
		}
		row.Type = nextLeafType(row.Type)
		m.session.SetRow(m.cursor, row)
	case "a":
		m.session.AddRow(nodelens.Row{Type: nodelens.StringType})
		m.cursor = len(m.session.Rows()) - 1
		m.col = colKey
		m.inputActive = true
		m.input = ""
	case "d":
		if m.showDiff {
			m.showDiff = false
			break
		}
		before, after, err := m.session.Preview()
		if err != nil {
			m.errMsg = err.Error()
			break
		}
		m.diff = RenderDiff(string(before), string(after))
		m.showDiff = true
	case "s", "ctrl+s":
		if err := m.session.Save(); err != nil {
			m.errMsg = err.Error()
			break
		}
		m.status = "saved"
		return m, tea.Quit
	case "esc":
		m.session.Cancel()
		m.cursor = 0
		m.showDiff = false
		m.status = "changes discarded"
	case "c":
		if err := clipboard.WriteAll(m.session.Locator()); err != nil {
			m.errMsg = "clipboard: " + err.Error()
		} else {
			m.status = "path copied"
		}
	case "y":
		if err := clipboard.WriteAll(m.session.Normalize()); err != nil {
			m.errMsg = "clipboard: " + err.Error()
		} else {
			m.status = "value copied"
		}
	}
	if m.cursor >= len(m.session.Rows()) && m.cursor > 0 {
		m.cursor = len(m.session.Rows()) - 1
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitInput()
		m.inputActive = false
	case tea.KeyEscape:
		m.inputActive = false
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// commitInput writes the input buffer into the current cell. Values stay
// textual here; type coercion happens in the save algorithm.
func (m *Model) commitInput() {
	rows := m.session.Rows()
	if m.cursor >= len(rows) {
		return
	}
	row := rows[m.cursor]
	if m.col == colKey {
		row.Key = m.input
	} else {
		row.Value = m.input
	}
	m.session.SetRow(m.cursor, row)
}

func nextLeafType(t nodelens.FieldType) nodelens.FieldType {
	order := []nodelens.FieldType{
		nodelens.StringType,
		nodelens.NumberType,
		nodelens.BoolType,
		nodelens.NullType,
	}
	for i, cur := range order {
		if cur == t {
			return order[(i+1)%len(order)]
		}
	}
	return nodelens.StringType
}
