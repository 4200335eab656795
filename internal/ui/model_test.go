package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/store"
)

func newTestModel(t *testing.T, docText string, path nodelens.Path) (Model, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore([]byte(docText), nil)
	node, err := nodelens.NodeAt(st.DocumentText(), path)
	require.NoError(t, err)
	return New(nodelens.NewSession(st, node)), st
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, `{"a":1,"b":2,"c":3}`, nil)

	m, _ = update(t, m, keyMsg("j"))
	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, 2, m.cursor, "cursor must stop at the last row")

	m, _ = update(t, m, keyMsg("k"))
	assert.Equal(t, 1, m.cursor)
}

func TestModelEditValueAndSave(t *testing.T) {
	m, st := newTestModel(t, `{"name":"Alice"}`, nil)

	m, _ = update(t, m, keyMsg("l")) // value column
	m, _ = update(t, m, keyMsg("e"))
	require.True(t, m.inputActive)
	assert.Equal(t, "Alice", m.input)

	for i := 0; i < len("Alice"); i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = update(t, m, keyMsg("Bob"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.inputActive)
	assert.Equal(t, "Bob", m.session.Rows()[0].Value)

	m, cmd := update(t, m, keyMsg("s"))
	require.NotNil(t, cmd, "save should quit the panel")
	assert.True(t, st.Dirty())
	assert.Contains(t, string(st.DocumentText()), `"Bob"`)
	_ = m
}

func TestModelEscapeCancelsEdits(t *testing.T) {
	m, st := newTestModel(t, `{"name":"Alice"}`, nil)

	m, _ = update(t, m, keyMsg("l"))
	m, _ = update(t, m, keyMsg("e"))
	m, _ = update(t, m, keyMsg("X"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.session.Editing())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.session.Editing())
	assert.Equal(t, "Alice", m.session.Rows()[0].Value)
	assert.False(t, st.Dirty())
}

func TestModelContainerValueIsReadOnly(t *testing.T) {
	m, _ := newTestModel(t, `{"tags":["x"]}`, nil)

	m, _ = update(t, m, keyMsg("l"))
	m, _ = update(t, m, keyMsg("e"))
	assert.False(t, m.inputActive)
	assert.NotEmpty(t, m.errMsg)
}

func TestModelTypeCycling(t *testing.T) {
	m, _ := newTestModel(t, `{"a":"text"}`, nil)

	m, _ = update(t, m, keyMsg("t"))
	assert.Equal(t, nodelens.NumberType, m.session.Rows()[0].Type)
	m, _ = update(t, m, keyMsg("t"))
	assert.Equal(t, nodelens.BoolType, m.session.Rows()[0].Type)
}

func TestInputCellPadsByVisibleWidth(t *testing.T) {
	m := Model{input: "ab", styles: Styles{}}
	cell := m.inputCell(10)
	assert.Equal(t, 10, runewidth.StringWidth(cell))
	assert.True(t, strings.HasPrefix(cell, "ab"+inputCursor))

	// Wide runes count by display width, not byte or rune length.
	m.input = "日本"
	assert.Equal(t, 10, runewidth.StringWidth(m.inputCell(10)))

	// An input already wider than the column is left alone.
	m.input = strings.Repeat("x", 12)
	assert.Equal(t, m.input+inputCursor, m.inputCell(10))
}

func TestModelViewShowsLocatorAndRows(t *testing.T) {
	m, _ := newTestModel(t, `{"customer":{"name":"Alice"}}`, nodelens.Path{nodelens.Key("customer")})
	view := m.View()
	assert.Contains(t, view, `$["customer"]`)
	assert.Contains(t, view, "name")
	assert.Contains(t, view, "Alice")
	assert.True(t, strings.Contains(view, "KEY") && strings.Contains(view, "VALUE"))
}
