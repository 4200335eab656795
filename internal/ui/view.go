package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nodelens/nodelens"
)

const (
	keyColWidth  = 24
	typeColWidth = 8
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("nodelens"))
	b.WriteString("  ")
	b.WriteString(m.styles.Locator.Render(m.session.Locator()))
	b.WriteString("\n\n")

	if m.showDiff {
		b.WriteString(m.diff)
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("d close diff"))
		return b.String()
	}

	b.WriteString(m.styles.Header.Render(
		pad("KEY", keyColWidth) + pad("TYPE", typeColWidth) + "VALUE"))
	b.WriteString("\n")

	rows := m.session.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Help.Render("(no fields; press a to add one)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(m.styles.Error.Render(m.errMsg))
	case m.status != "":
		b.WriteString(m.styles.Status.Render(m.status))
	case m.session.Editing():
		b.WriteString(m.styles.Status.Render("unsaved edits"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"enter edit · t type · a add · d diff · s save · esc cancel · c/y copy path/value · q quit"))
	return b.String()
}

func (m Model) renderRow(i int, row nodelens.Row) string {
	key := row.Key
	if key == "" {
		key = "(value)"
	}
	value := row.Text()
	if !row.Type.IsLeaf() {
		value = fmt.Sprintf("<%s>", row.Type)
	}

	keyCell := m.styles.Key.Render(pad(key, keyColWidth))
	valueCell := m.styles.Value.Render(value)
	if m.inputActive && i == m.cursor {
		if m.col == colKey {
			keyCell = m.inputCell(keyColWidth)
		} else {
			valueCell = m.inputCell(0)
		}
	}
	line := keyCell + m.styles.Type.Render(pad(row.Type.String(), typeColWidth)) + valueCell
	if i == m.cursor && !m.inputActive {
		return m.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

const inputCursor = "▌"

// inputCell renders the active input buffer with its cursor glyph, padded to
// w columns when w is positive. The visible width is measured on the composed
// text so the cursor glyph's width is never assumed.
func (m Model) inputCell(w int) string {
	text := m.input + inputCursor
	cell := m.styles.Input.Render(text)
	if vis := runewidth.StringWidth(text); w > 0 && vis < w {
		cell += strings.Repeat(" ", w-vis)
	}
	return cell
}

func pad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w-1, "…"), w)
}
