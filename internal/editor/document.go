// Package editor implements a command-driven text document with
// snapshot-backed undo.
//
// A Document holds the editable state. Callers never mutate it directly:
// they build an Operation and hand it to an Engine, which captures a Snapshot
// of the Document just before the Operation runs and records that Snapshot in
// its History when the Operation reports a visible change. Undo pops the most
// recent entry and restores its Snapshot.
package editor

import (
	"fmt"
	"strings"
)

// Position is a cursor location in a Document.
// Col is a grapheme index within the line, not a byte offset.
type Position struct {
	Row int // Line number (0-indexed)
	Col int // Column as grapheme index (0-indexed)
}

// Document is the mutable state being edited: a text buffer, a cursor and
// the width of the selection that starts at the cursor.
//
// A Document is not safe for concurrent use. When it is owned by an Engine,
// read it through the Engine accessors.
type Document struct {
	text           string
	cursor         Position
	selectionWidth int
}

// NewDocument creates a document holding text with the cursor at 0,0 and an
// empty selection.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// Text returns the full buffer.
func (d *Document) Text() string {
	return d.text
}

// Lines returns the buffer split on newlines. An empty buffer has one empty line.
func (d *Document) Lines() []string {
	return strings.Split(d.text, "\n")
}

// Cursor returns the stored cursor position. It may lie outside the buffer;
// it is clamped whenever it is resolved to an offset.
func (d *Document) Cursor() Position {
	return d.cursor
}

// SelectionWidth returns the number of graphemes selected from the cursor.
func (d *Document) SelectionWidth() int {
	return d.selectionWidth
}

// SetText replaces the buffer. The cursor and selection are left as they are.
func (d *Document) SetText(text string) {
	d.text = text
}

// SetCursor moves the cursor. Any coordinates are accepted.
func (d *Document) SetCursor(row, col int) {
	d.cursor = Position{Row: row, Col: col}
}

// SetSelectionWidth sets the selection width. Negative widths are rejected
// with ErrInvalidArgument and leave the document unchanged.
func (d *Document) SetSelectionWidth(width int) error {
	if width < 0 {
		return fmt.Errorf("%w: selection width %d is negative", ErrInvalidArgument, width)
	}
	d.selectionWidth = width
	return nil
}

// Offset returns the cursor position as a grapheme offset into the buffer.
func (d *Document) Offset() int {
	return graphemeCount(d.text[:d.cursorByteOffset()])
}

// Selection returns the text covered by [cursor, cursor+width), clamped to the
// end of the buffer.
func (d *Document) Selection() string {
	start := d.cursorByteOffset()
	return sliceByGraphemes(d.text[start:], 0, d.selectionWidth)
}

// ReplaceSelection deletes the selected span and inserts text in its place.
// The cursor ends up after the inserted text and the selection is emptied.
func (d *Document) ReplaceSelection(text string) {
	start := d.cursorByteOffset()
	rest := d.text[start:]
	end := start + graphemeToByteOffset(rest, d.selectionWidth)

	d.text = d.text[:start] + text + d.text[end:]
	d.cursor = d.positionAt(start + len(text))
	d.selectionWidth = 0
}

// cursorByteOffset resolves the cursor to a byte offset, clamping the row to
// the existing lines and the column to the line length.
func (d *Document) cursorByteOffset() int {
	lines := d.Lines()

	row := d.cursor.Row
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1 // +1 for the newline
	}

	col := d.cursor.Col
	if col < 0 {
		col = 0
	}
	return offset + graphemeToByteOffset(lines[row], col)
}

// positionAt converts a byte offset into a row and grapheme column.
func (d *Document) positionAt(byteOffset int) Position {
	head := d.text[:byteOffset]
	row := strings.Count(head, "\n")
	lineStart := strings.LastIndex(head, "\n") + 1
	return Position{Row: row, Col: graphemeCount(head[lineStart:])}
}
