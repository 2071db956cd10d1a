package editor

import (
	"fmt"

	"github.com/zjrosen/snapedit/internal/clipboard"
)

// Snapshot is an immutable copy of a Document's state at one instant.
// All fields are values, so later edits to the Document never reach a
// Snapshot that was already taken.
type Snapshot struct {
	text           string
	cursor         Position
	selectionWidth int

	// Clipboard contents, only present when the engine snapshots the clipboard.
	clipboard    string
	hasClipboard bool
}

// Capture returns a Snapshot of the document's current state.
func (d *Document) Capture() Snapshot {
	return Snapshot{
		text:           d.text,
		cursor:         d.cursor,
		selectionWidth: d.selectionWidth,
	}
}

// Text returns the captured buffer.
func (s Snapshot) Text() string { return s.text }

// Cursor returns the captured cursor.
func (s Snapshot) Cursor() Position { return s.cursor }

// SelectionWidth returns the captured selection width.
func (s Snapshot) SelectionWidth() int { return s.selectionWidth }

// Clipboard returns the captured clipboard contents and whether they were captured.
func (s Snapshot) Clipboard() (string, bool) { return s.clipboard, s.hasClipboard }

// Matches reports whether doc currently holds exactly the captured state.
func (s Snapshot) Matches(doc *Document) bool {
	return doc.text == s.text &&
		doc.cursor == s.cursor &&
		doc.selectionWidth == s.selectionWidth
}

// Restore overwrites every field of target with the captured values using the
// document's own setters. Restoring the same Snapshot twice leaves target in
// the same state as restoring it once.
func (s Snapshot) Restore(target *Document) error {
	if target == nil {
		return fmt.Errorf("%w: restore target is nil", ErrInvalidArgument)
	}
	if err := target.SetSelectionWidth(s.selectionWidth); err != nil {
		return err
	}
	target.SetText(s.text)
	target.SetCursor(s.cursor.Row, s.cursor.Col)
	return nil
}

// withClipboard returns a copy of s that also carries clipboard contents.
func (s Snapshot) withClipboard(text string) Snapshot {
	s.clipboard = text
	s.hasClipboard = true
	return s
}

// restoreClipboard writes captured clipboard contents back, if any were captured.
func (s Snapshot) restoreClipboard(cb clipboard.Clipboard) error {
	if !s.hasClipboard || cb == nil {
		return nil
	}
	return cb.Write(s.clipboard)
}
