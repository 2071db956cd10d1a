package editor

import "fmt"

// ============================================================================
// Clipboard Commands
// ============================================================================

// CopyCommand copies the selection to the clipboard.
// It never changes the document, so it is never recorded.
type CopyCommand struct {
	ClipboardBase
}

// Execute writes the selection to the clipboard.
func (c *CopyCommand) Execute(doc *Document, env Env) (bool, error) {
	if err := env.Clipboard().Write(doc.Selection()); err != nil {
		return false, fmt.Errorf("copy: %w", err)
	}
	return false, nil
}

// Kind returns KindCopy.
func (c *CopyCommand) Kind() Kind { return KindCopy }

// ID returns the hierarchical identifier for this command.
func (c *CopyCommand) ID() string { return "clipboard.copy" }

// CutCommand moves the selection to the clipboard.
type CutCommand struct {
	ClipboardBase
}

// Execute writes the selection to the clipboard, then deletes it.
// The clipboard is written first so a clipboard failure leaves the document untouched.
func (c *CutCommand) Execute(doc *Document, env Env) (bool, error) {
	if err := env.Clipboard().Write(doc.Selection()); err != nil {
		return false, fmt.Errorf("cut: %w", err)
	}
	return replaceSelection(doc, ""), nil
}

// Kind returns KindCut.
func (c *CutCommand) Kind() Kind { return KindCut }

// ID returns the hierarchical identifier for this command.
func (c *CutCommand) ID() string { return "clipboard.cut" }

// PasteCommand replaces the selection with the clipboard contents.
// The clipboard is read, not cleared.
type PasteCommand struct {
	ClipboardBase
}

// Execute inserts the clipboard contents at the cursor.
func (c *PasteCommand) Execute(doc *Document, env Env) (bool, error) {
	text, err := env.Clipboard().Read()
	if err != nil {
		return false, fmt.Errorf("paste: %w", err)
	}
	return replaceSelection(doc, text), nil
}

// Kind returns KindPaste.
func (c *PasteCommand) Kind() Kind { return KindPaste }

// ID returns the hierarchical identifier for this command.
func (c *PasteCommand) ID() string { return "clipboard.paste" }

// replaceSelection replaces the selection with text and reports whether
// anything was removed or inserted. The selection is measured after clamping,
// so a width that runs past the end of the buffer selects nothing.
func replaceSelection(doc *Document, text string) bool {
	if text == "" && doc.Selection() == "" {
		return false
	}
	doc.ReplaceSelection(text)
	return true
}
