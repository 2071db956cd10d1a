package editor

// ============================================================================
// Edit Commands
// ============================================================================

// InsertCommand types Text at the cursor, replacing any selection.
type InsertCommand struct {
	EditBase
	Text string
}

// Execute replaces the selection with Text.
func (c *InsertCommand) Execute(doc *Document, _ Env) (bool, error) {
	return replaceSelection(doc, c.Text), nil
}

// Kind returns KindInsert.
func (c *InsertCommand) Kind() Kind { return KindInsert }

// ID returns the hierarchical identifier for this command.
func (c *InsertCommand) ID() string { return "edit.insert" }

// DeleteCommand removes the selection without touching the clipboard.
type DeleteCommand struct {
	EditBase
}

// Execute deletes the selection. An empty selection is a no-op.
func (c *DeleteCommand) Execute(doc *Document, _ Env) (bool, error) {
	return replaceSelection(doc, ""), nil
}

// Kind returns KindDelete.
func (c *DeleteCommand) Kind() Kind { return KindDelete }

// ID returns the hierarchical identifier for this command.
func (c *DeleteCommand) ID() string { return "edit.delete" }
