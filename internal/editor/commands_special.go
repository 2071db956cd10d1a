package editor

// ============================================================================
// History Commands
// ============================================================================

// UndoCommand undoes the last recorded operation.
// Undo is never itself recorded.
type UndoCommand struct {
	HistoryBase
}

// Execute asks the engine to undo.
func (c *UndoCommand) Execute(_ *Document, env Env) (bool, error) {
	return false, env.Undo()
}

// Kind returns KindUndo.
func (c *UndoCommand) Kind() Kind { return KindUndo }

// ID returns the hierarchical identifier for this command.
func (c *UndoCommand) ID() string { return "history.undo" }
