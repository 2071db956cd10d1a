package editor

// ============================================================================
// Motion Commands
// ============================================================================

// SelectCommand moves the cursor to Row, Col and selects Width graphemes.
// Like cursor motions in vim, it is not recorded in history.
type SelectCommand struct {
	MotionBase
	Row   int
	Col   int
	Width int
}

// Execute validates the width before touching the cursor, so a rejected
// selection leaves the document unchanged.
func (c *SelectCommand) Execute(doc *Document, _ Env) (bool, error) {
	if err := doc.SetSelectionWidth(c.Width); err != nil {
		return false, err
	}
	doc.SetCursor(c.Row, c.Col)
	return false, nil
}

// Kind returns KindSelect.
func (c *SelectCommand) Kind() Kind { return KindSelect }

// ID returns the hierarchical identifier for this command.
func (c *SelectCommand) ID() string { return "motion.select" }
