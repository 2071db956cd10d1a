package script

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/snapedit/internal/editor"
	"github.com/zjrosen/snapedit/internal/log"
)

// StepResult is the engine state observed after one step.
type StepResult struct {
	Index      int    // 1-based step number
	OpID       string // Operation.ID() of the step
	Recorded   bool   // Whether the step pushed a history entry
	Text       string // Document text after the step
	Clipboard  string // Clipboard contents after the step
	HistoryLen int
	Diff       string // Inline diff of the text, empty when unchanged
}

// Run executes steps in order against e. It stops at the first failing step
// and returns the results gathered so far together with the error.
func Run(e *editor.Engine, steps []Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))

	for i, step := range steps {
		op, err := step.Operation()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		beforeText := e.Text()
		prev, _ := e.Peek()

		if err := e.Execute(op); err != nil {
			log.ErrorErr(log.CatScript, "step failed", err, "step", i+1, "op", op.ID())
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}

		top, ok := e.Peek()
		clip, err := e.Clipboard().Read()
		if err != nil {
			return results, fmt.Errorf("step %d: reading clipboard: %w", i+1, err)
		}

		afterText := e.Text()
		results = append(results, StepResult{
			Index:      i + 1,
			OpID:       op.ID(),
			Recorded:   op.Kind() != editor.KindUndo && ok && top.ID != prev.ID,
			Text:       afterText,
			Clipboard:  clip,
			HistoryLen: e.HistoryLen(),
			Diff:       InlineDiff(beforeText, afterText),
		})
	}

	log.Debug(log.CatScript, "script finished", "steps", len(results))
	return results, nil
}

// InlineDiff renders the change from before to after on one line, marking
// deletions as [-text-] and insertions as {+text+}. Returns "" when equal.
func InlineDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}
