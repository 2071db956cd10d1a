package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestProperty_ExecuteThenUndoRoundTrips verifies that undoing a recorded
// operation restores the exact prior state, and that unrecorded operations
// leave the history alone.
func TestProperty_ExecuteThenUndoRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := drawDocument(t)
		e := NewEngine(doc)
		_ = e.Clipboard().Write(rapid.StringMatching(`[a-z]{0,5}`).Draw(t, "clipboard"))

		before := e.State()
		op := drawOperation(t)

		err := e.Execute(op)
		assert.NoError(t, err)

		if e.HistoryLen() == 0 {
			return
		}
		assert.Equal(t, 1, e.HistoryLen())
		assert.NoError(t, e.Undo())
		assert.Equal(t, before, e.State(), "undo must restore %s exactly", op.ID())
	})
}

// TestProperty_CopyNeverRecords verifies copy leaves history untouched for any document.
func TestProperty_CopyNeverRecords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEngine(drawDocument(t))
		before := e.State()

		assert.NoError(t, e.Execute(&CopyCommand{}))

		assert.Equal(t, 0, e.HistoryLen())
		assert.Equal(t, before, e.State())
	})
}

// TestProperty_UndoIsLIFO verifies undo walks back through states in reverse order.
func TestProperty_UndoIsLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEngine(drawDocument(t))

		n := rapid.IntRange(1, 8).Draw(t, "n")
		states := []Snapshot{e.State()}
		for i := 0; i < n; i++ {
			text := rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "text")
			assert.NoError(t, e.Execute(&InsertCommand{Text: text}))
			states = append(states, e.State())
		}
		assert.Equal(t, n, e.HistoryLen(), "non-empty inserts always change the document")

		for i := n - 1; i >= 0; i-- {
			assert.NoError(t, e.Undo())
			assert.Equal(t, states[i], e.State())
		}
		assert.False(t, e.CanUndo())
	})
}

// TestProperty_RestoreIsIdempotent verifies restoring twice equals restoring once.
func TestProperty_RestoreIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := drawDocument(t)
		snap := src.Capture()
		target := drawDocument(t)

		assert.NoError(t, snap.Restore(target))
		once := target.Capture()
		assert.NoError(t, snap.Restore(target))

		assert.Equal(t, once, target.Capture())
		assert.True(t, snap.Matches(target))
	})
}

// TestProperty_HistoryNeverExceedsLimit verifies eviction keeps history bounded.
func TestProperty_HistoryNeverExceedsLimit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, 5).Draw(t, "limit")
		e := NewEngine(NewDocument(""), WithHistoryLimit(limit))

		n := rapid.IntRange(0, 12).Draw(t, "n")
		for i := 0; i < n; i++ {
			assert.NoError(t, e.Execute(&InsertCommand{Text: "x"}))
			assert.LessOrEqual(t, e.HistoryLen(), limit)
		}
		assert.Equal(t, min(n, limit), e.HistoryLen())
	})
}

// TestProperty_DeleteRecordsOnlyWhenTextChanges verifies delete is recorded
// exactly when it removes text, whatever the cursor and width.
func TestProperty_DeleteRecordsOnlyWhenTextChanges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEngine(drawDocument(t))
		before := e.Text()

		assert.NoError(t, e.Execute(&DeleteCommand{}))

		assert.Equal(t, before != e.Text(), e.HistoryLen() == 1)
	})
}
