package editor

import (
	"fmt"
	"sync"

	"github.com/zjrosen/snapedit/internal/clipboard"
	"github.com/zjrosen/snapedit/internal/log"
	"github.com/zjrosen/snapedit/internal/pubsub"
)

// Change describes the outcome of one Execute or Undo call.
type Change struct {
	OpID       string // Operation.ID(), or "history.undo" for Engine.Undo
	Kind       Kind
	Recorded   bool   // Whether a history entry was pushed
	EntryID    string // Pushed (Execute) or reverted (Undo) entry, if any
	Text       string // Document text after the call
	HistoryLen int
}

// Engine executes operations against one Document and keeps the history
// needed to undo them.
//
// Execute captures a Snapshot, runs the operation, and pushes the Snapshot
// onto the History only if the operation reports a change. Undo pops the
// latest entry and restores its Snapshot. There is no redo.
//
// Each Execute and Undo runs under a single lock, so the Document and the
// History are never observed out of step with each other.
type Engine struct {
	mu                sync.Mutex
	doc               *Document
	history           *History
	clipboard         clipboard.Clipboard
	snapshotClipboard bool
	broker            pubsub.Publisher[Change]
}

// NewEngine creates an engine that owns doc. A nil doc starts empty.
func NewEngine(doc *Document, opts ...Option) *Engine {
	if doc == nil {
		doc = NewDocument("")
	}
	e := &Engine{
		doc:       doc,
		history:   NewHistory(0),
		clipboard: clipboard.NewMemory(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs op against the document.
//
// If op fails, the document is put back to its state before the call, the
// history is left alone and the error is returned wrapped with the op id.
func (e *Engine) Execute(op Operation) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.executeLocked(op)
}

func (e *Engine) executeLocked(op Operation) error {
	before, err := e.capture()
	if err != nil {
		return fmt.Errorf("%s: capturing state: %w", op.ID(), err)
	}

	changed, err := op.Execute(e.doc, lockedEnv{e: e})
	if err != nil {
		if rerr := e.restore(before); rerr != nil {
			log.ErrorErr(log.CatEngine, "rollback failed", rerr, "op", op.ID())
		}
		log.ErrorErr(log.CatEngine, "operation failed", err, "op", op.ID())
		return fmt.Errorf("%s: %w", op.ID(), err)
	}

	change := Change{OpID: op.ID(), Kind: op.Kind()}
	if changed {
		entry := newHistoryEntry(op, before)
		if evicted := e.history.Push(entry); evicted > 0 {
			log.Debug(log.CatHistory, "evicted oldest entries", "count", evicted, "limit", e.history.Limit())
		}
		change.Recorded = true
		change.EntryID = entry.ID
	}

	log.Debug(log.CatEngine, "executed", "op", op.ID(), "recorded", changed, "history", e.history.Len())
	e.publish(pubsub.ExecutedEvent, change)
	return nil
}

// Undo reverts the most recent recorded operation. With nothing to undo it
// does nothing and returns nil.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.undoLocked()
}

func (e *Engine) undoLocked() error {
	entry, ok := e.history.Pop()
	if !ok {
		log.Debug(log.CatHistory, "nothing to undo")
		return nil
	}

	if err := e.restore(entry.Snapshot); err != nil {
		// Put the entry back so a later undo can retry it.
		e.history.Push(entry)
		log.ErrorErr(log.CatHistory, "restore failed", err, "entry", entry.ID, "op", entry.OpID)
		return fmt.Errorf("undo %s: %w", entry.OpID, err)
	}

	log.Debug(log.CatHistory, "undone", "entry", entry.ID, "op", entry.OpID, "history", e.history.Len())
	e.publish(pubsub.UndoneEvent, Change{
		OpID:    "history.undo",
		Kind:    KindUndo,
		EntryID: entry.ID,
	})
	return nil
}

// capture snapshots the document, plus the clipboard when configured to.
func (e *Engine) capture() (Snapshot, error) {
	snap := e.doc.Capture()
	if !e.snapshotClipboard {
		return snap, nil
	}
	text, err := e.clipboard.Read()
	if err != nil {
		return Snapshot{}, err
	}
	return snap.withClipboard(text), nil
}

func (e *Engine) restore(s Snapshot) error {
	if err := s.Restore(e.doc); err != nil {
		return err
	}
	return s.restoreClipboard(e.clipboard)
}

// publish fills in the post-call document fields and sends c. Callers hold e.mu.
func (e *Engine) publish(t pubsub.EventType, c Change) {
	if e.broker == nil {
		return
	}
	c.Text = e.doc.Text()
	c.HistoryLen = e.history.Len()
	e.broker.Publish(t, c)
}

// ============================================================================
// Read accessors
// ============================================================================

// Text returns the document text.
func (e *Engine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Text()
}

// Selection returns the selected text.
func (e *Engine) Selection() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Selection()
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Cursor()
}

// State returns a Snapshot of the current document.
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Capture()
}

// HistoryLen returns the number of undoable entries.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// CanUndo reports whether there is anything to undo.
func (e *Engine) CanUndo() bool {
	return e.HistoryLen() > 0
}

// Entries returns the recorded history, oldest first.
func (e *Engine) Entries() []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Entries()
}

// Peek returns the most recent history entry without removing it.
func (e *Engine) Peek() (HistoryEntry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Peek()
}

// Clipboard returns the engine's clipboard.
func (e *Engine) Clipboard() clipboard.Clipboard {
	return e.clipboard
}

// lockedEnv is the Env handed to operations while the engine lock is held.
type lockedEnv struct {
	e *Engine
}

func (l lockedEnv) Clipboard() clipboard.Clipboard { return l.e.clipboard }

func (l lockedEnv) Undo() error { return l.e.undoLocked() }
