package editor

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry pairs a recorded operation with the state captured just
// before it ran.
type HistoryEntry struct {
	ID       string    // Unique entry id, used in logs and change events
	OpID     string    // Operation.ID() of the recorded operation
	Kind     Kind      // Operation.Kind() of the recorded operation
	Snapshot Snapshot  // Document state before the operation
	At       time.Time // When the operation was recorded
}

// newHistoryEntry builds an entry for op with its pre-execution snapshot.
func newHistoryEntry(op Operation, before Snapshot) HistoryEntry {
	return HistoryEntry{
		ID:       uuid.NewString(),
		OpID:     op.ID(),
		Kind:     op.Kind(),
		Snapshot: before,
		At:       time.Now(),
	}
}

// History is a LIFO stack of recorded operations.
//
// Entries are appended at the tail and popped from the tail; they are never
// reordered or modified after insertion. There is no redo: a popped entry is
// discarded.
//
// When a limit is set, pushing past it evicts the oldest entry.
type History struct {
	entries []HistoryEntry
	limit   int // 0 = unlimited
}

// NewHistory creates an empty history holding at most limit entries.
// A limit of 0 or less means unlimited.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{
		entries: make([]HistoryEntry, 0),
		limit:   limit,
	}
}

// Push appends an entry. It returns the number of old entries evicted to
// stay within the limit.
func (h *History) Push(entry HistoryEntry) int {
	h.entries = append(h.entries, entry)
	if h.limit == 0 || len(h.entries) <= h.limit {
		return 0
	}

	excess := len(h.entries) - h.limit
	// Zero evicted slots so their snapshots can be collected.
	for i := 0; i < excess; i++ {
		h.entries[i] = HistoryEntry{}
	}
	h.entries = h.entries[excess:]
	return excess
}

// Pop removes and returns the most recent entry.
// Returns false if the history is empty.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := len(h.entries) - 1
	entry := h.entries[last]
	h.entries[last] = HistoryEntry{}
	h.entries = h.entries[:last]
	return entry, true
}

// Peek returns the most recent entry without removing it.
func (h *History) Peek() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the configured capacity (0 = unlimited).
func (h *History) Limit() int {
	return h.limit
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
