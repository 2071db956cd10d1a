package editor

import (
	"fmt"
	"strings"

	"github.com/zjrosen/snapedit/internal/clipboard"
)

// Kind identifies an Operation variant.
type Kind int

const (
	KindCopy Kind = iota
	KindCut
	KindPaste
	KindUndo
	KindInsert
	KindDelete
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindCopy:
		return "copy"
	case KindCut:
		return "cut"
	case KindPaste:
		return "paste"
	case KindUndo:
		return "undo"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParseKind maps an operation name to its Kind. Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "copy":
		return KindCopy, nil
	case "cut":
		return KindCut, nil
	case "paste":
		return KindPaste, nil
	case "undo":
		return KindUndo, nil
	case "insert":
		return KindInsert, nil
	case "delete":
		return KindDelete, nil
	case "select":
		return KindSelect, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// Env is what an Operation may reach besides the Document.
type Env interface {
	// Clipboard returns the clipboard shared by copy, cut and paste.
	Clipboard() clipboard.Clipboard
	// Undo reverses the most recent recorded operation. It is a no-op when
	// there is nothing to undo.
	Undo() error
}

// Operation is a single action requested by a caller.
//
// Execute mutates doc and reports whether the document's observable state
// changed. That report, not the operation's kind, decides whether the engine
// records the operation in history. An operation never takes its own
// snapshot; the engine captures state before calling Execute.
//
// The set of operations is closed: every variant embeds one of the base
// structs below.
type Operation interface {
	Execute(doc *Document, env Env) (bool, error)

	// Kind returns the variant tag.
	Kind() Kind

	// ID returns a hierarchical identifier used in logs and change events.
	// Examples: "clipboard.copy", "edit.insert", "history.undo"
	ID() string

	operation()
}

// ============================================================================
// Base structs sealing the Operation set
// ============================================================================

// ClipboardBase is embedded by operations that move text through the clipboard.
type ClipboardBase struct{}

func (ClipboardBase) operation() {}

// EditBase is embedded by operations that only edit the document.
type EditBase struct{}

func (EditBase) operation() {}

// MotionBase is embedded by operations that move the cursor or selection.
// Motions are never recorded.
type MotionBase struct{}

func (MotionBase) operation() {}

// HistoryBase is embedded by operations that act on the engine's history.
type HistoryBase struct{}

func (HistoryBase) operation() {}
