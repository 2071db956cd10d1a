package editor

import (
	"github.com/zjrosen/snapedit/internal/clipboard"
	"github.com/zjrosen/snapedit/internal/pubsub"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClipboard sets the clipboard shared by copy, cut and paste.
// The default is an empty in-process clipboard.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(e *Engine) {
		if cb != nil {
			e.clipboard = cb
		}
	}
}

// WithHistoryLimit caps the number of undoable entries. 0 means unlimited.
func WithHistoryLimit(limit int) Option {
	return func(e *Engine) {
		e.history = NewHistory(limit)
	}
}

// WithClipboardSnapshots makes every snapshot also capture the clipboard, so
// undo reverts clipboard contents too. Off by default: the clipboard is
// process state and survives undo.
func WithClipboardSnapshots(enabled bool) Option {
	return func(e *Engine) {
		e.snapshotClipboard = enabled
	}
}

// WithBroker publishes a Change after every Execute and Undo.
// A *pubsub.Broker[Change] is the usual publisher.
func WithBroker(p pubsub.Publisher[Change]) Option {
	return func(e *Engine) {
		if p != nil {
			e.broker = p
		}
	}
}
