// Package clipboard provides the clipboard slot shared by copy, cut and paste.
//
// The clipboard is process state that lives outside the edited document. It
// is handed to the editor engine explicitly instead of being reached through
// a global.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/zjrosen/snapedit/internal/log"
)

var (
	// ErrUnknownBackend is returned by New for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown clipboard backend")
	// ErrSystemUnavailable is returned by New when the OS clipboard cannot be used.
	ErrSystemUnavailable = errors.New("system clipboard unavailable")
)

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendSystem = "system"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	// Read returns the current contents. An empty clipboard reads as "".
	Read() (string, error)
	// Write replaces the contents.
	Write(text string) error
}

// NormalizeBackend folds a backend name to the form New and config
// validation compare against. The empty name means BackendMemory.
func NormalizeBackend(backend string) string {
	name := strings.ToLower(strings.TrimSpace(backend))
	if name == "" {
		return BackendMemory
	}
	return name
}

// Unsupported reports whether the OS clipboard is unavailable, for example
// on Linux without xclip, xsel or wl-clipboard installed.
func Unsupported() bool {
	return sysclip.Unsupported
}

// New builds the clipboard for a configured backend name. Asking for the
// system backend where it is unsupported returns ErrSystemUnavailable; the
// caller decides whether to fall back to Memory.
func New(backend string) (Clipboard, error) {
	switch NormalizeBackend(backend) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSystem:
		if Unsupported() {
			log.Warn(log.CatClipboard, "system clipboard unsupported")
			return nil, ErrSystemUnavailable
		}
		return System{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Memory is an in-process clipboard. The zero value is an empty clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// System implements Clipboard using the operating system clipboard.
type System struct{}

// Read reads the system clipboard.
func (System) Read() (string, error) {
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return text, nil
}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}
