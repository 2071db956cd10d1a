// Package script runs declarative edit scripts against an editor engine.
//
// A script is a YAML document describing an initial document state and a
// list of steps, each naming one operation:
//
//	document:
//	  text: "hello world"
//	  cursor: {row: 0, col: 0}
//	  selection: 5
//	steps:
//	  - op: cut
//	  - op: paste
//	  - op: undo
//	  - op: select
//	    row: 0
//	    col: 6
//	    width: 5
//	  - op: insert
//	    text: "there"
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/snapedit/internal/editor"
	"github.com/zjrosen/snapedit/internal/log"
)

// ErrInvalidStep is returned when a script step cannot be turned into an operation.
var ErrInvalidStep = errors.New("invalid step")

// Script is a parsed edit script.
type Script struct {
	Document DocumentSpec `yaml:"document"`
	Steps    []Step       `yaml:"steps"`
}

// DocumentSpec is the initial document state.
type DocumentSpec struct {
	Text      string     `yaml:"text"`
	Cursor    CursorSpec `yaml:"cursor"`
	Selection int        `yaml:"selection"` // Selection width in graphemes
}

// CursorSpec is a cursor position.
type CursorSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Step names one operation and its parameters.
type Step struct {
	Op    string `yaml:"op"`
	Text  string `yaml:"text,omitempty"`  // insert
	Row   int    `yaml:"row,omitempty"`   // select
	Col   int    `yaml:"col,omitempty"`   // select
	Width int    `yaml:"width,omitempty"` // select
}

// Operation builds the editor operation for the step.
func (s Step) Operation() (editor.Operation, error) {
	kind, err := editor.ParseKind(s.Op)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	switch kind {
	case editor.KindCopy:
		return &editor.CopyCommand{}, nil
	case editor.KindCut:
		return &editor.CutCommand{}, nil
	case editor.KindPaste:
		return &editor.PasteCommand{}, nil
	case editor.KindUndo:
		return &editor.UndoCommand{}, nil
	case editor.KindDelete:
		return &editor.DeleteCommand{}, nil
	case editor.KindInsert:
		if s.Text == "" {
			return nil, fmt.Errorf("%w: insert requires text", ErrInvalidStep)
		}
		return &editor.InsertCommand{Text: s.Text}, nil
	case editor.KindSelect:
		if s.Width < 0 {
			return nil, fmt.Errorf("%w: select width %d is negative", ErrInvalidStep, s.Width)
		}
		return &editor.SelectCommand{Row: s.Row, Col: s.Col, Width: s.Width}, nil
	default:
		return nil, fmt.Errorf("%w: unhandled kind %s", ErrInvalidStep, kind)
	}
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's script
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.CatScript, "loaded script", "path", path, "steps", len(s.Steps))
	return s, nil
}

// Validate checks the initial document and every step.
func (s *Script) Validate() error {
	if s.Document.Selection < 0 {
		return fmt.Errorf("%w: document selection %d is negative", ErrInvalidStep, s.Document.Selection)
	}
	for i, step := range s.Steps {
		if _, err := step.Operation(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// NewDocument builds the initial document.
func (s *Script) NewDocument() (*editor.Document, error) {
	doc := editor.NewDocument(s.Document.Text)
	doc.SetCursor(s.Document.Cursor.Row, s.Document.Cursor.Col)
	if err := doc.SetSelectionWidth(s.Document.Selection); err != nil {
		return nil, err
	}
	return doc, nil
}
