package editor

import (
	"errors"

	"pgregory.net/rapid"

	"github.com/zjrosen/snapedit/internal/clipboard"
)

var errBoom = errors.New("boom")

// failingCommand edits the document and then fails, to exercise rollback.
type failingCommand struct {
	EditBase
}

func (c *failingCommand) Execute(doc *Document, _ Env) (bool, error) {
	doc.ReplaceSelection("half-applied")
	return false, errBoom
}

func (c *failingCommand) Kind() Kind { return KindInsert }
func (c *failingCommand) ID() string { return "test.failing" }

// failingClipboard rejects every read and write.
type failingClipboard struct{}

func (failingClipboard) Read() (string, error) { return "", errBoom }
func (failingClipboard) Write(string) error    { return errBoom }

// testEnv is an Env for running commands outside an engine.
type testEnv struct {
	cb    clipboard.Clipboard
	undos int
}

func newTestEnv() *testEnv {
	return &testEnv{cb: clipboard.NewMemory()}
}

func (e *testEnv) Clipboard() clipboard.Clipboard { return e.cb }

func (e *testEnv) Undo() error {
	e.undos++
	return nil
}

func (e *testEnv) clip() string {
	text, _ := e.cb.Read()
	return text
}

// newTestEngine creates an engine over text with the cursor at row, col and
// width graphemes selected.
func newTestEngine(text string, row, col, width int, opts ...Option) *Engine {
	return NewEngine(newTestDocument(text, row, col, width), opts...)
}

// drawDocument draws a document with an arbitrary cursor and selection.
func drawDocument(t *rapid.T) *Document {
	text := rapid.StringMatching(`[a-z \n]{0,20}`).Draw(t, "text")
	row := rapid.IntRange(-1, 4).Draw(t, "row")
	col := rapid.IntRange(-1, 25).Draw(t, "col")
	width := rapid.IntRange(0, 10).Draw(t, "width")
	return newTestDocument(text, row, col, width)
}

// drawOperation draws any operation except undo.
func drawOperation(t *rapid.T) Operation {
	switch rapid.IntRange(0, 5).Draw(t, "opType") {
	case 0:
		return &CopyCommand{}
	case 1:
		return &CutCommand{}
	case 2:
		return &PasteCommand{}
	case 3:
		text := rapid.StringMatching(`[a-z\n]{0,6}`).Draw(t, "insertText")
		return &InsertCommand{Text: text}
	case 4:
		return &DeleteCommand{}
	default:
		return &SelectCommand{
			Row:   rapid.IntRange(0, 3).Draw(t, "selRow"),
			Col:   rapid.IntRange(0, 10).Draw(t, "selCol"),
			Width: rapid.IntRange(0, 6).Draw(t, "selWidth"),
		}
	}
}
