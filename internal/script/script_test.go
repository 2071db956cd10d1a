package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/snapedit/internal/editor"
)

func TestParse_Valid(t *testing.T) {
	s, err := Parse([]byte(`
document:
  text: "ab\ncd"
  cursor: {row: 1, col: 1}
  selection: 1
steps:
  - op: select
    row: 0
    col: 0
    width: 2
  - op: insert
    text: "xy"
  - op: Copy
`))
	require.NoError(t, err)

	assert.Equal(t, "ab\ncd", s.Document.Text)
	assert.Equal(t, CursorSpec{Row: 1, Col: 1}, s.Document.Cursor)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, Step{Op: "select", Width: 2}, s.Steps[0])
	assert.Equal(t, "xy", s.Steps[1].Text)

	doc, err := s.NewDocument()
	require.NoError(t, err)
	assert.Equal(t, "d", doc.Selection())
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "unknown op", yaml: "steps:\n  - op: redo\n", wantErr: "step 1"},
		{name: "insert without text", yaml: "steps:\n  - op: insert\n", wantErr: "insert requires text"},
		{name: "negative select width", yaml: "steps:\n  - op: select\n    width: -1\n", wantErr: "negative"},
		{name: "negative document selection", yaml: "document:\n  selection: -2\n", wantErr: "document selection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidStep)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: cut\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding script")
}

func TestStep_UnknownOpWrapsEditorError(t *testing.T) {
	_, err := Step{Op: "explode"}.Operation()
	require.ErrorIs(t, err, ErrInvalidStep)
	require.ErrorIs(t, err, editor.ErrUnknownOperation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading script")
}

func TestLoadAndRun_CutPasteUndo(t *testing.T) {
	s, err := Load("testdata/cut_paste_undo.yaml")
	require.NoError(t, err)
	doc, err := s.NewDocument()
	require.NoError(t, err)

	results, err := Run(editor.NewEngine(doc), s.Steps)
	require.NoError(t, err)
	require.Len(t, results, 4)

	cut := results[0]
	assert.Equal(t, 1, cut.Index)
	assert.Equal(t, "clipboard.cut", cut.OpID)
	assert.True(t, cut.Recorded)
	assert.Equal(t, " world", cut.Text)
	assert.Equal(t, "hello", cut.Clipboard)
	assert.Equal(t, 1, cut.HistoryLen)
	assert.Equal(t, "[-hello-] world", cut.Diff)

	paste := results[1]
	assert.True(t, paste.Recorded)
	assert.Equal(t, "hello world", paste.Text)
	assert.Equal(t, "{+hello+} world", paste.Diff)
	assert.Equal(t, 2, paste.HistoryLen)

	firstUndo := results[2]
	assert.Equal(t, "history.undo", firstUndo.OpID)
	assert.False(t, firstUndo.Recorded)
	assert.Equal(t, " world", firstUndo.Text)
	assert.Equal(t, 1, firstUndo.HistoryLen)

	secondUndo := results[3]
	assert.Equal(t, "hello world", secondUndo.Text)
	assert.Equal(t, "hello", secondUndo.Clipboard)
	assert.Equal(t, 0, secondUndo.HistoryLen)
}

func TestRun_RecordedAtHistoryLimit(t *testing.T) {
	e := editor.NewEngine(editor.NewDocument(""), editor.WithHistoryLimit(1))

	results, err := Run(e, []Step{
		{Op: "insert", Text: "a"},
		{Op: "insert", Text: "b"},
		{Op: "copy"},
	})
	require.NoError(t, err)

	assert.True(t, results[0].Recorded)
	assert.True(t, results[1].Recorded, "recorded even though history length stayed at the limit")
	assert.False(t, results[2].Recorded)
	assert.Equal(t, 1, results[2].HistoryLen)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	e := editor.NewEngine(editor.NewDocument("abc"))

	results, err := Run(e, []Step{
		{Op: "insert", Text: "x"},
		{Op: "insert"},
		{Op: "insert", Text: "never"},
	})

	require.ErrorIs(t, err, ErrInvalidStep)
	assert.Contains(t, err.Error(), "step 2")
	require.Len(t, results, 1)
	assert.Equal(t, "xabc", e.Text())
}

func TestInlineDiff(t *testing.T) {
	assert.Equal(t, "", InlineDiff("same", "same"))
	assert.Equal(t, "{+abc+}", InlineDiff("", "abc"))
	assert.Equal(t, "[-abc-]", InlineDiff("abc", ""))
	assert.Equal(t, "hello world{+!+}", InlineDiff("hello world", "hello world!"))
}
