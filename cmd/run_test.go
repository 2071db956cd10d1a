package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	sysclip "github.com/atotto/clipboard"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/snapedit/internal/clipboard"
	"github.com/zjrosen/snapedit/internal/config"
	"github.com/zjrosen/snapedit/internal/script"
)

const cutPasteUndo = `document:
  text: "hello world"
  cursor: {row: 0, col: 0}
  selection: 5
steps:
  - op: cut
  - op: paste
  - op: undo
  - op: undo
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunScript_CutPasteUndo(t *testing.T) {
	var out bytes.Buffer
	err := runScript(context.Background(), &out, io.Discard, config.Defaults(), writeScript(t, cutPasteUndo), false)
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, `clipboard.cut`)
	require.Contains(t, got, `text=" world" clipboard="hello" history=1`)
	require.Contains(t, got, `text="hello world" clipboard="hello" history=2`)
	require.Contains(t, got, `final: "hello world" (history 0)`)
	require.NotContains(t, got, "[-")
}

func TestRunScript_Diff(t *testing.T) {
	var out bytes.Buffer
	err := runScript(context.Background(), &out, io.Discard, config.Defaults(), writeScript(t, cutPasteUndo), true)
	require.NoError(t, err)
	require.Contains(t, out.String(), "[-hello-] world")
}

func TestRunScript_ClipboardSnapshots(t *testing.T) {
	c := config.Defaults()
	c.Snapshot.IncludeClipboard = true

	var out bytes.Buffer
	require.NoError(t, runScript(context.Background(), &out, io.Discard, c, writeScript(t, cutPasteUndo), false))

	// The final undo reverts the cut, clipboard included.
	require.Contains(t, out.String(), ` 4   history.undo     text="hello world" clipboard="" history=0`)
}

func TestRunScript_HistoryLimit(t *testing.T) {
	c := config.Defaults()
	c.History.Limit = 1

	var out bytes.Buffer
	require.NoError(t, runScript(context.Background(), &out, io.Discard, c, writeScript(t, cutPasteUndo), false))

	// Only the paste survives; the cut was evicted so the second undo is a no-op.
	require.Contains(t, out.String(), `final: " world" (history 0)`)
}

func TestRunScript_InvalidScript(t *testing.T) {
	path := writeScript(t, "steps:\n  - op: redo\n")

	err := runScript(context.Background(), &bytes.Buffer{}, io.Discard, config.Defaults(), path, false)
	require.ErrorIs(t, err, script.ErrInvalidStep)
}

func TestRunScript_MissingFile(t *testing.T) {
	err := runScript(context.Background(), &bytes.Buffer{}, io.Discard, config.Defaults(),
		filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.Error(t, err)
}

func TestEngineOptions_UnknownBackend(t *testing.T) {
	c := config.Defaults()
	c.Clipboard.Backend = "carrier-pigeon"

	_, err := engineOptions(c, io.Discard)
	require.ErrorIs(t, err, clipboard.ErrUnknownBackend)
}

func TestEngineOptions_Defaults(t *testing.T) {
	opts, err := engineOptions(config.Defaults(), io.Discard)
	require.NoError(t, err)
	require.Len(t, opts, 3)
}

func TestEngineOptions_SystemUnavailableFallsBack(t *testing.T) {
	prev := sysclip.Unsupported
	sysclip.Unsupported = true
	t.Cleanup(func() { sysclip.Unsupported = prev })

	c := config.Defaults()
	c.Clipboard.Backend = "System"

	var notice bytes.Buffer
	opts, err := engineOptions(c, &notice)
	require.NoError(t, err)
	require.Len(t, opts, 3)
	require.Contains(t, notice.String(), "system clipboard unavailable")
}

func TestRunScript_SystemUnavailableStillRuns(t *testing.T) {
	prev := sysclip.Unsupported
	sysclip.Unsupported = true
	t.Cleanup(func() { sysclip.Unsupported = prev })

	c := config.Defaults()
	c.Clipboard.Backend = clipboard.BackendSystem

	var out, notice bytes.Buffer
	require.NoError(t, runScript(context.Background(), &out, &notice, c, writeScript(t, cutPasteUndo), false))
	require.Contains(t, out.String(), `final: "hello world" (history 0)`)
	require.Contains(t, notice.String(), "using in-memory clipboard")
}
