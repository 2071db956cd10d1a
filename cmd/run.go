package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/snapedit/internal/clipboard"
	"github.com/zjrosen/snapedit/internal/config"
	"github.com/zjrosen/snapedit/internal/editor"
	"github.com/zjrosen/snapedit/internal/log"
	"github.com/zjrosen/snapedit/internal/pubsub"
	"github.com/zjrosen/snapedit/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Execute an edit script",
	Long: `Execute every step of an edit script and print the document after each one.

Example:
  snapedit run edits.yaml
  snapedit run edits.yaml --diff
  snapedit run edits.yaml --clipboard system`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var (
	runShowDiff  bool
	runClipboard string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runShowDiff, "diff", false, "show an inline diff for each step")
	runCmd.Flags().StringVar(&runClipboard, "clipboard", "", "clipboard backend: memory or system (overrides config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	c := cfg
	if runClipboard != "" {
		c.Clipboard.Backend = runClipboard
		if err := config.Validate(c); err != nil {
			return fmt.Errorf("--clipboard: %w", err)
		}
	}
	return runScript(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), c, args[0], runShowDiff)
}

// runScript runs the script at path and prints a transcript to w. Notices
// that do not stop the run go to errW.
func runScript(ctx context.Context, w, errW io.Writer, c config.Config, path string, showDiff bool) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	doc, err := s.NewDocument()
	if err != nil {
		return fmt.Errorf("initial document: %w", err)
	}

	opts, err := engineOptions(c, errW)
	if err != nil {
		return err
	}

	broker := pubsub.NewBroker[editor.Change]()
	defer broker.Close()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	watchChanges(ctx, broker)

	e := editor.NewEngine(doc, append(opts, editor.WithBroker(broker))...)
	results, runErr := script.Run(e, s.Steps)
	if n := broker.Dropped(); n > 0 {
		log.Warn(log.CatEngine, "change events dropped", "count", n)
	}

	for _, r := range results {
		printResult(w, r, showDiff)
	}
	if runErr != nil {
		return runErr
	}
	_, _ = fmt.Fprintf(w, "final: %q (history %d)\n", e.Text(), e.HistoryLen())
	return nil
}

// engineOptions maps configuration onto engine options. An unavailable system
// clipboard falls back to memory with a notice on errW.
func engineOptions(c config.Config, errW io.Writer) ([]editor.Option, error) {
	cb, err := clipboard.New(c.Clipboard.Backend)
	if errors.Is(err, clipboard.ErrSystemUnavailable) {
		_, _ = fmt.Fprintln(errW, "warning: system clipboard unavailable, using in-memory clipboard")
		cb, err = clipboard.NewMemory(), nil
	}
	if err != nil {
		return nil, err
	}
	return []editor.Option{
		editor.WithClipboard(cb),
		editor.WithHistoryLimit(c.History.Limit),
		editor.WithClipboardSnapshots(c.Snapshot.IncludeClipboard),
	}, nil
}

// watchChanges subscribes before returning so no change is missed, then logs
// each one from a goroutine until ctx is cancelled.
func watchChanges(ctx context.Context, sub pubsub.Subscriber[editor.Change]) {
	events := sub.Subscribe(ctx)
	go func() {
		for ev := range events {
			ch := ev.Payload
			log.Debug(log.CatEngine, "change", "event", ev.Type, "op", ch.OpID,
				"recorded", ch.Recorded, "entry", ch.EntryID, "history", ch.HistoryLen)
		}
	}()
}

func printResult(w io.Writer, r script.StepResult, showDiff bool) {
	mark := " "
	if r.Recorded {
		mark = "*"
	}
	_, _ = fmt.Fprintf(w, "%2d %s %-16s text=%q clipboard=%q history=%d\n",
		r.Index, mark, r.OpID, r.Text, r.Clipboard, r.HistoryLen)
	if showDiff && r.Diff != "" {
		_, _ = fmt.Fprintf(w, "     %s\n", r.Diff)
	}
}
