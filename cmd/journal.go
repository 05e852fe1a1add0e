package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/holonet/internal/ui"
)

// errNoJournal is returned when no journal file is configured or given.
var errNoJournal = errors.New("journal: no file (set journal_path or pass --file)")

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "View the JSONL transition journal",
	Long: `Reads and formats the transition journal written by the explorer when
journal_path is configured.

With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().String("file", "", "journal file (default: journal_path from config)")
	journalCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = viper.GetString("journal_path")
	}
	if path == "" {
		return errNoJournal
	}
	follow, _ := cmd.Flags().GetBool("follow")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", path, err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	p := ui.New(out, isTTY(out))

	tail := &lineTail{r: bufio.NewReader(f), p: p}
	if err := tail.drain(); err != nil {
		return fmt.Errorf("journal: read %s: %w", path, err)
	}

	if !follow {
		tail.emit()
		return nil
	}
	return tailFollow(tail, path)
}

// lineTail prints complete lines from a growing file, holding back a
// trailing partial line until the rest of it is written.
type lineTail struct {
	r       *bufio.Reader
	p       *ui.Printer
	pending string
}

// drain prints every complete line currently available.
func (t *lineTail) drain() error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.pending += chunk
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		t.emit()
	}
}

// emit prints the pending line, complete or not.
func (t *lineTail) emit() {
	if line := strings.TrimSpace(t.pending); line != "" {
		t.p.EventLine(line)
	}
	t.pending = ""
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(tail *lineTail, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("journal: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("journal: watch %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			if err := tail.drain(); err != nil {
				return fmt.Errorf("journal: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("journal: watch %s: %w", path, err)
		}
	}
}
