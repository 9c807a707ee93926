package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/config"
	"github.com/papapumpkin/periodic/internal/telemetry"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View the JSONL lookup history",
	Long: `Reads and formats the lookup history written when history_file is set.

With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("file", "", "history file to read (default: history_file setting)")
	historyCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	follow, _ := cmd.Flags().GetBool("follow")

	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.HistoryFile
	}
	if path == "" {
		return fmt.Errorf("history: no history file (set history_file or PERIODIC_HISTORY_FILE, or pass --file)")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("history: open %s: %w", path, err)
	}
	defer f.Close()

	// Print all existing events.
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		printEvent(cmd.OutOrStdout(), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("history: read %s: %w", path, err)
	}

	if !follow {
		return nil
	}

	return tailFollow(cmd, f, path)
}

// tailFollow watches the file for new data using fsnotify and prints new
// events until the command's context is cancelled.
func tailFollow(cmd *cobra.Command, f *os.File, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("history: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("history: watch %s: %w", path, err)
	}

	done := commandContext(cmd).Done()
	w := cmd.OutOrStdout()
	reader := bufio.NewReader(f)
	for {
		select {
		case <-done:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("history: watch %s: %w", path, err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			readNewLines(w, reader)
		}
	}
}

// readNewLines prints every complete line available from r.
func readNewLines(w io.Writer, r *bufio.Reader) {
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			printEvent(w, line)
		}
		if err != nil {
			return
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line string) {
	var evt struct {
		telemetry.Event
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", evt.Timestamp.Local().Format(time.DateTime)))
	parts = append(parts, evt.Kind)

	if evt.Session != "" {
		parts = append(parts, fmt.Sprintf("session=%s", shortID(evt.Session)))
	}
	if len(evt.Data) > 0 {
		parts = append(parts, formatDataMap(evt.Data))
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// shortID trims a UUID to its first group.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		v := m[k]
		if s, ok := v.(string); ok && strings.ContainsAny(s, " \t") {
			v = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&b, "%s=%v", k, v)
	}
	return b.String()
}
