package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/telemetry"
	"github.com/papapumpkin/periodic/internal/tui"
)

// errNoTTY is returned when the interactive view is started without a terminal.
var errNoTTY = errors.New("periodic tui requires a TTY (terminal)")

// tuiCmd launches the interactive lookup view.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive lookup view",
	Long: `Opens a full-screen view with a search box and three pages of element
data (basic, details, properties). Enter looks up the query, tab and
shift+tab switch pages, esc clears, ctrl+c quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errNoTTY
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.record(s.history.Emit(telemetry.Event{
		Kind: telemetry.KindSessionStart,
		Data: map[string]string{"command": "tui", "locale": s.names.Locale()},
	}))

	return tui.Run(tui.Options{
		Resolver: s.resolver,
		Labels:   s.names,
		History:  s.history,
	}, tui.WithInput(cmd.InOrStdin()), tui.WithOutput(cmd.OutOrStdout()))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
