package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/history"
	"github.com/javiermolinar/logspan/internal/tui"
	"github.com/javiermolinar/logspan/internal/window"
)

func (a *App) pickCmd() *cobra.Command {
	var (
		from   string
		to     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "logspan",
		Short: "Pick a time window for a log query",
		Long: `logspan opens a small terminal picker with a start and an end boundary.

Type digits into the HH:mm:ss fields, or paste a log timestamp (epoch
milliseconds or microseconds) to set the window to one second around it.
On enter the window is printed to stdout as "<start> <end>" and saved to
the history.`,
		Example: `  logspan
  logspan --from yesterday --to today --format unix_ms
  logspan --from 2025-01-15`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = a.outputFormat(format)
			if !window.IsFormat(format) {
				return fmt.Errorf("%w: %q", window.ErrUnknownFormat, format)
			}

			w, err := tui.RunWithDebug(a.config, a.debug, tui.WithDays(from, to), tui.WithNow(a.now))
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}

			if err := printWindow(cmd.OutOrStdout(), *w, format); err != nil {
				return err
			}
			return a.record(cmd, *w, history.SourcePicker)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start day (today, yesterday, -Nd or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End day (today, yesterday, -Nd or YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (rfc3339, unix, unix_ms, unix_micro)")

	return cmd
}

func (a *App) outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return a.config.Output.Format
}

// printWindow writes both bounds of w on one line.
func printWindow(out io.Writer, w window.Window, format string) error {
	start, end, err := w.Format(format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s %s\n", start, end)
	return err
}

// record saves w to the history unless history is disabled, and echoes the
// saved entry on stderr so stdout only carries the window.
func (a *App) record(cmd *cobra.Command, w window.Window, source history.Source) error {
	if !a.config.Storage.History {
		return nil
	}
	repo, err := a.history()
	if err != nil {
		return err
	}
	entry, err := history.NewEntry(w, source, a.now())
	if err != nil {
		return err
	}
	if err := repo.Save(cmd.Context(), entry); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	loc, err := a.config.Location()
	if err != nil {
		return err
	}
	printHistoryLine(cmd.ErrOrStderr(), entry, loc)
	return nil
}
