package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/history"
	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/window"
)

// readClipboard is swapped in tests.
var readClipboard = clipboard.ReadAll

func (a *App) convertCmd() *cobra.Command {
	var (
		role          string
		fromClipboard bool
		format        string
	)

	cmd := &cobra.Command{
		Use:   "convert [timestamp]",
		Short: "Turn a log timestamp into a window around it",
		Long: `Convert an epoch timestamp (milliseconds, or microseconds when it has
16 digits) into the window the picker would produce on paste: one second
before it to one second after it.

With --role the clock of that boundary is printed as HH:mm:ss in the
configured timezone. Without it the window is printed like the picker does
and saved to the history.`,
		Example: `  logspan convert 1736937000000
  logspan convert 1736937000000000 --role start
  logspan convert --clipboard --format unix_ms`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := convertInput(args, fromClipboard)
			if err != nil {
				return err
			}
			loc, err := a.config.Location()
			if err != nil {
				return err
			}

			if role != "" {
				r, err := timeval.ParseRole(role)
				if err != nil {
					return err
				}
				v, err := timeval.Ingest(r, text, loc)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())
				return err
			}

			format = a.outputFormat(format)
			if !window.IsFormat(format) {
				return fmt.Errorf("%w: %q", window.ErrUnknownFormat, format)
			}
			w, err := pastedWindow(text)
			if err != nil {
				return err
			}
			w = w.In(loc)

			if err := printWindow(cmd.OutOrStdout(), w, format); err != nil {
				return err
			}
			return a.record(cmd, w, history.SourceConvert)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Print only this boundary's clock (start or end)")
	cmd.Flags().BoolVarP(&fromClipboard, "clipboard", "c", false, "Read the timestamp from the system clipboard")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (rfc3339, unix, unix_ms, unix_micro)")

	return cmd
}

func convertInput(args []string, fromClipboard bool) (string, error) {
	switch {
	case fromClipboard && len(args) > 0:
		return "", errors.New("pass a timestamp or --clipboard, not both")
	case fromClipboard:
		text, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		return text, nil
	case len(args) == 0:
		return "", errors.New("a timestamp argument or --clipboard is required")
	default:
		return args[0], nil
	}
}

// pastedWindow returns the instants both boundaries take for pasted text.
func pastedWindow(text string) (window.Window, error) {
	start, err := timeval.IngestInstant(timeval.Start, text)
	if err != nil {
		return window.Window{}, err
	}
	end, err := timeval.IngestInstant(timeval.End, text)
	if err != nil {
		return window.Window{}, err
	}
	return window.Window{Start: start, End: end}, nil
}
