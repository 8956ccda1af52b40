package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/history"
	"github.com/javiermolinar/logspan/internal/tui/view"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// narrowWidth is the terminal width below which the table drops its
// secondary columns.
const narrowWidth = 90

func (a *App) historyCmd() *cobra.Command {
	var (
		limit   int
		format  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently picked windows",
		Long: `List the most recent windows confirmed in the picker or produced by
convert, newest first.

With --format the windows are printed one per line as "<start> <end>"
instead of a table.`,
		Example: `  logspan history
  logspan history --limit 5 --format unix_ms`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			repo, err := a.history()
			if err != nil {
				return err
			}
			entries, err := repo.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			loc, err := a.config.Location()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "" {
				for _, e := range entries {
					if err := printWindow(out, e.Window().In(loc), format); err != nil {
						return err
					}
				}
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No windows recorded yet.")
				return nil
			}

			fmt.Fprintln(out, formatHeader(fmt.Sprintf("Last %d windows", len(entries))))
			fmt.Fprintln(out, renderHistory(entries, loc, a.now(), stdoutWidth()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of windows to show")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Print windows in this format instead of a table")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// renderHistory renders entries as a table. A width below narrowWidth drops
// the source and age columns; zero means unknown.
func renderHistory(entries []*history.Entry, loc *time.Location, now time.Time, width int) string {
	narrow := width > 0 && width < narrowWidth

	headers := []string{"#", "START", "END", "SPAN"}
	if !narrow {
		headers = append(headers, "SOURCE", "SAVED")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		w := e.Window()
		row := []string{
			strconv.FormatInt(e.ID, 10),
			w.Start.In(loc).Format(historyTimeLayout),
			w.End.In(loc).Format(historyTimeLayout),
			view.FormatDuration(w.Duration()),
		}
		if !narrow {
			row = append(row, string(e.Source), humanize.RelTime(e.CreatedAt, now, "ago", "from now"))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	startStyle := cellStyle.Foreground(lipgloss.Color("6"))
	endStyle := cellStyle.Foreground(lipgloss.Color("2"))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Faint(true)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return startStyle
			case col == 2:
				return endStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

// printHistoryLine echoes a recorded entry.
func printHistoryLine(out io.Writer, e *history.Entry, loc *time.Location) {
	w := e.Window()
	fmt.Fprintf(out, "%s #%d %s → %s\n",
		formatMuted("saved"),
		e.ID,
		formatStart(w.Start.In(loc).Format(historyTimeLayout)),
		formatEnd(w.End.In(loc).Format(historyTimeLayout)),
	)
}
