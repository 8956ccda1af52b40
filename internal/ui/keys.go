package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/tui"
)

func (a *App) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the picker key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := renderMarkdown(tui.KeyReference(), stdoutWidth())
			if err != nil {
				return fmt.Errorf("rendering key reference: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
