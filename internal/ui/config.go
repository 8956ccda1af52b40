package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/config"
	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/tui/theme"
	"github.com/javiermolinar/logspan/internal/window"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  logspan config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Picker.Timezone = promptValue(reader, out, "Timezone (IANA name or Local)", cfg.Picker.Timezone)
	cfg.Picker.SameDay = promptChoice(reader, out, "Same-day rule", cfg.Picker.SameDay,
		[]string{dateutil.MatchDate, dateutil.MatchDayMonth})
	cfg.Picker.StartDay = promptValue(reader, out, "Start day", cfg.Picker.StartDay)
	cfg.Picker.EndDay = promptValue(reader, out, "End day", cfg.Picker.EndDay)
	cfg.Picker.StartTime = promptValue(reader, out, "Start time", cfg.Picker.StartTime)
	cfg.Picker.EndTime = promptValue(reader, out, "End time", cfg.Picker.EndTime)
	cfg.Output.Format = promptChoice(reader, out, "Output format", cfg.Output.Format, window.Formats())
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Storage.History = promptBool(reader, out, "Record history", cfg.Storage.History)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available())

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[picker]")
	fmt.Fprintf(out, "  timezone   = %s\n", cfg.Picker.Timezone)
	fmt.Fprintf(out, "  same_day   = %s\n", cfg.Picker.SameDay)
	fmt.Fprintf(out, "  start_day  = %s\n", cfg.Picker.StartDay)
	fmt.Fprintf(out, "  end_day    = %s\n", cfg.Picker.EndDay)
	fmt.Fprintf(out, "  start_time = %s\n", cfg.Picker.StartTime)
	fmt.Fprintf(out, "  end_time   = %s\n", cfg.Picker.EndTime)
	fmt.Fprintln(out, "\n[output]")
	fmt.Fprintf(out, "  format     = %s\n", cfg.Output.Format)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path    = %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(out, "  history    = %t\n", cfg.Storage.History)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme      = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q.\n", value)
	}
}

// promptChoice asks until one of options is given. It gives up and keeps
// current once input runs out.
func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string) string {
	list := strings.Join(options, ", ")
	prompt := fmt.Sprintf("%s (%s)", label, list)
	for {
		value := strings.ToLower(promptValue(reader, out, prompt, current))
		for _, o := range options {
			if value == o {
				return value
			}
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, list)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
