/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show measured output and the supply's state",
	Long: `Query the supply and print measured voltage and current, the
programmed set points, and the output, mode, beep and lock state.

Examples:
  ka3005p status
  ka3005p status --output json
  ka3005p --set-points=false status --output yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("output")
		plain, _ := cmd.Flags().GetBool("plain")

		exitOnError(withDevice(func(dev *ka3005p.Device) error {
			status, err := dev.Status()
			if err != nil {
				return err
			}
			return writeStatus(os.Stdout, status, format, plain)
		}))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml")
	statusCmd.Flags().Bool("plain", false, "Unstyled text output")
}

func writeStatus(w io.Writer, status ka3005p.Status, format string, plain bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		if plain {
			_, err := fmt.Fprintln(w, status.String())
			return err
		}
		_, err := fmt.Fprintln(w, styledStatus(status))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(status); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func styledStatus(status ka3005p.Status) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, styles.LabelStyle.Width(10).Render(label), value)
	}

	lines := []string{
		row("Voltage", styles.VoltageStyle.Render(fmt.Sprintf("%.2f V", status.Voltage))),
		row("Current", styles.CurrentStyle.Render(fmt.Sprintf("%.3f A", status.Current))),
	}
	if sp := status.SetPoints; sp != nil {
		lines = append(lines, row("Set", styles.SetPointStyle.Render(fmt.Sprintf("%.2f V / %.3f A", sp.Voltage, sp.Current))))
	}
	lines = append(lines,
		row("Output", styles.SwitchStyle(status.Flags.Output()).Render(status.Flags.Output().String())),
		row("Mode", styles.ModeStyle(status.Flags.Channel1()).Render(status.Flags.Channel1().String())),
		row("Beep", status.Flags.Beep().String()),
		row("Lock", status.Flags.Lock().String()),
	)
	return strings.Join(lines, "\n")
}
