/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/components"
	"github.com/allbin/go-ka3005p/internal/tui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of the supply's readings",
	Long: `Open a full-screen dashboard that polls the supply and shows measured
voltage and current, set points, regulation mode and switch states, with a
rolling history of samples.

Keys:
  o       toggle output          b       toggle beep
  v / V   OVP on / off           c / C   OCP on / off
  r       refresh now            x       clear the event log
  i or :  command prompt (e.g. "voltage 5", "raw VOUT1?")
  ?       help                   q       quit

Examples:
  ka3005p watch
  ka3005p watch --interval 250ms`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		interval, _ := cmd.Flags().GetDuration("interval")
		exitOnError(runWatch(interval))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("interval", 500*time.Millisecond, "Polling interval")
}

func runWatch(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	// stderr belongs to the dashboard; failures show in its status bar
	dev, err := openShared(newLoggerTo(io.Discard, levelError))
	if err != nil {
		return err
	}
	defer dev.Close()

	info := &components.ConnectionInfo{
		Line:     fmt.Sprintf("%d %dN%d", ka3005p.BaudRate, ka3005p.DataBits, ka3005p.StopBits),
		Interval: interval,
	}
	if identity, err := dev.Identify(); err == nil {
		info.Identity = identity
	}

	m := models.NewWatchModel(dev, dev.Path(), interval, info)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
