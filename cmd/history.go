/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/allbin/go-ka3005p/internal/recorder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show samples stored by record",
	Long: `Print the most recent samples stored by "ka3005p record", newest
first. Samples from every port are shown unless --device names one; the
supply does not need to be connected.

Examples:
  ka3005p history
  ka3005p history --limit 50 --database run1.db
  ka3005p history --device /dev/ttyACM1 --json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		database := viper.GetString("record.database")
		if cmd.Flags().Changed("database") {
			database, _ = cmd.Flags().GetString("database")
		}

		// no discovery: the supply is often unplugged when looking back
		port := viper.GetString("device")
		exitOnError(runHistory(os.Stdout, database, port, limit, asJSON))
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("database", "ka3005p.db", "SQLite database file written by record")
	historyCmd.Flags().IntP("limit", "n", 20, "Number of samples to show (0 = all)")
	historyCmd.Flags().Bool("json", false, "Print samples as JSON")
}

func runHistory(w io.Writer, database, port string, limit int, asJSON bool) error {
	if _, err := os.Stat(database); err != nil {
		return fmt.Errorf("no recorded samples: %w", err)
	}
	store, err := recorder.Open(database)
	if err != nil {
		return err
	}
	defer store.Close()

	samples, err := store.Latest(context.Background(), port, limit)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	}
	if len(samples) == 0 {
		if port == "" {
			fmt.Fprintln(w, "No samples recorded")
		} else {
			fmt.Fprintf(w, "No samples recorded for %s\n", port)
		}
		return nil
	}
	fmt.Fprintln(w, historyTable(samples))
	return nil
}

func historyTable(samples []recorder.Sample) string {
	columns := []column{
		{key: "time", title: "Time", width: 23},
		{key: "port", title: "Port", width: 14},
		{key: "voltage", title: "Voltage", width: 9},
		{key: "current", title: "Current", width: 9},
		{key: "set", title: "Set", width: 17},
		{key: "mode", title: "Mode", width: 5},
		{key: "output", title: "Output", width: 7},
	}

	rows := make([]map[string]interface{}, 0, len(samples))
	for _, s := range samples {
		set := "-"
		if sp := s.Status.SetPoints; sp != nil {
			set = fmt.Sprintf("%.2f V %.3f A", sp.Voltage, sp.Current)
		}
		rows = append(rows, map[string]interface{}{
			"time":    s.Timestamp.Format("2006-01-02 15:04:05.000"),
			"port":    s.Port,
			"voltage": fmt.Sprintf("%.2f V", s.Status.Voltage),
			"current": fmt.Sprintf("%.3f A", s.Status.Current),
			"set":     set,
			"mode":    s.Status.Flags.Channel1().String(),
			"output":  s.Status.Flags.Output().String(),
		})
	}
	return renderStaticTable(columns, rows)
}
