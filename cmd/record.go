/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/recorder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Sample the supply into a SQLite database",
	Long: `Poll the supply on an interval and append every reading to the
samples table of a SQLite database. Read failures are logged and polling
continues; stop with Ctrl+C or --count.

Examples:
  ka3005p record
  ka3005p record --database run1.db --interval 100ms --count 600
  ka3005p history --database run1.db`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		exitOnError(runRecord(
			viper.GetString("record.database"),
			viper.GetDuration("record.interval"),
			viper.GetInt("record.count"),
			quiet,
		))
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	flags := recordCmd.Flags()
	flags.String("database", "ka3005p.db", "SQLite database file")
	flags.Duration("interval", time.Second, "Sampling interval")
	flags.Int("count", 0, "Stop after this many samples (0 = until interrupted)")
	flags.BoolP("quiet", "q", false, "Do not print samples")

	for _, name := range []string{"database", "interval", "count"} {
		viper.BindPFlag("record."+name, flags.Lookup(name))
	}
}

func runRecord(database string, interval time.Duration, count int, quiet bool) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	store, err := recorder.Open(database)
	if err != nil {
		return err
	}
	defer store.Close()

	log := newLogger()
	dev, path, err := openDeviceWith(log)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx, cancel := signalContext()
	defer cancel()

	var onSample func(ka3005p.Status)
	if !quiet {
		onSample = func(s ka3005p.Status) {
			fmt.Printf("%s  %s\n", time.Now().Format("15:04:05.000"), sampleLine(s))
		}
	}

	fmt.Fprintf(os.Stderr, "Recording %s into %s every %s\n", path, database, interval)
	stored, err := recorder.New(store, dev, path, interval, log).Run(ctx, count, onSample)
	fmt.Fprintf(os.Stderr, "Stored %d sample(s)\n", stored)
	return err
}

func sampleLine(s ka3005p.Status) string {
	return fmt.Sprintf("%6.2f V  %6.3f A  %s  %s", s.Voltage, s.Current, s.Flags.Channel1(), s.Flags.Output())
}
