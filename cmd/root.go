/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ka3005p",
	Short: "Control a KORAD KA3005P bench power supply",
	Long: `Control a KORAD KA3005P (or compatible) bench power supply over USB.

The supply is discovered automatically when exactly one is attached. Use
--device to pick a port when several are connected.

Examples:
  ka3005p status
  ka3005p voltage 12 && ka3005p current 0.5 && ka3005p power on
  ka3005p --device /dev/ttyACM1 status --output json
  ka3005p watch

Settings can also come from $HOME/.ka3005p.yaml or KA3005P_* environment
variables, e.g. KA3005P_DEVICE=/dev/ttyACM0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ka3005p.yaml)")
	flags.StringP("device", "d", "", "serial port of the supply (default: auto-detect)")
	flags.Duration("timeout", defaultReadTimeout, "quiet time that ends a reply")
	flags.Bool("set-points", true, "also read the programmed set points in status queries")
	flags.BoolP("verbose", "v", false, "log every exchange to stderr")
	flags.String("log-level", "error", "log level: error, info, debug")

	for _, name := range []string{"device", "timeout", "set-points", "verbose", "log-level"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ka3005p")
	}

	viper.SetEnvPrefix("KA3005P")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		newLogger().Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}
