/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/allbin/go-ka3005p"
	"github.com/spf13/cobra"
)

// identifyCmd represents the identify command
var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Print the supply's model, firmware and serial number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(withDevice(func(dev *ka3005p.Device) error {
			identity, err := dev.Identify()
			if err != nil {
				return err
			}
			fmt.Println(identity)
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}
