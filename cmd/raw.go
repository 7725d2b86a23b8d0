/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allbin/go-ka3005p"
	"github.com/spf13/cobra"
)

// rawCmd represents the raw command
var rawCmd = &cobra.Command{
	Use:   "raw <request>",
	Short: "Send a raw request and print the reply",
	Long: `Send a request verbatim, without a terminator, and print whatever the
supply answers before the read timeout expires.

Setters produce no reply; queries do.

Examples:
  ka3005p raw '*IDN?'
  ka3005p raw VOUT1?
  ka3005p raw STATUS? --hex`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asHex, _ := cmd.Flags().GetBool("hex")
		request := strings.Join(args, " ")

		exitOnError(withDevice(func(dev *ka3005p.Device) error {
			reply, err := dev.Exchange(request)
			if err != nil {
				return err
			}
			writeReply(os.Stdout, reply, asHex)
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(rawCmd)

	rawCmd.Flags().BoolP("hex", "x", false, "Print the reply as a hex dump")
}

func writeReply(w io.Writer, reply []byte, asHex bool) {
	if len(reply) == 0 {
		fmt.Fprintln(w, "(no reply)")
		return
	}
	if asHex {
		fmt.Fprint(w, hex.Dump(reply))
		return
	}
	fmt.Fprintf(w, "%q\n", reply)
}

