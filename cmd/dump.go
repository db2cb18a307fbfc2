// File: cmd/dump.go

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <name>",
	Short: "Hex dump a raw EFI variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(log)
		if err != nil {
			return err
		}
		data, err := store.Read(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), hex.Dump(data))
		return nil
	},
}
