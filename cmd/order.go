// File: cmd/order.go

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order [index...]",
	Short: "Show or rewrite the boot order",
	Long: `Order prints the raw order variable as hex indexes. With arguments it
replaces the order with the given indexes (hex, with or without an 0x
prefix). An empty order is written as a zero-length variable.`,
	RunE: runOrder,
}

func runOrder(cmd *cobra.Command, args []string) error {
	t, err := optionType()
	if err != nil {
		return err
	}
	mgr, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		order, err := mgr.Order(t)
		if err != nil {
			return err
		}
		texts := make([]string, len(order))
		for i, index := range order {
			texts[i] = fmt.Sprintf("%04X", index)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, ","))
		return nil
	}

	order := make([]uint16, len(args))
	for i, arg := range args {
		index, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 16)
		if err != nil {
			return fmt.Errorf("bad index %q", arg)
		}
		if !mgr.Exists(t, int(index)) {
			return fmt.Errorf("no %s variable exists", t.VarName(int(index)))
		}
		order[i] = uint16(index)
	}
	return mgr.SetOrder(t, order)
}
