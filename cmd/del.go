// File: cmd/del.go

package cmd

import (
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del <id>",
	Short: "Delete a boot entry",
	Long: `Del removes the entry's index from the order variable, rewrites the
order, and then deletes the entry variable itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runDel,
}

func runDel(cmd *cobra.Command, args []string) error {
	t, err := optionType()
	if err != nil {
		return err
	}
	mgr, err := newManager()
	if err != nil {
		return err
	}
	order, err := mgr.Order(t)
	if err != nil {
		return err
	}
	index, err := parseID(t, order, args[0])
	if err != nil {
		return err
	}
	e, err := mgr.Load(t, index)
	if err != nil {
		return err
	}

	if trimmed := removeIndex(order, index); len(trimmed) != len(order) {
		if err := mgr.SetOrder(t, trimmed); err != nil {
			return err
		}
	}
	return mgr.Delete(e)
}
