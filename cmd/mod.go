// File: cmd/mod.go

package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

var modFlags struct {
	description string
	paths       []string
	attributes  uint32
	data        string
	active      bool
	inactive    bool
	position    int
	force       bool
}

var modCmd = &cobra.Command{
	Use:   "mod <id>",
	Short: "Modify an existing boot entry",
	Long: `Mod changes fields of one load option. Only the fields named by
flags are touched; the variable is rewritten only when something
actually changed. --position additionally moves the entry within the
order list.`,
	Args: cobra.ExactArgs(1),
	RunE: runMod,
}

func init() {
	modCmd.Flags().StringVarP(&modFlags.description, "description", "d", "", "new description")
	modCmd.Flags().StringArrayVarP(&modFlags.paths, "path", "p", nil, "replacement device path in text form (repeatable)")
	modCmd.Flags().Uint32VarP(&modFlags.attributes, "attributes", "a", 0, "new raw attributes value")
	modCmd.Flags().StringVarP(&modFlags.data, "data", "x", "", "new optional data, base64 encoded (empty string clears)")
	modCmd.Flags().BoolVar(&modFlags.active, "active", false, "set the active attribute")
	modCmd.Flags().BoolVar(&modFlags.inactive, "inactive", false, "clear the active attribute")
	modCmd.Flags().IntVarP(&modFlags.position, "position", "o", 0, "move the entry to this position in the order (negative counts from the end)")
	modCmd.Flags().BoolVar(&modFlags.force, "force", false, "accept implausible device paths")
	modCmd.MarkFlagsMutuallyExclusive("active", "inactive")
	modCmd.MarkFlagsMutuallyExclusive("attributes", "active")
	modCmd.MarkFlagsMutuallyExclusive("attributes", "inactive")
}

func runMod(cmd *cobra.Command, args []string) error {
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

	if cmd.Flags().Changed("description") {
		if err := e.SetDescription(modFlags.description); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("path") {
		paths := make([][]byte, 0, len(modFlags.paths))
		for _, text := range modFlags.paths {
			path, err := parsePathText(text, modFlags.force)
			if err != nil {
				return err
			}
			paths = append(paths, path)
		}
		if err := e.SetPaths(paths); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("attributes") {
		e.SetAttributes(modFlags.attributes)
	}
	if modFlags.active {
		e.SetActive(true)
	}
	if modFlags.inactive {
		e.SetActive(false)
	}
	if cmd.Flags().Changed("data") {
		data, err := base64.StdEncoding.DecodeString(modFlags.data)
		if err != nil {
			return fmt.Errorf("decoding optional data: %w", err)
		}
		e.SetOptionalData(data)
	}

	if err := mgr.Save(e); err != nil {
		return err
	}
	if cmd.Flags().Changed("position") {
		return mgr.SetOrder(t, moveIndex(order, index, modFlags.position))
	}
	return nil
}
