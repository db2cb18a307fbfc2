// File: cmd/show.go

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-efiboot/internal/bootmgr"
)

type showFields struct {
	position    bool
	name        bool
	attributes  bool
	description bool
	path        bool
	allPaths    bool
	data        bool
}

var showFlags showFields

var showCmd = &cobra.Command{
	Use:   "show [id...]",
	Short: "Show boot entries",
	Long: `Show lists load option entries. Without arguments every entry in the
order variable is shown. Arguments select entries by variable name
("Boot0001") or by order position (negative counts from the end).

Field flags limit the output to the named fields; with no field flags
all fields are printed.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showFlags.position, "position", "o", false, "show the order position")
	showCmd.Flags().BoolVarP(&showFlags.name, "name", "n", false, "show the variable name")
	showCmd.Flags().BoolVarP(&showFlags.attributes, "attributes", "a", false, "show the attributes")
	showCmd.Flags().BoolVarP(&showFlags.description, "description", "d", false, "show the description")
	showCmd.Flags().BoolVarP(&showFlags.path, "path", "p", false, "show the first device path")
	showCmd.Flags().BoolVarP(&showFlags.allPaths, "paths", "P", false, "show every device path")
	showCmd.Flags().BoolVarP(&showFlags.data, "data", "x", false, "show the optional data as hex")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	var entries []*bootmgr.Entry
	if len(args) == 0 {
		entries, err = mgr.LoadAll(t)
		if err != nil {
			return err
		}
	} else {
		for _, id := range args {
			index, err := parseID(t, order, id)
			if err != nil {
				return err
			}
			e, err := mgr.Load(t, index)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
	}

	f := showFlags
	if !f.position && !f.name && !f.attributes && !f.description && !f.path && !f.allPaths && !f.data {
		f.position, f.name, f.attributes, f.description, f.path, f.data = true, true, true, true, true, true
	}
	for _, e := range entries {
		line, err := formatEntry(e, order, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func formatEntry(e *bootmgr.Entry, order []uint16, f showFields) (string, error) {
	var fields []string
	if f.position {
		if pos := orderPosition(order, e.Index()); pos >= 0 {
			fields = append(fields, fmt.Sprintf("%d", pos))
		} else {
			fields = append(fields, "-")
		}
	}
	if f.name {
		fields = append(fields, e.VarName())
	}
	if f.attributes {
		fields = append(fields, fmt.Sprintf("0x%08X", e.Attributes()))
	}
	if f.description {
		fields = append(fields, e.Description())
	}
	switch {
	case f.allPaths:
		for i := 0; i < e.PathCount(); i++ {
			text, err := e.PathText(i)
			if err != nil {
				return "", err
			}
			fields = append(fields, text)
		}
	case f.path:
		text, err := e.PathText(0)
		if err != nil {
			return "", err
		}
		fields = append(fields, text)
	}
	if f.data && len(e.OptionalData()) > 0 {
		fields = append(fields, hex.EncodeToString(e.OptionalData()))
	}
	return strings.Join(fields, " "), nil
}
