// File: cmd/add.go

package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-efiboot/internal/bootmgr"
	"github.com/deploymenttheory/go-efiboot/internal/devicepath"
)

var addFlags struct {
	description string
	paths       []string
	attributes  uint32
	data        string
	position    int
	quiet       bool
	force       bool
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new boot entry",
	Long: `Add creates a load option variable at the lowest free index and
inserts it into the order variable, at the front unless --position
says otherwise. Device paths are given in text form.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.description, "description", "d", "", "entry description")
	addCmd.Flags().StringArrayVarP(&addFlags.paths, "path", "p", nil, "device path in text form (repeatable)")
	addCmd.Flags().Uint32VarP(&addFlags.attributes, "attributes", "a", 0, "raw attributes value (default: active)")
	addCmd.Flags().StringVarP(&addFlags.data, "data", "x", "", "optional data, base64 encoded")
	addCmd.Flags().IntVarP(&addFlags.position, "position", "o", 0, "order position for the new entry")
	addCmd.Flags().BoolVarP(&addFlags.quiet, "quiet", "q", false, "do not print the new variable name")
	addCmd.Flags().BoolVar(&addFlags.force, "force", false, "accept implausible device paths")
	addCmd.MarkFlagRequired("description")
	addCmd.MarkFlagRequired("path")
}

func runAdd(cmd *cobra.Command, args []string) error {
	t, err := optionType()
	if err != nil {
		return err
	}
	mgr, err := newManager()
	if err != nil {
		return err
	}

	paths := make([][]byte, 0, len(addFlags.paths))
	for _, text := range addFlags.paths {
		path, err := parsePathText(text, addFlags.force)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	var data []byte
	if addFlags.data != "" {
		data, err = base64.StdEncoding.DecodeString(addFlags.data)
		if err != nil {
			return fmt.Errorf("decoding optional data: %w", err)
		}
	}

	e, err := bootmgr.NewEntry(t, addFlags.description, paths, data)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("attributes") {
		e.SetAttributes(addFlags.attributes)
	}
	if err := mgr.Save(e); err != nil {
		return err
	}

	order, err := mgr.Order(t)
	if err != nil {
		return err
	}
	order = insertIndex(order, addFlags.position, e.Index())
	if err := mgr.SetOrder(t, order); err != nil {
		return err
	}

	if !addFlags.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), e.VarName())
	}
	return nil
}

// parsePathText converts a textual device path, rejecting implausible
// ones unless forced. An implausible path is one whose trailing file
// path component looks like a mistyped node expression.
func parsePathText(text string, force bool) ([]byte, error) {
	path, err := devicepath.FromText(text)
	if err != nil {
		return nil, err
	}
	if !devicepath.Plausible(path) {
		if !force {
			return nil, fmt.Errorf("device path %q looks like a mistyped node name (use --force to keep it)", text)
		}
		log.WithField("path", text).Warn("keeping implausible device path")
	}
	return path, nil
}
