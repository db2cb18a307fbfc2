// File: cmd/devpath.go

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-efiboot/internal/devicepath"
)

var devpathFlags struct {
	toText      bool
	displayOnly bool
	shortcuts   bool
	force       bool
}

var devpathCmd = &cobra.Command{
	Use:   "devpath [text...]",
	Short: "Convert device paths between text and binary",
	Long: `Devpath converts textual device path arguments to binary on stdout.
With --text it reads a binary device path from stdin instead and
prints its text form. --displayonly and --shortcuts pick the shorter
text variants for nodes that have them.`,
	RunE: runDevpath,
}

func init() {
	devpathCmd.Flags().BoolVar(&devpathFlags.toText, "text", false, "convert binary on stdin to text")
	devpathCmd.Flags().BoolVar(&devpathFlags.displayOnly, "displayonly", false, "use display-only text forms")
	devpathCmd.Flags().BoolVar(&devpathFlags.shortcuts, "shortcuts", false, "use shortcut text forms")
	devpathCmd.Flags().BoolVar(&devpathFlags.force, "force", false, "accept implausible device paths")
}

func runDevpath(cmd *cobra.Command, args []string) error {
	if devpathFlags.toText {
		if len(args) != 0 {
			return fmt.Errorf("--text reads from stdin and takes no arguments")
		}
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text, err := devicepath.ToText(raw, devpathFlags.displayOnly, devpathFlags.shortcuts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no device path given")
	}
	path, err := parsePathText(strings.Join(args, "/"), devpathFlags.force)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(path)
	return err
}
