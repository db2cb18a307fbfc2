// File: cmd/root.go

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-efiboot/internal/bootmgr"
)

// Global flags, bound over viper so EFIBOOT_* environment variables
// and the config file can set them too.
var (
	verbose    bool
	typeName   string
	efivarsDir string
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "efiboot",
	Short: "Manage EFI boot entries and boot order",
	Long: `efiboot inspects and edits the firmware's load option variables:
the numbered Boot/Driver/SysPrep entries, their order variables, and
the device paths inside them. It also converts device paths between
their binary and text forms.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initConfig()
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		log.SetOutput(os.Stderr)
		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&typeName, "type", "t", "boot", "load option type (boot, driver, sysprep)")
	rootCmd.PersistentFlags().StringVar(&efivarsDir, "efivars", "", "efivarfs mount point override")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("type", rootCmd.PersistentFlags().Lookup("type"))
	viper.BindPFlag("efivars.path", rootCmd.PersistentFlags().Lookup("efivars"))

	rootCmd.AddCommand(
		showCmd,
		addCmd,
		modCmd,
		delCmd,
		orderCmd,
		devpathCmd,
		dumpCmd,
	)
}

// optionType resolves the configured load option family.
func optionType() (bootmgr.Type, error) {
	return bootmgr.ParseType(viper.GetString("type"))
}

// newManager builds a manager over the platform's variable store.
func newManager() (*bootmgr.Manager, error) {
	store, err := newStore(log)
	if err != nil {
		return nil, err
	}
	return bootmgr.NewManager(store, log), nil
}
