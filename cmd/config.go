// File: cmd/config.go

package cmd

import (
	"strings"

	"github.com/spf13/viper"
)

// initConfig wires viper: EFIBOOT_* environment variables and an
// optional config file, with flag values taking precedence through
// the bindings in root.go.
func initConfig() {
	viper.SetEnvPrefix("EFIBOOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("type", "boot")
	viper.SetDefault("verbose", false)
	viper.SetDefault("efivars.path", "")

	viper.SetConfigName("efiboot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/efiboot")
	viper.AddConfigPath("$HOME/.config/efiboot")
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config file")
	}
}
