// File: cmd/store_linux.go

//go:build linux

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	vfs "github.com/twpayne/go-vfs"

	"github.com/deploymenttheory/go-efiboot/internal/efivars"
)

func newStore(log *logrus.Logger) (efivars.Store, error) {
	return efivars.NewEfivarfs(vfs.OSFS, viper.GetString("efivars.path"), log), nil
}
