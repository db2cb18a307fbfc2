// File: cmd/store_windows.go

//go:build windows

package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-efiboot/internal/efivars"
)

func newStore(log *logrus.Logger) (efivars.Store, error) {
	return efivars.NewWinStore(log)
}
