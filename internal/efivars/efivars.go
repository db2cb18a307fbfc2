// File: internal/efivars/efivars.go

// Package efivars provides access to the platform's persisted EFI
// variables under the global variable vendor GUID. The Store
// interface is the seam between the boot entry manager and the
// platform: efivarfs on Linux, the firmware environment API on
// Windows, and an in-memory store for tests and dry runs.
package efivars

import (
	"errors"
	"strings"

	"github.com/deploymenttheory/go-efiboot/internal/types"
)

// ErrNotFound is returned by Read and Delete when the named variable
// does not exist. Backends translate their platform-specific
// not-found conditions to this sentinel.
var ErrNotFound = errors.New("variable not found")

// Store reads and writes named EFI variables as opaque byte blobs.
// Names are bare variable names ("Boot0001", "BootOrder"); the vendor
// GUID qualification is a backend concern.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Delete(name string) error
	Exists(name string) bool
}

// DefaultAttributes is the attribute word written for boot variables:
// non-volatile, boot-service access, runtime-service access.
const DefaultAttributes uint32 = 0x00000007

// qualifiedName returns the name-GUID form used by efivarfs
// filenames, with the GUID lowercased as the kernel presents it.
func qualifiedName(name string) string {
	return name + "-" + strings.ToLower(types.EFIGlobalVariable.String())
}
