// File: internal/efivars/efivars_windows.go

//go:build windows

package efivars

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/deploymenttheory/go-efiboot/internal/types"
)

var (
	kernel32                           = windows.NewLazySystemDLL("kernel32.dll")
	procGetFirmwareEnvironmentVariable = kernel32.NewProc("GetFirmwareEnvironmentVariableW")
	procSetFirmwareEnvironmentVariable = kernel32.NewProc("SetFirmwareEnvironmentVariableW")
)

// WinStore is the Windows Store backend. It calls the firmware
// environment variable APIs in kernel32, which require the
// SeSystemEnvironmentPrivilege; the privilege is enabled on the
// process token when the store is created.
type WinStore struct {
	guid string
	log  *logrus.Logger
}

// NewWinStore creates a firmware variable store for the EFI global
// vendor namespace.
func NewWinStore(log *logrus.Logger) (*WinStore, error) {
	if log == nil {
		log = logrus.New()
	}
	if err := enableEnvironmentPrivilege(); err != nil {
		return nil, fmt.Errorf("enabling SeSystemEnvironmentPrivilege: %w", err)
	}
	guid := "{" + types.EFIGlobalVariable.String() + "}"
	return &WinStore{guid: guid, log: log}, nil
}

const maxVariableSize = 32 * 1024

// Read returns the variable's payload.
func (s *WinStore) Read(name string) ([]byte, error) {
	nameW, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	guidW, err := windows.UTF16PtrFromString(s.guid)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, maxVariableSize)
	n, _, callErr := procGetFirmwareEnvironmentVariable.Call(
		uintptr(unsafe.Pointer(nameW)),
		uintptr(unsafe.Pointer(guidW)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		if callErr == windows.ERROR_ENVVAR_NOT_FOUND {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", name, callErr)
	}
	return buf[:n], nil
}

// Write stores data under name.
func (s *WinStore) Write(name string, data []byte) error {
	s.log.WithFields(logrus.Fields{"variable": name, "bytes": len(data)}).Debug("writing EFI variable")
	return s.set(name, data)
}

// Delete removes the variable. Firmware treats a zero-length write
// as deletion.
func (s *WinStore) Delete(name string) error {
	if !s.Exists(name) {
		return ErrNotFound
	}
	s.log.WithField("variable", name).Debug("deleting EFI variable")
	return s.set(name, nil)
}

// Exists reports whether the variable is present.
func (s *WinStore) Exists(name string) bool {
	_, err := s.Read(name)
	return err == nil
}

func (s *WinStore) set(name string, data []byte) error {
	nameW, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	guidW, err := windows.UTF16PtrFromString(s.guid)
	if err != nil {
		return err
	}
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	ok, _, callErr := procSetFirmwareEnvironmentVariable.Call(
		uintptr(unsafe.Pointer(nameW)),
		uintptr(unsafe.Pointer(guidW)),
		uintptr(p),
		uintptr(len(data)),
	)
	if ok == 0 {
		return fmt.Errorf("writing %s: %w", name, callErr)
	}
	return nil
}

// enableEnvironmentPrivilege turns on SeSystemEnvironmentPrivilege
// for the current process token, which the firmware variable APIs
// require even for administrators.
func enableEnvironmentPrivilege() error {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token)
	if err != nil {
		return err
	}
	defer token.Close()

	privName, err := windows.UTF16PtrFromString("SeSystemEnvironmentPrivilege")
	if err != nil {
		return err
	}
	var luid windows.LUID
	if err := windows.LookupPrivilegeValue(nil, privName, &luid); err != nil {
		return err
	}
	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{{
			Luid:       luid,
			Attributes: windows.SE_PRIVILEGE_ENABLED,
		}},
	}
	if err := windows.AdjustTokenPrivileges(token, false, &tp, 0, nil, nil); err != nil {
		return err
	}
	// AdjustTokenPrivileges succeeds even when the privilege is not
	// held, signalling via the last error instead.
	if windows.GetLastError() == windows.ERROR_NOT_ALL_ASSIGNED {
		return fmt.Errorf("privilege not held by the current token")
	}
	return nil
}
