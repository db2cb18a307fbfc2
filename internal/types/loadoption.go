// File: internal/types/loadoption.go
package types

// EFI_LOAD_OPTION attribute bits.
// See UEFI specification 2.10, section 3.1.3.
const (
	LoadOptionActive         uint32 = 0x00000001
	LoadOptionForceReconnect uint32 = 0x00000002
	LoadOptionHidden         uint32 = 0x00000008
	LoadOptionCategoryMask   uint32 = 0x00001F00
	LoadOptionCategoryBoot   uint32 = 0x00000000
	LoadOptionCategoryApp    uint32 = 0x00000100
)

// LoadOptionHeaderLen is the fixed prefix of an encoded load option:
// a 4-byte attribute word followed by the 2-byte FilePathListLength.
const LoadOptionHeaderLen = 6
