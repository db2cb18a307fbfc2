// File: internal/types/devicepath.go
package types

// Device path node type values.
// See UEFI specification 2.10, section 10.3.1.
const (
	TypeHardware  uint8 = 0x01
	TypeACPI      uint8 = 0x02
	TypeMessaging uint8 = 0x03
	TypeMedia     uint8 = 0x04
	TypeBBS       uint8 = 0x05
	TypeEnd       uint8 = 0x7F
)

// Hardware device path subtypes.
const (
	HardwareSubTypePCI uint8 = 0x01
)

// ACPI device path subtypes.
const (
	ACPISubTypeHID      uint8 = 0x01
	ACPISubTypeExpanded uint8 = 0x02
)

// Messaging device path subtypes.
const (
	MessagingSubTypeATAPI uint8 = 0x01
	MessagingSubTypeUSB   uint8 = 0x05
	MessagingSubTypeMAC   uint8 = 0x0B
	MessagingSubTypeIPv4  uint8 = 0x0C
	MessagingSubTypeIPv6  uint8 = 0x0D
	MessagingSubTypeSATA  uint8 = 0x12
	MessagingSubTypeNVMe  uint8 = 0x17
	MessagingSubTypeURI   uint8 = 0x18
)

// Media device path subtypes.
const (
	MediaSubTypeHardDrive uint8 = 0x01
	MediaSubTypeCDROM     uint8 = 0x02
	MediaSubTypeVendor    uint8 = 0x03
	MediaSubTypeFilePath  uint8 = 0x04
	MediaSubTypeFvFile    uint8 = 0x06
	MediaSubTypeFv        uint8 = 0x07
)

// BIOS Boot Specification subtypes.
const (
	BBSSubTypeBBS101 uint8 = 0x01
)

// End device path subtypes. EndSubTypeEntire terminates the whole
// device path; EndSubTypeInstance separates path instances within one
// multi-instance path.
const (
	EndSubTypeInstance uint8 = 0x01
	EndSubTypeEntire   uint8 = 0xFF
)

// NodeHeaderLen is the size of the generic node header: one type byte,
// one subtype byte and a 16-bit little-endian total node length that
// includes the header itself.
const NodeHeaderLen = 4

// EndNodeLen is the size of an End node (header only, no payload).
const EndNodeLen = NodeHeaderLen

// Hard drive partition signature types.
const (
	SignatureTypeNone uint8 = 0x00
	SignatureTypeMBR  uint8 = 0x01
	SignatureTypeGUID uint8 = 0x02
)

// Hard drive partition format values.
const (
	PartitionFormatMBR uint8 = 0x01
	PartitionFormatGPT uint8 = 0x02
)

// EISAPnPID converts a PNP hardware identifier to its compressed EISA
// encoding as used in ACPI _HID device path nodes.
func EISAPnPID(num uint16) uint32 {
	return uint32(num)<<16 | 0x41D0
}

// PNPIDPCIRoot is the EISA-encoded _HID of a PCI root bridge (PNP0A03).
var PNPIDPCIRoot = EISAPnPID(0x0A03)
