// File: internal/devicepath/nodes.go
package devicepath

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-efiboot/internal/types"
	"github.com/deploymenttheory/go-efiboot/internal/ucs2"
)

// nodeParser converts the arguments of one textual node expression
// into the complete binary node (header included).
type nodeParser func(args []string) ([]byte, error)

// nodeFormatter renders one binary node payload as its complete
// textual token. displayOnly selects the abbreviated per-node form
// where one is defined.
type nodeFormatter func(payload []byte, displayOnly bool) (string, error)

type nodeKey struct {
	typ uint8
	sub uint8
}

// textParsers is the grammar: one entry per recognized node name.
// Names are matched case-insensitively.
var textParsers = map[string]nodeParser{
	"pciroot":  parsePciRoot,
	"acpi":     parseACPI,
	"pci":      parsePci,
	"ata":      parseAta,
	"usb":      parseUsb,
	"mac":      parseMAC,
	"ipv4":     parseIPv4,
	"ipv6":     parseIPv6,
	"sata":     parseSata,
	"nvme":     parseNVMe,
	"uri":      parseUri,
	"hd":       parseHD,
	"cdrom":    parseCDROM,
	"venmedia": parseVenMedia,
	"fv":       parseFv,
	"fvfile":   parseFvFile,
	"bbs":      parseBBS,
	"path":     parseRaw,
}

// nodeFormatters is the inverse registry, keyed by (type, subtype).
// Nodes with no entry fall back to the generic Path(...) rendering.
var nodeFormatters = map[nodeKey]nodeFormatter{
	{types.TypeACPI, types.ACPISubTypeHID}:             formatACPI,
	{types.TypeHardware, types.HardwareSubTypePCI}:     formatPci,
	{types.TypeMessaging, types.MessagingSubTypeATAPI}: formatAta,
	{types.TypeMessaging, types.MessagingSubTypeUSB}:   formatUsb,
	{types.TypeMessaging, types.MessagingSubTypeMAC}:   formatMAC,
	{types.TypeMessaging, types.MessagingSubTypeIPv4}:  formatIPv4,
	{types.TypeMessaging, types.MessagingSubTypeIPv6}:  formatIPv6,
	{types.TypeMessaging, types.MessagingSubTypeSATA}:  formatSata,
	{types.TypeMessaging, types.MessagingSubTypeNVMe}:  formatNVMe,
	{types.TypeMessaging, types.MessagingSubTypeURI}:   formatUri,
	{types.TypeMedia, types.MediaSubTypeHardDrive}:     formatHD,
	{types.TypeMedia, types.MediaSubTypeCDROM}:         formatCDROM,
	{types.TypeMedia, types.MediaSubTypeVendor}:        formatVenMedia,
	{types.TypeMedia, types.MediaSubTypeFv}:            formatFv,
	{types.TypeMedia, types.MediaSubTypeFvFile}:        formatFvFile,
	{types.TypeMedia, types.MediaSubTypeFilePath}:      formatFilePath,
	{types.TypeBBS, types.BBSSubTypeBBS101}:            formatBBS,
}

func lookupParser(name string) (nodeParser, bool) {
	p, ok := textParsers[strings.ToLower(name)]
	return p, ok
}

// argNum parses a numeric argument, accepting 0x-prefixed hex and
// plain decimal (strconv base 0 rules).
func argNum(arg string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(arg), 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: bad numeric argument %q", ErrSyntax, arg)
	}
	return v, nil
}

func argCount(name string, args []string, want ...int) error {
	for _, n := range want {
		if len(args) == n {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: wrong argument count %d", ErrSyntax, name, len(args))
}

func hexNum(v uint64) string {
	return fmt.Sprintf("0x%X", v)
}

// checkPayloadLen rejects payloads the 16-bit node length field
// cannot represent.
func checkPayloadLen(name string, n int) error {
	if n > maxNodePayload {
		return fmt.Errorf("%w: %s: payload of %d bytes exceeds the node length field", ErrSyntax, name, n)
	}
	return nil
}

/*
 * ACPI: PciRoot(uid) and the generic Acpi(hid,uid) form.
 * Payload: HID uint32 (EISA-compressed PNP ID), UID uint32.
 */

func acpiNode(hid uint32, uid uint32) []byte {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], hid)
	binary.LittleEndian.PutUint32(payload[4:8], uid)
	return appendNode(nil, types.TypeACPI, types.ACPISubTypeHID, payload)
}

func parsePciRoot(args []string) ([]byte, error) {
	if err := argCount("PciRoot", args, 1); err != nil {
		return nil, err
	}
	uid, err := argNum(args[0], 32)
	if err != nil {
		return nil, err
	}
	return acpiNode(types.PNPIDPCIRoot, uint32(uid)), nil
}

func parseACPI(args []string) ([]byte, error) {
	if err := argCount("Acpi", args, 2); err != nil {
		return nil, err
	}
	hid, err := argNum(args[0], 32)
	if err != nil {
		return nil, err
	}
	uid, err := argNum(args[1], 32)
	if err != nil {
		return nil, err
	}
	return acpiNode(uint32(hid), uint32(uid)), nil
}

func formatACPI(payload []byte, _ bool) (string, error) {
	if len(payload) != 8 {
		return "", fmt.Errorf("%w: ACPI node payload length %d", ErrMalformed, len(payload))
	}
	hid := binary.LittleEndian.Uint32(payload[0:4])
	uid := binary.LittleEndian.Uint32(payload[4:8])
	if hid == types.PNPIDPCIRoot {
		return fmt.Sprintf("PciRoot(%s)", hexNum(uint64(uid))), nil
	}
	return fmt.Sprintf("Acpi(%s,%s)", hexNum(uint64(hid)), hexNum(uint64(uid))), nil
}

/*
 * Hardware: Pci(device,function).
 * Payload: Function byte, then Device byte (wire order is reversed
 * relative to the textual form).
 */

func parsePci(args []string) ([]byte, error) {
	if err := argCount("Pci", args, 2); err != nil {
		return nil, err
	}
	device, err := argNum(args[0], 8)
	if err != nil {
		return nil, err
	}
	function, err := argNum(args[1], 8)
	if err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeHardware, types.HardwareSubTypePCI,
		[]byte{byte(function), byte(device)}), nil
}

func formatPci(payload []byte, _ bool) (string, error) {
	if len(payload) != 2 {
		return "", fmt.Errorf("%w: PCI node payload length %d", ErrMalformed, len(payload))
	}
	return fmt.Sprintf("Pci(%s,%s)",
		hexNum(uint64(payload[1])), hexNum(uint64(payload[0]))), nil
}

/*
 * Messaging/ATAPI: Ata(lun) short form, Ata(Primary|Secondary,
 * Master|Slave,lun) full form.
 * Payload: PrimarySecondary byte, SlaveMaster byte, Lun uint16.
 */

func parseAta(args []string) ([]byte, error) {
	if err := argCount("Ata", args, 1, 3); err != nil {
		return nil, err
	}
	var secondary, slave byte
	lunArg := args[0]
	if len(args) == 3 {
		switch strings.ToLower(strings.TrimSpace(args[0])) {
		case "primary":
			secondary = 0
		case "secondary":
			secondary = 1
		default:
			return nil, fmt.Errorf("%w: Ata: expected Primary or Secondary, got %q", ErrSyntax, args[0])
		}
		switch strings.ToLower(strings.TrimSpace(args[1])) {
		case "master":
			slave = 0
		case "slave":
			slave = 1
		default:
			return nil, fmt.Errorf("%w: Ata: expected Master or Slave, got %q", ErrSyntax, args[1])
		}
		lunArg = args[2]
	}
	lun, err := argNum(lunArg, 16)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 4)
	payload[0] = secondary
	payload[1] = slave
	binary.LittleEndian.PutUint16(payload[2:4], uint16(lun))
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeATAPI, payload), nil
}

func formatAta(payload []byte, displayOnly bool) (string, error) {
	if len(payload) != 4 {
		return "", fmt.Errorf("%w: ATAPI node payload length %d", ErrMalformed, len(payload))
	}
	lun := binary.LittleEndian.Uint16(payload[2:4])
	if displayOnly {
		return fmt.Sprintf("Ata(%s)", hexNum(uint64(lun))), nil
	}
	controller := "Primary"
	if payload[0] != 0 {
		controller = "Secondary"
	}
	drive := "Master"
	if payload[1] != 0 {
		drive = "Slave"
	}
	return fmt.Sprintf("Ata(%s,%s,%s)", controller, drive, hexNum(uint64(lun))), nil
}

/*
 * Messaging/USB: Usb(port,interface).
 */

func parseUsb(args []string) ([]byte, error) {
	if err := argCount("Usb", args, 2); err != nil {
		return nil, err
	}
	port, err := argNum(args[0], 8)
	if err != nil {
		return nil, err
	}
	iface, err := argNum(args[1], 8)
	if err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeUSB,
		[]byte{byte(port), byte(iface)}), nil
}

func formatUsb(payload []byte, _ bool) (string, error) {
	if len(payload) != 2 {
		return "", fmt.Errorf("%w: USB node payload length %d", ErrMalformed, len(payload))
	}
	return fmt.Sprintf("Usb(%s,%s)",
		hexNum(uint64(payload[0])), hexNum(uint64(payload[1]))), nil
}

/*
 * Messaging/MAC: MAC(address,iftype).
 * Payload: 32-byte address field, IfType byte. For IfType 0 or 1
 * (ethernet) only the first 6 address bytes are significant.
 */

func parseMAC(args []string) ([]byte, error) {
	if err := argCount("MAC", args, 1, 2); err != nil {
		return nil, err
	}
	addr, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil || len(addr) > 32 {
		return nil, fmt.Errorf("%w: MAC: bad address %q", ErrSyntax, args[0])
	}
	ifType := uint64(1)
	if len(args) == 2 {
		if ifType, err = argNum(args[1], 8); err != nil {
			return nil, err
		}
	}
	payload := make([]byte, 33)
	copy(payload, addr)
	payload[32] = byte(ifType)
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeMAC, payload), nil
}

func formatMAC(payload []byte, _ bool) (string, error) {
	if len(payload) != 33 {
		return "", fmt.Errorf("%w: MAC node payload length %d", ErrMalformed, len(payload))
	}
	ifType := payload[32]
	addrLen := 32
	if ifType == 0 || ifType == 1 {
		addrLen = 6
	}
	return fmt.Sprintf("MAC(%s,%s)",
		strings.ToUpper(hex.EncodeToString(payload[:addrLen])),
		hexNum(uint64(ifType))), nil
}

/*
 * Messaging/IPv4: IPv4(local) short form; full form
 * IPv4(local,protocol,DHCP|Static,remote,gateway,netmask).
 * Payload: LocalIp[4], RemoteIp[4], LocalPort u16, RemotePort u16,
 * Protocol u16, StaticIpAddress byte, GatewayIp[4], SubnetMask[4].
 */

func parseIP4Addr(arg string) ([]byte, error) {
	ip := net.ParseIP(strings.TrimSpace(arg))
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("%w: bad IPv4 address %q", ErrSyntax, arg)
	}
	return ip.To4(), nil
}

func parseProtocol(arg string) (uint16, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "tcp":
		return 6, nil
	case "udp":
		return 17, nil
	}
	v, err := argNum(arg, 16)
	return uint16(v), err
}

func formatProtocol(proto uint16) string {
	switch proto {
	case 6:
		return "TCP"
	case 17:
		return "UDP"
	}
	return hexNum(uint64(proto))
}

func parseIPv4(args []string) ([]byte, error) {
	if err := argCount("IPv4", args, 1, 6); err != nil {
		return nil, err
	}
	payload := make([]byte, 23)
	local, err := parseIP4Addr(args[0])
	if err != nil {
		return nil, err
	}
	copy(payload[0:4], local)
	if len(args) == 6 {
		proto, err := parseProtocol(args[1])
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint16(payload[12:14], proto)
		switch strings.ToLower(strings.TrimSpace(args[2])) {
		case "dhcp":
			payload[14] = 0
		case "static":
			payload[14] = 1
		default:
			return nil, fmt.Errorf("%w: IPv4: expected DHCP or Static, got %q", ErrSyntax, args[2])
		}
		remote, err := parseIP4Addr(args[3])
		if err != nil {
			return nil, err
		}
		copy(payload[4:8], remote)
		gateway, err := parseIP4Addr(args[4])
		if err != nil {
			return nil, err
		}
		copy(payload[15:19], gateway)
		netmask, err := parseIP4Addr(args[5])
		if err != nil {
			return nil, err
		}
		copy(payload[19:23], netmask)
	}
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeIPv4, payload), nil
}

func ip4String(b []byte) string {
	return net.IP(b).String()
}

func formatIPv4(payload []byte, displayOnly bool) (string, error) {
	if len(payload) != 23 {
		return "", fmt.Errorf("%w: IPv4 node payload length %d", ErrMalformed, len(payload))
	}
	local := ip4String(payload[0:4])
	if displayOnly {
		return fmt.Sprintf("IPv4(%s)", local), nil
	}
	proto := binary.LittleEndian.Uint16(payload[12:14])
	origin := "DHCP"
	if payload[14] != 0 {
		origin = "Static"
	}
	return fmt.Sprintf("IPv4(%s,%s,%s,%s,%s,%s)",
		local, formatProtocol(proto), origin,
		ip4String(payload[4:8]), ip4String(payload[15:19]),
		ip4String(payload[19:23])), nil
}

/*
 * Messaging/IPv6: IPv6(local) short form; full form
 * IPv6(local,protocol,origin,remote,prefixlen,gateway).
 * Payload: LocalIp[16], RemoteIp[16], LocalPort u16, RemotePort u16,
 * Protocol u16, IpAddressOrigin byte, PrefixLength byte, GatewayIp[16].
 */

func parseIP6Addr(arg string) ([]byte, error) {
	ip := net.ParseIP(strings.TrimSpace(arg))
	if ip == nil || ip.To4() != nil {
		return nil, fmt.Errorf("%w: bad IPv6 address %q", ErrSyntax, arg)
	}
	return ip.To16(), nil
}

func parseIPv6(args []string) ([]byte, error) {
	if err := argCount("IPv6", args, 1, 6); err != nil {
		return nil, err
	}
	payload := make([]byte, 56)
	local, err := parseIP6Addr(args[0])
	if err != nil {
		return nil, err
	}
	copy(payload[0:16], local)
	if len(args) == 6 {
		proto, err := parseProtocol(args[1])
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint16(payload[36:38], proto)
		origin, err := argNum(args[2], 8)
		if err != nil {
			return nil, err
		}
		payload[38] = byte(origin)
		remote, err := parseIP6Addr(args[3])
		if err != nil {
			return nil, err
		}
		copy(payload[16:32], remote)
		prefix, err := argNum(args[4], 8)
		if err != nil {
			return nil, err
		}
		payload[39] = byte(prefix)
		gateway, err := parseIP6Addr(args[5])
		if err != nil {
			return nil, err
		}
		copy(payload[40:56], gateway)
	}
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeIPv6, payload), nil
}

func formatIPv6(payload []byte, displayOnly bool) (string, error) {
	if len(payload) != 56 {
		return "", fmt.Errorf("%w: IPv6 node payload length %d", ErrMalformed, len(payload))
	}
	local := net.IP(payload[0:16]).String()
	if displayOnly {
		return fmt.Sprintf("IPv6(%s)", local), nil
	}
	proto := binary.LittleEndian.Uint16(payload[36:38])
	return fmt.Sprintf("IPv6(%s,%s,%s,%s,%s,%s)",
		local, formatProtocol(proto), hexNum(uint64(payload[38])),
		net.IP(payload[16:32]).String(), hexNum(uint64(payload[39])),
		net.IP(payload[40:56]).String()), nil
}

/*
 * Messaging/SATA: Sata(hbaport,multiplierport,lun).
 */

func parseSata(args []string) ([]byte, error) {
	if err := argCount("Sata", args, 3); err != nil {
		return nil, err
	}
	payload := make([]byte, 6)
	for i, arg := range args {
		v, err := argNum(arg, 16)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint16(payload[i*2:i*2+2], uint16(v))
	}
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeSATA, payload), nil
}

func formatSata(payload []byte, _ bool) (string, error) {
	if len(payload) != 6 {
		return "", fmt.Errorf("%w: SATA node payload length %d", ErrMalformed, len(payload))
	}
	return fmt.Sprintf("Sata(%s,%s,%s)",
		hexNum(uint64(binary.LittleEndian.Uint16(payload[0:2]))),
		hexNum(uint64(binary.LittleEndian.Uint16(payload[2:4]))),
		hexNum(uint64(binary.LittleEndian.Uint16(payload[4:6])))), nil
}

/*
 * Messaging/NVMe: NVMe(namespace,eui).
 * Payload: NamespaceId u32, extended unique identifier [8].
 */

func parseNVMe(args []string) ([]byte, error) {
	if err := argCount("NVMe", args, 2); err != nil {
		return nil, err
	}
	nsid, err := argNum(args[0], 32)
	if err != nil {
		return nil, err
	}
	eui, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(args[1]), "-", ""))
	if err != nil || len(eui) != 8 {
		return nil, fmt.Errorf("%w: NVMe: bad EUI %q", ErrSyntax, args[1])
	}
	payload := make([]byte, 12)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(nsid))
	copy(payload[4:12], eui)
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeNVMe, payload), nil
}

func formatNVMe(payload []byte, _ bool) (string, error) {
	if len(payload) != 12 {
		return "", fmt.Errorf("%w: NVMe node payload length %d", ErrMalformed, len(payload))
	}
	parts := make([]string, 8)
	for i, b := range payload[4:12] {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("NVMe(%s,%s)",
		hexNum(uint64(binary.LittleEndian.Uint32(payload[0:4]))),
		strings.Join(parts, "-")), nil
}

/*
 * Messaging/URI: Uri(uri). Payload is the raw UTF-8 URI with no
 * terminator; a zero-length URI is legal.
 */

func parseUri(args []string) ([]byte, error) {
	if err := argCount("Uri", args, 1); err != nil {
		return nil, err
	}
	if err := checkPayloadLen("Uri", len(args[0])); err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeMessaging, types.MessagingSubTypeURI, []byte(args[0])), nil
}

func formatUri(payload []byte, _ bool) (string, error) {
	return fmt.Sprintf("Uri(%s)", string(payload)), nil
}

/*
 * Media/HardDrive: HD(partition,GPT,signature-guid,start,size) or
 * HD(partition,MBR,signature,start,size); the display form omits
 * start and size.
 * Payload: PartitionNumber u32, PartitionStart u64, PartitionSize u64,
 * Signature[16], MBRType byte, SignatureType byte.
 */

func parseHD(args []string) ([]byte, error) {
	if err := argCount("HD", args, 3, 5); err != nil {
		return nil, err
	}
	partition, err := argNum(args[0], 32)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 38)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(partition))
	switch strings.ToLower(strings.TrimSpace(args[1])) {
	case "gpt":
		payload[36] = types.PartitionFormatGPT
		payload[37] = types.SignatureTypeGUID
		sig, err := types.ParseGUID(strings.TrimSpace(args[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: HD: %v", ErrSyntax, err)
		}
		types.PutGUID(payload[20:36], sig)
	case "mbr":
		payload[36] = types.PartitionFormatMBR
		payload[37] = types.SignatureTypeMBR
		sig, err := argNum(args[2], 32)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(payload[20:24], uint32(sig))
	default:
		return nil, fmt.Errorf("%w: HD: expected GPT or MBR, got %q", ErrSyntax, args[1])
	}
	if len(args) == 5 {
		start, err := argNum(args[3], 64)
		if err != nil {
			return nil, err
		}
		size, err := argNum(args[4], 64)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint64(payload[4:12], start)
		binary.LittleEndian.PutUint64(payload[12:20], size)
	}
	return appendNode(nil, types.TypeMedia, types.MediaSubTypeHardDrive, payload), nil
}

func formatHD(payload []byte, displayOnly bool) (string, error) {
	if len(payload) != 38 {
		return "", fmt.Errorf("%w: HD node payload length %d", ErrMalformed, len(payload))
	}
	partition := binary.LittleEndian.Uint32(payload[0:4])
	start := binary.LittleEndian.Uint64(payload[4:12])
	size := binary.LittleEndian.Uint64(payload[12:20])

	var format, signature string
	switch payload[36] {
	case types.PartitionFormatGPT:
		format = "GPT"
		signature = types.ReadGUID(payload[20:36]).String()
	case types.PartitionFormatMBR:
		format = "MBR"
		signature = hexNum(uint64(binary.LittleEndian.Uint32(payload[20:24])))
	default:
		format = hexNum(uint64(payload[36]))
		signature = strings.ToUpper(hex.EncodeToString(payload[20:36]))
	}

	if displayOnly {
		return fmt.Sprintf("HD(%d,%s,%s)", partition, format, signature), nil
	}
	return fmt.Sprintf("HD(%d,%s,%s,%s,%s)", partition, format, signature,
		hexNum(start), hexNum(size)), nil
}

/*
 * Media/CDROM: CDROM(entry,start,size).
 */

func parseCDROM(args []string) ([]byte, error) {
	if err := argCount("CDROM", args, 3); err != nil {
		return nil, err
	}
	entry, err := argNum(args[0], 32)
	if err != nil {
		return nil, err
	}
	start, err := argNum(args[1], 64)
	if err != nil {
		return nil, err
	}
	size, err := argNum(args[2], 64)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 20)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(entry))
	binary.LittleEndian.PutUint64(payload[4:12], start)
	binary.LittleEndian.PutUint64(payload[12:20], size)
	return appendNode(nil, types.TypeMedia, types.MediaSubTypeCDROM, payload), nil
}

func formatCDROM(payload []byte, _ bool) (string, error) {
	if len(payload) != 20 {
		return "", fmt.Errorf("%w: CDROM node payload length %d", ErrMalformed, len(payload))
	}
	return fmt.Sprintf("CDROM(%s,%s,%s)",
		hexNum(uint64(binary.LittleEndian.Uint32(payload[0:4]))),
		hexNum(binary.LittleEndian.Uint64(payload[4:12])),
		hexNum(binary.LittleEndian.Uint64(payload[12:20]))), nil
}

/*
 * Media/Vendor: VenMedia(guid) or VenMedia(guid,hexdata).
 */

func parseVenMedia(args []string) ([]byte, error) {
	if err := argCount("VenMedia", args, 1, 2); err != nil {
		return nil, err
	}
	guid, err := types.ParseGUID(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: VenMedia: %v", ErrSyntax, err)
	}
	payload := make([]byte, types.GUIDLen)
	types.PutGUID(payload, guid)
	if len(args) == 2 {
		data, err := hex.DecodeString(strings.TrimSpace(args[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: VenMedia: bad vendor data %q", ErrSyntax, args[1])
		}
		payload = append(payload, data...)
	}
	if err := checkPayloadLen("VenMedia", len(payload)); err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeMedia, types.MediaSubTypeVendor, payload), nil
}

func formatVenMedia(payload []byte, _ bool) (string, error) {
	if len(payload) < types.GUIDLen {
		return "", fmt.Errorf("%w: vendor media node payload length %d", ErrMalformed, len(payload))
	}
	guid := types.ReadGUID(payload[:types.GUIDLen])
	if len(payload) == types.GUIDLen {
		return fmt.Sprintf("VenMedia(%s)", guid), nil
	}
	return fmt.Sprintf("VenMedia(%s,%s)", guid,
		strings.ToUpper(hex.EncodeToString(payload[types.GUIDLen:]))), nil
}

/*
 * Media firmware volume nodes: Fv(guid) and FvFile(guid).
 */

func guidNode(name string, sub uint8, args []string) ([]byte, error) {
	if err := argCount(name, args, 1); err != nil {
		return nil, err
	}
	guid, err := types.ParseGUID(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, name, err)
	}
	payload := make([]byte, types.GUIDLen)
	types.PutGUID(payload, guid)
	return appendNode(nil, types.TypeMedia, sub, payload), nil
}

func parseFv(args []string) ([]byte, error) {
	return guidNode("Fv", types.MediaSubTypeFv, args)
}

func parseFvFile(args []string) ([]byte, error) {
	return guidNode("FvFile", types.MediaSubTypeFvFile, args)
}

func formatGuidNode(name string, payload []byte) (string, error) {
	if len(payload) != types.GUIDLen {
		return "", fmt.Errorf("%w: %s node payload length %d", ErrMalformed, name, len(payload))
	}
	return fmt.Sprintf("%s(%s)", name, types.ReadGUID(payload)), nil
}

func formatFv(payload []byte, _ bool) (string, error) {
	return formatGuidNode("Fv", payload)
}

func formatFvFile(payload []byte, _ bool) (string, error) {
	return formatGuidNode("FvFile", payload)
}

/*
 * Media/FilePath: the fallback node kind. Any token that is not a
 * recognized Name(...) expression is a literal path component; the
 * payload is the NUL-terminated UCS-2LE path text.
 */

func filePathNode(text string) ([]byte, error) {
	if err := checkPayloadLen("file path", ucs2.EncodedLen(text)); err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeMedia, types.MediaSubTypeFilePath, ucs2.Encode(text)), nil
}

func formatFilePath(payload []byte, _ bool) (string, error) {
	text, _, err := ucs2.Decode(payload)
	if err != nil {
		return "", fmt.Errorf("%w: file path node: %v", ErrMalformed, err)
	}
	return text, nil
}

/*
 * BBS: legacy BIOS Boot Specification entries.
 * BBS(devicetype,description,flags); the display form omits flags.
 * Payload: DeviceType u16, StatusFlag u16, ASCII description with
 * NUL terminator.
 */

func parseBBS(args []string) ([]byte, error) {
	if err := argCount("BBS", args, 2, 3); err != nil {
		return nil, err
	}
	devType, err := argNum(args[0], 16)
	if err != nil {
		return nil, err
	}
	var flags uint64
	if len(args) == 3 {
		if flags, err = argNum(args[2], 16); err != nil {
			return nil, err
		}
	}
	payload := make([]byte, 4, 4+len(args[1])+1)
	binary.LittleEndian.PutUint16(payload[0:2], uint16(devType))
	binary.LittleEndian.PutUint16(payload[2:4], uint16(flags))
	payload = append(payload, args[1]...)
	payload = append(payload, 0)
	if err := checkPayloadLen("BBS", len(payload)); err != nil {
		return nil, err
	}
	return appendNode(nil, types.TypeBBS, types.BBSSubTypeBBS101, payload), nil
}

func formatBBS(payload []byte, displayOnly bool) (string, error) {
	if len(payload) < 5 || payload[len(payload)-1] != 0 {
		return "", fmt.Errorf("%w: BBS node payload length %d", ErrMalformed, len(payload))
	}
	devType := binary.LittleEndian.Uint16(payload[0:2])
	flags := binary.LittleEndian.Uint16(payload[2:4])
	desc := string(payload[4 : len(payload)-1])
	if displayOnly {
		return fmt.Sprintf("BBS(%s,%s)", hexNum(uint64(devType)), desc), nil
	}
	return fmt.Sprintf("BBS(%s,%s,%s)", hexNum(uint64(devType)), desc,
		hexNum(uint64(flags))), nil
}

/*
 * Path(type,subtype,hexpayload): generic escape hatch for node kinds
 * without a registered textual form. Always round-trips.
 */

func parseRaw(args []string) ([]byte, error) {
	if err := argCount("Path", args, 2, 3); err != nil {
		return nil, err
	}
	typ, err := argNum(args[0], 8)
	if err != nil {
		return nil, err
	}
	sub, err := argNum(args[1], 8)
	if err != nil {
		return nil, err
	}
	var payload []byte
	if len(args) == 3 && strings.TrimSpace(args[2]) != "" {
		if payload, err = hex.DecodeString(strings.TrimSpace(args[2])); err != nil {
			return nil, fmt.Errorf("%w: Path: bad payload hex %q", ErrSyntax, args[2])
		}
	}
	if err := checkPayloadLen("Path", len(payload)); err != nil {
		return nil, err
	}
	return appendNode(nil, byte(typ), byte(sub), payload), nil
}

func formatRaw(typ, sub uint8, payload []byte) string {
	if len(payload) == 0 {
		return fmt.Sprintf("Path(%s,%s)", hexNum(uint64(typ)), hexNum(uint64(sub)))
	}
	return fmt.Sprintf("Path(%s,%s,%s)", hexNum(uint64(typ)), hexNum(uint64(sub)),
		strings.ToUpper(hex.EncodeToString(payload)))
}
