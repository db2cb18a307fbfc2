// File: internal/loadoption/loadoption.go

// Package loadoption implements the EFI_LOAD_OPTION codec: the binary
// record stored in Boot####, Driver#### and SysPrep#### variables.
//
// The wire layout is a 4-byte attribute word, a 2-byte little-endian
// file path list length, a NUL-terminated UCS-2LE description, that
// many bytes of concatenated device path chains, and any remaining
// bytes as opaque optional data.
package loadoption

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-efiboot/internal/devicepath"
	"github.com/deploymenttheory/go-efiboot/internal/types"
	"github.com/deploymenttheory/go-efiboot/internal/ucs2"
)

// ErrMalformed is wrapped by all decode failures.
var ErrMalformed = errors.New("malformed load option")

// LoadOption is one decoded boot/driver/sysprep record. All fields
// are owned copies; mutating caller-supplied buffers after
// construction does not affect the option.
type LoadOption struct {
	attributes   uint32
	description  string
	paths        [][]byte
	optionalData []byte
}

// New constructs a load option. At least one device path is required;
// each path must be a complete valid chain.
func New(attributes uint32, description string, paths [][]byte, optionalData []byte) (*LoadOption, error) {
	o := &LoadOption{
		attributes:  attributes,
		description: description,
	}
	if err := o.SetPaths(paths); err != nil {
		return nil, err
	}
	o.SetOptionalData(optionalData)
	return o, nil
}

// Decode parses an encoded load option. Every failure is structural
// and reported before any partial object is produced.
func Decode(buf []byte) (*LoadOption, error) {
	if len(buf) < types.LoadOptionHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes is below the %d byte header", ErrMalformed, len(buf), types.LoadOptionHeaderLen)
	}
	br := types.NewBinaryReader(buf)
	attributes := br.ReadUint32()
	pathsLen := int(br.ReadUint16())

	description, consumed, err := ucs2.Decode(buf[types.LoadOptionHeaderLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: description: %v", ErrMalformed, err)
	}
	rest := buf[types.LoadOptionHeaderLen+consumed:]

	if pathsLen > len(rest) {
		return nil, fmt.Errorf("%w: file path list length %d exceeds %d remaining bytes", ErrMalformed, pathsLen, len(rest))
	}
	paths, err := devicepath.Split(rest[:pathsLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	optionalData := make([]byte, len(rest)-pathsLen)
	copy(optionalData, rest[pathsLen:])

	return &LoadOption{
		attributes:   attributes,
		description:  description,
		paths:        paths,
		optionalData: optionalData,
	}, nil
}

// Encode serializes the load option. The file path list length field
// is always recomputed from the actual encoded chains.
func (o *LoadOption) Encode() []byte {
	desc := ucs2.Encode(o.description)
	pathsLen := 0
	for _, p := range o.paths {
		pathsLen += len(p)
	}

	bw := types.NewBinaryWriter(types.LoadOptionHeaderLen + len(desc) + pathsLen + len(o.optionalData))
	bw.WriteUint32(o.attributes)
	bw.WriteUint16(uint16(pathsLen))
	bw.WriteBytes(desc)
	for _, p := range o.paths {
		bw.WriteBytes(p)
	}
	bw.WriteBytes(o.optionalData)
	return bw.Bytes()
}

// Attributes returns the attribute bit flags.
func (o *LoadOption) Attributes() uint32 {
	return o.attributes
}

// SetAttributes replaces the attribute bit flags.
func (o *LoadOption) SetAttributes(attributes uint32) {
	o.attributes = attributes
}

// Active reports whether the LOAD_OPTION_ACTIVE bit is set.
func (o *LoadOption) Active() bool {
	return o.attributes&types.LoadOptionActive != 0
}

// SetActive sets or clears the LOAD_OPTION_ACTIVE bit.
func (o *LoadOption) SetActive(active bool) {
	if active {
		o.attributes |= types.LoadOptionActive
	} else {
		o.attributes &^= types.LoadOptionActive
	}
}

// Description returns the human-readable description.
func (o *LoadOption) Description() string {
	return o.description
}

// SetDescription replaces the description.
func (o *LoadOption) SetDescription(description string) {
	o.description = description
}

// PathCount returns the number of device paths; always at least one
// for a decoded or validly constructed option.
func (o *LoadOption) PathCount() int {
	return len(o.paths)
}

// Path returns a copy of the device path chain at index i, or nil if
// i is out of range. Index 0 is the primary path.
func (o *LoadOption) Path(i int) []byte {
	if i < 0 || i >= len(o.paths) {
		return nil
	}
	out := make([]byte, len(o.paths[i]))
	copy(out, o.paths[i])
	return out
}

// Paths returns copies of all device path chains.
func (o *LoadOption) Paths() [][]byte {
	out := make([][]byte, len(o.paths))
	for i := range o.paths {
		out[i] = o.Path(i)
	}
	return out
}

// SetPaths replaces all device paths with copies of the supplied
// chains. At least one chain is required and each must be valid on
// its own.
func (o *LoadOption) SetPaths(paths [][]byte) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: at least one device path is required", ErrMalformed)
	}
	owned := make([][]byte, len(paths))
	for i, p := range paths {
		if !devicepath.Valid(p, len(p)) || devicepath.Len(p) != len(p) {
			return fmt.Errorf("%w: device path %d is not a single valid chain", ErrMalformed, i)
		}
		owned[i] = make([]byte, len(p))
		copy(owned[i], p)
	}
	o.paths = owned
	return nil
}

// SetPath replaces the device path chain at index i.
func (o *LoadOption) SetPath(i int, path []byte) error {
	if i < 0 || i >= len(o.paths) {
		return fmt.Errorf("%w: path index %d out of range", ErrMalformed, i)
	}
	paths := o.Paths()
	paths[i] = path
	return o.SetPaths(paths)
}

// OptionalData returns a copy of the optional data blob; nil-safe and
// possibly empty.
func (o *LoadOption) OptionalData() []byte {
	out := make([]byte, len(o.optionalData))
	copy(out, o.optionalData)
	return out
}

// SetOptionalData replaces the optional data with a copy.
func (o *LoadOption) SetOptionalData(data []byte) {
	o.optionalData = make([]byte, len(data))
	copy(o.optionalData, data)
}
