// File: internal/efivars/efivarfs_linux.go

//go:build linux

package efivars

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	vfs "github.com/twpayne/go-vfs"
	"golang.org/x/sys/unix"
)

// DefaultEfivarfsDir is the usual efivarfs mount point.
const DefaultEfivarfsDir = "/sys/firmware/efi/efivars"

// fsImmutableFl is FS_IMMUTABLE_FL from linux/fs.h; x/sys/unix does
// not export the attr bit, only the FS_IOC_GET/SETFLAGS ioctls.
const fsImmutableFl = 0x00000010

// Efivarfs is the Linux Store backend. Variables are files named
// "<name>-<vendor guid>" whose first four bytes are the variable
// attributes. The filesystem is injected so the backend is testable
// against a scratch directory without root or real firmware.
type Efivarfs struct {
	fs  vfs.FS
	dir string
	log *logrus.Logger
}

// NewEfivarfs creates an efivarfs-backed store rooted at dir (the
// mount point when empty).
func NewEfivarfs(fsys vfs.FS, dir string, log *logrus.Logger) *Efivarfs {
	if dir == "" {
		dir = DefaultEfivarfsDir
	}
	if log == nil {
		log = logrus.New()
	}
	return &Efivarfs{fs: fsys, dir: dir, log: log}
}

func (s *Efivarfs) path(name string) string {
	return filepath.Join(s.dir, qualifiedName(name))
}

// Read returns the variable's payload, with the leading attribute
// word stripped.
func (s *Efivarfs) Read(name string) ([]byte, error) {
	path := s.path(name)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("reading %s: %d bytes is too short for the attribute word", path, len(data))
	}
	return data[4:], nil
}

// Write stores data under name, prefixing the default attribute word.
// The immutable attribute that the kernel sets on efivarfs files is
// cleared first where applicable.
func (s *Efivarfs) Write(name string, data []byte) error {
	path := s.path(name)
	buf := make([]byte, 4+len(data))
	binary.LittleEndian.PutUint32(buf[0:4], DefaultAttributes)
	copy(buf[4:], data)

	if s.Exists(name) {
		if err := s.clearImmutable(path); err != nil {
			return fmt.Errorf("unprotecting %s: %w", path, err)
		}
	}
	s.log.WithFields(logrus.Fields{"variable": name, "bytes": len(data)}).Debug("writing EFI variable")
	if err := s.fs.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Delete removes the variable, clearing the immutable attribute
// first where applicable.
func (s *Efivarfs) Delete(name string) error {
	path := s.path(name)
	if !s.Exists(name) {
		return ErrNotFound
	}
	if err := s.clearImmutable(path); err != nil {
		return fmt.Errorf("unprotecting %s: %w", path, err)
	}
	s.log.WithField("variable", name).Debug("deleting EFI variable")
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// Exists reports whether the variable's file is present.
func (s *Efivarfs) Exists(name string) bool {
	_, err := s.fs.Stat(s.path(name))
	return err == nil
}

// clearImmutable drops FS_IMMUTABLE_FL from the file, which the
// kernel applies to efivarfs entries to guard against accidental
// modification. Filesystems without flag support (test scratch
// directories) are left alone.
func (s *Efivarfs) clearImmutable(path string) error {
	f, err := s.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	flags, err := unix.IoctlGetInt(int(f.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		if ignorableFlagError(err) {
			return nil
		}
		return err
	}
	if flags&fsImmutableFl == 0 {
		return nil
	}
	flags &^= fsImmutableFl
	return unix.IoctlSetPointerInt(int(f.Fd()), unix.FS_IOC_SETFLAGS, flags)
}

func ignorableFlagError(err error) bool {
	return err == unix.ENOTTY || err == unix.EOPNOTSUPP || err == unix.EINVAL
}
