package fat12

import (
	"errors"
	"io"
	"os"

	"github.com/aligator/fat12/checkpoint"
	"github.com/golang/glog"
)

// Options change how a Session resolves names.
type Options struct {
	// StandardLookup stops the lookup at the end of directory marker and
	// ignores deleted entries. By default every slot is compared.
	StandardLookup bool
}

// Session owns everything loaded from one disk image: the boot sector, the
// allocation table and the root directory.
// A Session must not be used from multiple goroutines.
type Session struct {
	opts       Options
	bootSector BootSector
	fat        *AllocationTable
	root       *RootDirectory

	// closer is set if the session opened the image itself.
	closer io.Closer
	closed bool
}

// Open decodes the boot sector and loads the FAT and the root directory of
// the image. If any stage fails the remaining ones are not run and nothing is
// retained.
func Open(reader io.ReadSeeker, opts Options) (*Session, error) {
	bs, err := DecodeBootSector(reader)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:       opts,
		bootSector: bs,
	}

	if err := s.load(newImageReader(reader, bs.BytesPerSector)); err != nil {
		return nil, err
	}

	return s, nil
}

// load runs the FAT and root directory stages in order.
func (s *Session) load(sr sectorReader) error {
	fat, err := loadFAT(sr, s.bootSector)
	if err != nil {
		return err
	}

	root, err := loadRootDirectory(sr, s.bootSector)
	if err != nil {
		fat.release()
		return err
	}

	s.fat = fat
	s.root = root

	glog.V(1).Infof("Loaded volume %q with %d root directory slots", s.bootSector.Label(), root.Capacity())
	return nil
}

// BootSector returns the decoded boot sector.
func (s *Session) BootSector() BootSector {
	return s.bootSector
}

// FAT returns the first FAT copy. It is empty after Close.
func (s *Session) FAT() *AllocationTable {
	return s.fat
}

// RootDirectory returns the loaded root directory. It is empty after Close.
func (s *Session) RootDirectory() *RootDirectory {
	return s.root
}

// Find resolves an 11 byte on-disk name in the root directory.
// The returned entry is only valid until the Session gets closed.
func (s *Session) Find(name [NameLength]byte) (*DirectoryEntry, error) {
	if s.closed {
		return nil, checkpoint.From(ErrSessionClosed)
	}

	if s.opts.StandardLookup {
		return s.root.FindEntryStandard(name)
	}
	return s.root.FindEntry(name)
}

// Stat looks up a dotted name like "file.txt".
func (s *Session) Stat(name string) (os.FileInfo, error) {
	key, err := ShortName(name)
	if err != nil {
		return nil, err
	}

	entry, err := s.Find(key)
	if errors.Is(err, ErrNotFound) {
		return nil, checkpoint.Wrap(err, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist})
	}
	if err != nil {
		return nil, err
	}

	return entry.FileInfo(), nil
}

// Close drops the loaded tables and closes the image if the Session opened it.
// Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.fat != nil {
		s.fat.release()
	}
	if s.root != nil {
		s.root.release()
	}

	if s.closer != nil {
		return checkpoint.From(s.closer.Close())
	}
	return nil
}
