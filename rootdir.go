package fat12

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/aligator/fat12/checkpoint"
	"github.com/go-restruct/restruct"
	"github.com/golang/glog"
)

// RootDirectory is the fixed capacity root directory of a FAT12 volume.
type RootDirectory struct {
	data    []byte
	entries []DirectoryEntry
}

// LoadRootDirectory reads all sectors of the root directory.
func LoadRootDirectory(r io.ReadSeeker, bs BootSector) (*RootDirectory, error) {
	return loadRootDirectory(newImageReader(r, bs.BytesPerSector), bs)
}

func loadRootDirectory(sr sectorReader, bs BootSector) (*RootDirectory, error) {
	if bs.BytesPerSector == 0 || bs.DirEntryCount == 0 {
		return nil, checkpoint.Wrap(checkpoint.Wrap(
			fmt.Errorf("root directory of %d entries with %d bytes per sector", bs.DirEntryCount, bs.BytesPerSector),
			ErrInvalidGeometry), ErrReadRootDirectory)
	}

	lba := bs.RootDirectoryLBA()
	sectors := bs.RootDirectorySectors()

	size, err := bufferSize(sectors, bs.BytesPerSector)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadRootDirectory)
	}

	glog.V(1).Infof("Reading %d root directory sectors at lba %d", sectors, lba)

	data := make([]byte, size)
	if err := sr.ReadSectors(lba, sectors, data); err != nil {
		return nil, checkpoint.Wrap(err, ErrReadRootDirectory)
	}

	entries := make([]DirectoryEntry, bs.DirEntryCount)
	for i := range entries {
		raw := data[i*DirectoryEntrySize : (i+1)*DirectoryEntrySize]
		if err := restruct.Unpack(raw, binary.LittleEndian, &entries[i]); err != nil {
			return nil, checkpoint.Wrap(checkpoint.Wrap(err, ErrIO), ErrReadRootDirectory)
		}
	}

	return &RootDirectory{
		data:    data,
		entries: entries,
	}, nil
}

// Entries returns all slots up to the capacity, including free and deleted ones.
func (d *RootDirectory) Entries() []DirectoryEntry {
	return d.entries
}

// Bytes returns the whole sectors read for the directory, including the tail padding.
func (d *RootDirectory) Bytes() []byte {
	return d.data
}

// Capacity is the number of slots, dirEntryCount of the boot sector.
func (d *RootDirectory) Capacity() int {
	return len(d.entries)
}

// FindEntry returns the first entry whose name equals name byte for byte.
// Every slot up to the capacity is compared, including free and deleted ones,
// so the caller has to provide the exact on-disk form (see ShortName).
func (d *RootDirectory) FindEntry(name [NameLength]byte) (*DirectoryEntry, error) {
	for i := range d.entries {
		if d.entries[i].Name == name {
			return &d.entries[i], nil
		}
	}

	return nil, checkpoint.Wrap(fmt.Errorf("%q", name[:]), ErrNotFound)
}

// FindEntryStandard is like FindEntry but follows the usual FAT directory rules:
// the scan stops at the end of directory marker and deleted entries never match.
func (d *RootDirectory) FindEntryStandard(name [NameLength]byte) (*DirectoryEntry, error) {
	var found *DirectoryEntry
	d.Walk(func(e *DirectoryEntry) bool {
		if bytes.Equal(e.Name[:], name[:]) {
			found = e
			return false
		}
		return true
	})

	if found == nil {
		return nil, checkpoint.Wrap(fmt.Errorf("%q", name[:]), ErrNotFound)
	}
	return found, nil
}

// Walk calls fn for every used entry in order until fn returns false.
// It stops at the end of directory marker and skips deleted entries.
func (d *RootDirectory) Walk(fn func(e *DirectoryEntry) bool) {
	for i := range d.entries {
		e := &d.entries[i]
		if e.IsEndMarker() {
			return
		}
		if e.IsFree() {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

func (d *RootDirectory) release() {
	d.data = nil
	d.entries = nil
}
