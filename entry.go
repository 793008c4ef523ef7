package fat12

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-restruct/restruct"
)

// IsEndMarker reports whether the entry marks the end of the directory.
func (e *DirectoryEntry) IsEndMarker() bool {
	return e.Name[0] == EntryEndOfDirectory
}

// IsFree reports whether the entry was deleted.
func (e *DirectoryEntry) IsFree() bool {
	return e.Name[0] == EntryDeleted
}

// IsDir reports whether the entry is a subdirectory.
func (e *DirectoryEntry) IsDir() bool {
	return e.Attributes&AttrDirectory == AttrDirectory
}

// IsVolumeLabel reports whether the entry holds the volume label instead of a file.
func (e *DirectoryEntry) IsVolumeLabel() bool {
	return e.Attributes&AttrLongName != AttrLongName && e.Attributes&AttrVolumeID == AttrVolumeID
}

// IsLongName reports whether the slot holds a VFAT long file name part instead of a file.
func (e *DirectoryEntry) IsLongName() bool {
	return e.Attributes&AttrLongName == AttrLongName
}

// FirstCluster combines both halves of the start cluster.
func (e *DirectoryEntry) FirstCluster() uint32 {
	return uint32(e.FirstClusterHigh)<<16 | uint32(e.FirstClusterLow)
}

// DisplayName converts the padded 8.3 name into the usual dotted form.
// Volume labels keep all 11 characters.
func (e *DirectoryEntry) DisplayName() string {
	if e.IsVolumeLabel() {
		return strings.TrimRight(string(e.Name[:]), " ")
	}

	base := e.Name[:8]
	if base[0] == 0x05 {
		// 0x05 escapes a real 0xE5 as first character.
		base = append([]byte{EntryDeleted}, base[1:]...)
	}

	name := strings.TrimRight(string(base), " ")
	ext := strings.TrimRight(string(e.Name[8:]), " ")
	if ext != "" {
		name += "." + ext
	}

	return name
}

// ModTime is the last modification time. It is zero if the date is unset.
func (e *DirectoryEntry) ModTime() time.Time {
	return dosTimestamp(e.ModifiedDate, e.ModifiedTime, 0)
}

// CreatedAt includes the 10 ms creation time fraction.
func (e *DirectoryEntry) CreatedAt() time.Time {
	return dosTimestamp(e.CreationDate, e.CreationTime, e.CreatedTimeTenths)
}

// AccessedAt only has a date, the time is always midnight.
func (e *DirectoryEntry) AccessedAt() time.Time {
	return parseDOSDate(e.AccessedDate)
}

// Encode packs the entry into its 32 byte on-disk form.
func (e *DirectoryEntry) Encode() ([]byte, error) {
	return restruct.Pack(binary.LittleEndian, e)
}
