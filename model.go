// File model contains the structs which match the on-disk structures of a FAT12 volume.
// The fields are listed in on-disk order and are packed without any alignment padding.

package fat12

const (
	// BootSectorSize is the packed size of the BIOS parameter block plus the extended boot record.
	BootSectorSize = 62

	// DirectoryEntrySize is the size of a single root directory record.
	DirectoryEntrySize = 32

	// NameLength is the length of the space padded 8.3 name in a directory entry.
	NameLength = 11
)

// Directory entry attributes.
const (
	AttrReadOnly  byte = 0x01
	AttrHidden    byte = 0x02
	AttrSystem    byte = 0x04
	AttrVolumeID  byte = 0x08
	AttrDirectory byte = 0x10
	AttrArchive   byte = 0x20
	AttrLongName       = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeID
)

// Markers found in the first name byte of a directory entry.
const (
	EntryEndOfDirectory byte = 0x00
	EntryDeleted        byte = 0xE5
)

// BootSector contains the BIOS parameter block and the extended boot record of a FAT12 volume.
type BootSector struct {
	JumpBoot          [3]byte
	OEMIdentifier     [8]byte
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	FATCount          uint8
	DirEntryCount     uint16
	TotalSectors16    uint16
	MediaDescriptor   uint8
	SectorsPerFAT     uint16
	SectorsPerTrack   uint16
	Heads             uint16
	HiddenSectors     uint32
	LargeSectorCount  uint32

	// Extended boot record
	DriveNumber uint8
	Reserved    uint8
	Signature   uint8
	VolumeID    uint32
	VolumeLabel [11]byte
	SystemID    [8]byte
}

// DirectoryEntry is a single 32 byte record of the root directory.
type DirectoryEntry struct {
	Name              [NameLength]byte
	Attributes        uint8
	Reserved          uint8
	CreatedTimeTenths uint8
	CreationTime      uint16
	CreationDate      uint16
	AccessedDate      uint16
	FirstClusterHigh  uint16
	ModifiedTime      uint16
	ModifiedDate      uint16
	FirstClusterLow   uint16
	Size              uint32
}
