// Package testimage builds synthetic FAT12 images.
// Every field is written at its on-disk offset, independent of the decoder in
// the fat12 package, so both can be checked against each other.
package testimage

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Boot sector field offsets.
const (
	offJumpBoot          = 0
	offOEMIdentifier     = 3
	offBytesPerSector    = 11
	offSectorsPerCluster = 13
	offReservedSectors   = 14
	offFATCount          = 16
	offDirEntryCount     = 17
	offTotalSectors16    = 19
	offMediaDescriptor   = 21
	offSectorsPerFAT     = 22
	offSectorsPerTrack   = 24
	offHeads             = 26
	offHiddenSectors     = 28
	offLargeSectorCount  = 32
	offDriveNumber       = 36
	offSignature         = 38
	offVolumeID          = 39
	offVolumeLabel       = 43
	offSystemID          = 54
	offBootSignature     = 510
)

// Directory entry field offsets.
const (
	offEntryName         = 0
	offEntryAttributes   = 11
	offEntryCreateTenths = 13
	offEntryCreateTime   = 14
	offEntryCreateDate   = 16
	offEntryAccessDate   = 18
	offEntryClusterHigh  = 20
	offEntryModifyTime   = 22
	offEntryModifyDate   = 24
	offEntryClusterLow   = 26
	offEntrySize         = 28

	EntrySize = 32
)

// Geometry describes the volume layout of a generated image.
type Geometry struct {
	OEM               string
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	FATCount          uint8
	DirEntryCount     uint16
	TotalSectors16    uint16
	LargeSectorCount  uint32
	MediaDescriptor   uint8
	SectorsPerFAT     uint16
	SectorsPerTrack   uint16
	Heads             uint16
	VolumeID          uint32
	VolumeLabel       string
	SystemID          string
}

// Floppy144 is the geometry of a 3.5" 1.44MB floppy.
func Floppy144() Geometry {
	return Geometry{
		OEM:               "MSWIN4.1",
		BytesPerSector:    512,
		SectorsPerCluster: 1,
		ReservedSectors:   1,
		FATCount:          2,
		DirEntryCount:     224,
		TotalSectors16:    2880,
		MediaDescriptor:   0xF0,
		SectorsPerFAT:     9,
		SectorsPerTrack:   18,
		Heads:             2,
		VolumeID:          0x12345678,
		VolumeLabel:       "TESTDISK",
		SystemID:          "FAT12",
	}
}

// TotalSectors returns the 16 bit count or, if that is 0, the large count.
func (g Geometry) TotalSectors() uint32 {
	if g.TotalSectors16 != 0 {
		return uint32(g.TotalSectors16)
	}
	return g.LargeSectorCount
}

// RootDirectoryOffset is the byte offset of the first root directory entry.
func (g Geometry) RootDirectoryOffset() int {
	return (int(g.ReservedSectors) + int(g.SectorsPerFAT)*int(g.FATCount)) * int(g.BytesPerSector)
}

// Entry is a root directory slot. Name must be exactly 11 bytes and may
// start with 0x00 or 0xE5 to produce end or deleted markers.
type Entry struct {
	Name         string
	Attributes   byte
	FirstCluster uint32
	Size         uint32
	Created      time.Time
	Modified     time.Time
	Accessed     time.Time
}

// BootSector returns the first sector of an image with geometry g.
func BootSector(g Geometry) []byte {
	size := int(g.BytesPerSector)
	if size < 512 {
		size = 512
	}
	b := make([]byte, size)

	copy(b[offJumpBoot:], []byte{0xEB, 0x3C, 0x90})
	copy(b[offOEMIdentifier:offOEMIdentifier+8], pad(g.OEM, 8))
	binary.LittleEndian.PutUint16(b[offBytesPerSector:], g.BytesPerSector)
	b[offSectorsPerCluster] = g.SectorsPerCluster
	binary.LittleEndian.PutUint16(b[offReservedSectors:], g.ReservedSectors)
	b[offFATCount] = g.FATCount
	binary.LittleEndian.PutUint16(b[offDirEntryCount:], g.DirEntryCount)
	binary.LittleEndian.PutUint16(b[offTotalSectors16:], g.TotalSectors16)
	b[offMediaDescriptor] = g.MediaDescriptor
	binary.LittleEndian.PutUint16(b[offSectorsPerFAT:], g.SectorsPerFAT)
	binary.LittleEndian.PutUint16(b[offSectorsPerTrack:], g.SectorsPerTrack)
	binary.LittleEndian.PutUint16(b[offHeads:], g.Heads)
	binary.LittleEndian.PutUint32(b[offHiddenSectors:], 0)
	binary.LittleEndian.PutUint32(b[offLargeSectorCount:], g.LargeSectorCount)
	b[offDriveNumber] = 0x00
	b[offSignature] = 0x29
	binary.LittleEndian.PutUint32(b[offVolumeID:], g.VolumeID)
	copy(b[offVolumeLabel:offVolumeLabel+11], pad(g.VolumeLabel, 11))
	copy(b[offSystemID:offSystemID+8], pad(g.SystemID, 8))
	b[offBootSignature] = 0x55
	b[offBootSignature+1] = 0xAA

	return b
}

// EncodeEntry returns the 32 byte form of e.
func EncodeEntry(e Entry) []byte {
	if len(e.Name) != 11 {
		panic(fmt.Sprintf("testimage: entry name %q is not 11 bytes long", e.Name))
	}

	b := make([]byte, EntrySize)
	copy(b[offEntryName:], e.Name)
	b[offEntryAttributes] = e.Attributes

	if !e.Created.IsZero() {
		b[offEntryCreateTenths] = byte(e.Created.Second()%2*100 + e.Created.Nanosecond()/int(10*time.Millisecond))
		binary.LittleEndian.PutUint16(b[offEntryCreateTime:], dosTime(e.Created))
		binary.LittleEndian.PutUint16(b[offEntryCreateDate:], dosDate(e.Created))
	}
	if !e.Accessed.IsZero() {
		binary.LittleEndian.PutUint16(b[offEntryAccessDate:], dosDate(e.Accessed))
	}
	if !e.Modified.IsZero() {
		binary.LittleEndian.PutUint16(b[offEntryModifyTime:], dosTime(e.Modified))
		binary.LittleEndian.PutUint16(b[offEntryModifyDate:], dosDate(e.Modified))
	}

	binary.LittleEndian.PutUint16(b[offEntryClusterHigh:], uint16(e.FirstCluster>>16))
	binary.LittleEndian.PutUint16(b[offEntryClusterLow:], uint16(e.FirstCluster))
	binary.LittleEndian.PutUint32(b[offEntrySize:], e.Size)

	return b
}

// Build returns a complete image. The entries fill the root directory slots
// from index 0 on, all other bytes are 0 apart from the FAT media markers.
func Build(g Geometry, entries ...Entry) []byte {
	if int(g.DirEntryCount) < len(entries) {
		panic(fmt.Sprintf("testimage: %d entries do not fit into %d slots", len(entries), g.DirEntryCount))
	}

	image := make([]byte, int(g.TotalSectors())*int(g.BytesPerSector))
	copy(image, BootSector(g))

	fatSize := int(g.SectorsPerFAT) * int(g.BytesPerSector)
	for i := 0; i < int(g.FATCount); i++ {
		start := (int(g.ReservedSectors) * int(g.BytesPerSector)) + i*fatSize
		if fatSize >= 3 {
			copy(image[start:], []byte{g.MediaDescriptor, 0xFF, 0xFF})
		}
	}

	root := g.RootDirectoryOffset()
	for i, e := range entries {
		copy(image[root+i*EntrySize:], EncodeEntry(e))
	}

	return image
}

func pad(s string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	copy(b, s)
	return b
}

func dosDate(t time.Time) uint16 {
	return uint16((t.Year()-1980)<<9 | int(t.Month())<<5 | t.Day())
}

func dosTime(t time.Time) uint16 {
	return uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
}
