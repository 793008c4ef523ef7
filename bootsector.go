package fat12

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/aligator/fat12/checkpoint"
	"github.com/go-restruct/restruct"
	"github.com/golang/glog"
)

// DecodeBootSector reads the boot sector from the start of the image.
// Exactly BootSectorSize bytes are consumed. The sector size is validated as
// every later stage divides by it.
func DecodeBootSector(r io.ReadSeeker) (BootSector, error) {
	glog.V(1).Info("Reading the boot sector")

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return BootSector{}, checkpoint.Wrap(checkpoint.Wrap(err, ErrIO), ErrReadBootSector)
	}

	raw := make([]byte, BootSectorSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return BootSector{}, checkpoint.Wrap(checkpoint.Wrap(shortRead(err), ErrIO), ErrReadBootSector)
	}

	bs, err := UnpackBootSector(raw)
	if err != nil {
		return BootSector{}, checkpoint.Wrap(err, ErrReadBootSector)
	}

	return bs, nil
}

// UnpackBootSector decodes and validates an in-memory boot sector.
func UnpackBootSector(raw []byte) (BootSector, error) {
	if len(raw) < BootSectorSize {
		return BootSector{}, checkpoint.Wrap(io.ErrUnexpectedEOF, ErrIO)
	}

	bs := BootSector{}
	if err := restruct.Unpack(raw[:BootSectorSize], binary.LittleEndian, &bs); err != nil {
		return BootSector{}, checkpoint.Wrap(err, ErrIO)
	}

	if err := bs.validate(); err != nil {
		return BootSector{}, err
	}

	glog.V(2).Infof("Boot sector: oem=%q bytesPerSector=%d sectorsPerCluster=%d reserved=%d fats=%d rootEntries=%d sectorsPerFat=%d totalSectors=%d",
		bs.OEMName(), bs.BytesPerSector, bs.SectorsPerCluster, bs.ReservedSectors, bs.FATCount, bs.DirEntryCount, bs.SectorsPerFAT, bs.TotalSectors())

	return bs, nil
}

// validate rejects geometry that would break the offset arithmetic of later stages.
// Only fields which are actually consumed get checked.
func (bs BootSector) validate() error {
	if bs.BytesPerSector == 0 {
		return checkpoint.Wrap(fmt.Errorf("bytes per sector is 0"), ErrInvalidGeometry)
	}
	if bs.BytesPerSector%DirectoryEntrySize != 0 {
		return checkpoint.Wrap(fmt.Errorf("%w: %d", errUnsupportedSectorLen, bs.BytesPerSector), ErrInvalidGeometry)
	}

	if bs.FATCount == 0 {
		glog.Warningf("Boot sector declares no FAT copies, the root directory directly follows the reserved region")
	}
	if bs.Signature != 0x28 && bs.Signature != 0x29 {
		glog.Warningf("Unexpected extended boot signature 0x%02X", bs.Signature)
	}

	return nil
}

// Encode packs the boot sector back into its on-disk representation.
func (bs BootSector) Encode() ([]byte, error) {
	return restruct.Pack(binary.LittleEndian, &bs)
}

// TotalSectors returns the 16 bit sector count, or the large sector count if the former is 0.
func (bs BootSector) TotalSectors() uint32 {
	if bs.TotalSectors16 != 0 {
		return uint32(bs.TotalSectors16)
	}
	return bs.LargeSectorCount
}

// FATLBA is the first sector of the first FAT copy.
func (bs BootSector) FATLBA() uint64 {
	return uint64(bs.ReservedSectors)
}

// RootDirectoryLBA is the first sector after the reserved region and all FAT copies.
func (bs BootSector) RootDirectoryLBA() uint64 {
	return uint64(bs.ReservedSectors) + uint64(bs.SectorsPerFAT)*uint64(bs.FATCount)
}

// RootDirectoryBytes is the structurally meaningful size of the root directory.
func (bs BootSector) RootDirectoryBytes() uint32 {
	return DirectoryEntrySize * uint32(bs.DirEntryCount)
}

// RootDirectorySectors is the number of whole sectors needed for the root directory.
func (bs BootSector) RootDirectorySectors() uint32 {
	if bs.BytesPerSector == 0 {
		return 0
	}

	size := bs.RootDirectoryBytes()
	sectors := size / uint32(bs.BytesPerSector)
	if size%uint32(bs.BytesPerSector) > 0 {
		sectors++
	}
	return sectors
}

// FirstDataSector is the first sector of the cluster area.
func (bs BootSector) FirstDataSector() uint64 {
	return bs.RootDirectoryLBA() + uint64(bs.RootDirectorySectors())
}

// OEMName returns the OEM identifier without padding.
func (bs BootSector) OEMName() string {
	return strings.TrimRight(string(bs.OEMIdentifier[:]), " \x00")
}

// Label returns the volume label of the extended boot record without padding.
func (bs BootSector) Label() string {
	return strings.TrimRight(string(bs.VolumeLabel[:]), " \x00")
}

// FileSystemType returns the informational system id, usually "FAT12".
func (bs BootSector) FileSystemType() string {
	return strings.TrimRight(string(bs.SystemID[:]), " \x00")
}

// shortRead turns the EOF variants of io.ReadFull into a plain error as a
// truncated image is a failure and no regular end of the stream.
func shortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("image truncated: %v", err)
	}
	return err
}
