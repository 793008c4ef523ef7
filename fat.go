package fat12

import (
	"fmt"
	"io"

	"github.com/aligator/fat12/checkpoint"
	"github.com/golang/glog"
)

// AllocationTable holds the raw bytes of the first FAT copy.
// The 12 bit cluster links are not decoded.
type AllocationTable struct {
	data       []byte
	sectorSize uint16
}

// LoadFAT reads the first FAT copy which starts directly after the reserved region.
func LoadFAT(r io.ReadSeeker, bs BootSector) (*AllocationTable, error) {
	return loadFAT(newImageReader(r, bs.BytesPerSector), bs)
}

func loadFAT(sr sectorReader, bs BootSector) (*AllocationTable, error) {
	if bs.BytesPerSector == 0 || bs.SectorsPerFAT == 0 {
		return nil, checkpoint.Wrap(checkpoint.Wrap(
			fmt.Errorf("fat of %d sectors with %d bytes each", bs.SectorsPerFAT, bs.BytesPerSector),
			ErrInvalidGeometry), ErrReadFAT)
	}

	size, err := bufferSize(uint32(bs.SectorsPerFAT), bs.BytesPerSector)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadFAT)
	}

	glog.V(1).Infof("Reading %d FAT sectors at lba %d", bs.SectorsPerFAT, bs.FATLBA())

	data := make([]byte, size)
	if err := sr.ReadSectors(bs.FATLBA(), uint32(bs.SectorsPerFAT), data); err != nil {
		return nil, checkpoint.Wrap(err, ErrReadFAT)
	}

	return &AllocationTable{
		data:       data,
		sectorSize: bs.BytesPerSector,
	}, nil
}

// Bytes returns the raw table. The slice must not be modified.
func (t *AllocationTable) Bytes() []byte {
	return t.data
}

// Len is the size of the table in bytes.
func (t *AllocationTable) Len() int {
	return len(t.data)
}

// Sectors is the number of sectors the table occupies.
func (t *AllocationTable) Sectors() int {
	if t.sectorSize == 0 {
		return 0
	}
	return len(t.data) / int(t.sectorSize)
}

func (t *AllocationTable) release() {
	t.data = nil
}
