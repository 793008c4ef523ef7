package fat12

import (
	"fmt"
	"io"
	"math"

	"github.com/aligator/fat12/checkpoint"
)

// sectorReader provides the sector based access the FAT and root directory loaders need.
// It mainly exists to be able to mock the image in tests.
// Generated mock using mockgen:
//  mockgen -source=sector.go -destination=sector_mock.go -package fat12
type sectorReader interface {
	// ReadSectors fills dst with count sectors starting at lba.
	ReadSectors(lba uint64, count uint32, dst []byte) error
}

// maxBufferSize bounds the byte size of a table loaded from the image.
var maxBufferSize uint64 = math.MaxInt

// bufferSize returns the byte size of count sectors. Sizes which do not fit
// into an int on the current platform are invalid geometry.
func bufferSize(count uint32, sectorSize uint16) (int, error) {
	size := uint64(count) * uint64(sectorSize)
	if size > maxBufferSize {
		return 0, checkpoint.Wrap(fmt.Errorf("%d sectors of %d bytes exceed %d bytes", count, sectorSize, maxBufferSize), ErrInvalidGeometry)
	}
	return int(size), nil
}

// imageReader reads whole sectors from a seekable disk image.
type imageReader struct {
	reader     io.ReadSeeker
	sectorSize uint16
}

func newImageReader(reader io.ReadSeeker, sectorSize uint16) *imageReader {
	return &imageReader{
		reader:     reader,
		sectorSize: sectorSize,
	}
}

// ReadSectors seeks to lba*sectorSize and reads exactly count*sectorSize bytes.
// A short read is never retried.
func (r *imageReader) ReadSectors(lba uint64, count uint32, dst []byte) error {
	if r.sectorSize == 0 {
		return checkpoint.Wrap(fmt.Errorf("sector size is 0"), ErrInvalidGeometry)
	}
	if count == 0 {
		return checkpoint.Wrap(fmt.Errorf("sector count is 0"), ErrInvalidGeometry)
	}

	size := uint64(count) * uint64(r.sectorSize)
	if uint64(len(dst)) < size {
		return checkpoint.Wrap(fmt.Errorf("buffer of %d bytes cannot hold %d sectors", len(dst), count), ErrIO)
	}

	if lba > math.MaxInt64/uint64(r.sectorSize) {
		return checkpoint.Wrap(fmt.Errorf("lba %d out of range", lba), ErrIO)
	}
	offset := int64(lba) * int64(r.sectorSize)

	if _, err := r.reader.Seek(offset, io.SeekStart); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}

	if _, err := io.ReadFull(r.reader, dst[:size]); err != nil {
		return checkpoint.Wrap(fmt.Errorf("reading %d sectors at lba %d: %w", count, lba, shortRead(err)), ErrIO)
	}

	return nil
}
