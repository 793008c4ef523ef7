package fat12

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/aligator/fat12/checkpoint"
	"github.com/golang/glog"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// maxInflatedSize bounds the decompressed part of a zstd image.
// Only the reserved region, the FATs and the root directory are inflated,
// which stay far below this for any FAT12 volume.
const maxInflatedSize = 16 << 20

// OpenImage opens the image at path on fs and loads it like Open.
// zstd compressed images are inflated into memory first, up to the end of
// the root directory.
// The returned Session owns the file and closes it in Close.
func OpenImage(fs afero.Fs, path string, opts Options) (*Session, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrOpenImage)
	}

	reader, inflated, err := imageSource(file)
	if err != nil {
		file.Close()
		return nil, checkpoint.Wrap(err, ErrOpenImage)
	}

	var closer io.Closer = file
	if inflated {
		// The compressed file is not needed anymore.
		closer = nil
		if err := file.Close(); err != nil {
			return nil, checkpoint.Wrap(checkpoint.Wrap(err, ErrIO), ErrOpenImage)
		}
	}

	s, err := Open(reader, opts)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	s.closer = closer
	return s, nil
}

// imageSource returns the file itself, or a decompressed in-memory copy if it
// is zstd compressed. inflated reports the latter.
func imageSource(file afero.File) (reader io.ReadSeeker, inflated bool, err error) {
	magic := make([]byte, len(zstdMagic))
	n, err := io.ReadFull(file, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, false, checkpoint.Wrap(err, ErrIO)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, false, checkpoint.Wrap(err, ErrIO)
	}

	if n < len(zstdMagic) || !bytes.Equal(magic, zstdMagic) {
		return file, false, nil
	}

	glog.V(1).Infof("Decompressing zstd image %s", file.Name())

	reader, err = inflate(file)
	if err != nil {
		return nil, false, err
	}
	return reader, true, nil
}

// inflate decompresses the boot sector and, based on its geometry, everything
// up to the end of the root directory. The rest of the stream is never read.
// A missing or invalid boot sector is returned as is so Open reports it.
func inflate(r io.Reader) (io.ReadSeeker, error) {
	dec, err := zstd.NewReader(bufio.NewReader(r), zstd.WithDecoderMaxWindow(maxInflatedSize))
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrIO)
	}
	defer dec.Close()

	head := make([]byte, BootSectorSize)
	n, err := io.ReadFull(dec, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, checkpoint.Wrap(err, ErrIO)
	}
	if n < BootSectorSize {
		return bytes.NewReader(head[:n]), nil
	}

	bs, err := UnpackBootSector(head)
	if err != nil {
		return bytes.NewReader(head), nil
	}

	size := inflatedSize(bs)
	if size > maxInflatedSize {
		return nil, checkpoint.Wrap(fmt.Errorf("metadata of %d bytes exceeds %d bytes", size, maxInflatedSize), ErrInvalidGeometry)
	}

	glog.V(2).Infof("Inflating %d bytes of the image", size)

	buf := bytes.NewBuffer(make([]byte, 0, size))
	buf.Write(head)
	if _, err := io.Copy(buf, io.LimitReader(dec, int64(size)-BootSectorSize)); err != nil {
		return nil, checkpoint.Wrap(err, ErrIO)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

// inflatedSize is the number of bytes up to the end of the root directory,
// but at least the boot sector.
func inflatedSize(bs BootSector) uint64 {
	size := bs.FirstDataSector() * uint64(bs.BytesPerSector)
	if size < BootSectorSize {
		return BootSectorSize
	}
	return size
}
