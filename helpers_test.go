package fat12

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aligator/fat12/internal/testimage"
)

// testModTime is an arbitrary timestamp representable in a directory entry.
var testModTime = time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)

// floppyEntries is the root directory content of floppyImage.
func floppyEntries() []testimage.Entry {
	return []testimage.Entry{
		{Name: "TESTDISK   ", Attributes: AttrVolumeID | AttrArchive},
		{Name: "FILE    TXT", Attributes: AttrArchive, FirstCluster: 2, Size: 4096, Modified: testModTime},
		{Name: "DOCS       ", Attributes: AttrDirectory, FirstCluster: 10, Modified: testModTime},
		{Name: "\xE5LD     TXT", Attributes: AttrArchive, FirstCluster: 11, Size: 12},
		{Name: "README  MD ", Attributes: AttrArchive | AttrReadOnly, FirstCluster: 12, Size: 77},
	}
}

// floppyImage is a 1.44MB image with the entries of floppyEntries.
func floppyImage() []byte {
	return testimage.Build(testimage.Floppy144(), floppyEntries()...)
}

func floppyBootSector(t *testing.T) BootSector {
	t.Helper()
	bs, err := UnpackBootSector(testimage.BootSector(testimage.Floppy144()))
	if err != nil {
		t.Fatalf("UnpackBootSector() error = %v", err)
	}
	return bs
}

func key(name string) [NameLength]byte {
	var k [NameLength]byte
	copy(k[:], name)
	return k
}

// checkErrors fails if err does not match every error in want or matches one in notWant.
func checkErrors(t *testing.T, err error, want []error, notWant []error) {
	t.Helper()
	if len(want) > 0 && err == nil {
		t.Fatalf("error = nil, want %v", want)
	}
	for _, w := range want {
		if !errors.Is(err, w) {
			t.Errorf("errors.Is(%v, %v) = false, want true", err, w)
		}
	}
	for _, w := range notWant {
		if errors.Is(err, w) {
			t.Errorf("errors.Is(%v, %v) = true, want false", err, w)
		}
	}
}

// failingSeeker fails every Seek.
type failingSeeker struct {
	io.Reader
}

var errSeek = errors.New("seek not possible")

func (failingSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, errSeek
}

func reader(data []byte) io.ReadSeeker {
	return bytes.NewReader(data)
}
