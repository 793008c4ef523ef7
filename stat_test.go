package fat12

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestDirectoryEntry_FileInfo(t *testing.T) {
	entry := DirectoryEntry{
		Name:            key("HELLO   TXT"),
		Attributes:      AttrDirectory,
		CreationTime:    2,
		CreationDate:    3,
		AccessedDate:    4,
		FirstClusterLow: 8,
		Size:            9,
	}

	got := entry.FileInfo()
	want := entryFileInfo{entry: entry}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DirectoryEntry.FileInfo() = %v, want %v", got, want)
	}

	// The info keeps a copy.
	entry.Size = 10
	if got.Size() != 9 {
		t.Errorf("FileInfo().Size() = %v after changing the entry, want 9", got.Size())
	}
}

func Test_entryFileInfo(t *testing.T) {
	tests := []struct {
		name        string
		entry       DirectoryEntry
		wantName    string
		wantSize    int64
		wantMode    os.FileMode
		wantIsDir   bool
		wantModTime time.Time
	}{
		{
			name: "regular file",
			entry: DirectoryEntry{
				Name:         key("FILE    TXT"),
				Attributes:   AttrArchive,
				ModifiedDate: 0x2B14,
				ModifiedTime: 0x5401,
				Size:         4096,
			},
			wantName:    "FILE.TXT",
			wantSize:    4096,
			wantMode:    0666,
			wantModTime: time.Date(2001, 8, 20, 10, 32, 2, 0, time.UTC),
		},
		{
			name: "read only file without date",
			entry: DirectoryEntry{
				Name:       key("README     "),
				Attributes: AttrReadOnly,
				Size:       1,
			},
			wantName: "README",
			wantSize: 1,
			wantMode: 0444,
		},
		{
			name: "directory",
			entry: DirectoryEntry{
				Name:       key("DOCS       "),
				Attributes: AttrDirectory,
			},
			wantName:  "DOCS",
			wantMode:  os.ModeDir | 0777,
			wantIsDir: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.entry.FileInfo()
			if got := info.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := info.Size(); got != tt.wantSize {
				t.Errorf("Size() = %v, want %v", got, tt.wantSize)
			}
			if got := info.Mode(); got != tt.wantMode {
				t.Errorf("Mode() = %v, want %v", got, tt.wantMode)
			}
			if got := info.IsDir(); got != tt.wantIsDir {
				t.Errorf("IsDir() = %v, want %v", got, tt.wantIsDir)
			}
			if got := info.ModTime(); !got.Equal(tt.wantModTime) {
				t.Errorf("ModTime() = %v, want %v", got, tt.wantModTime)
			}
			if got, ok := info.Sys().(DirectoryEntry); !ok || got != tt.entry {
				t.Errorf("Sys() = %v, want %v", info.Sys(), tt.entry)
			}
		})
	}
}
