package fat12

import (
	"os"
	"time"
)

// FileInfo exposes the entry as os.FileInfo. Sys returns a copy of the DirectoryEntry.
func (e *DirectoryEntry) FileInfo() os.FileInfo {
	return entryFileInfo{*e}
}

type entryFileInfo struct {
	entry DirectoryEntry
}

func (i entryFileInfo) Name() string {
	return i.entry.DisplayName()
}

func (i entryFileInfo) Size() int64 {
	return int64(i.entry.Size)
}

func (i entryFileInfo) Mode() os.FileMode {
	mode := os.FileMode(0666)
	if i.entry.Attributes&AttrReadOnly == AttrReadOnly {
		mode = 0444
	}

	if i.IsDir() {
		return mode | os.ModeDir | 0111
	}
	return mode
}

func (i entryFileInfo) ModTime() time.Time {
	return i.entry.ModTime()
}

func (i entryFileInfo) IsDir() bool {
	return i.entry.IsDir()
}

func (i entryFileInfo) Sys() interface{} {
	return i.entry
}
