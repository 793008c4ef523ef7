package fat12

import "errors"

// Kinds of failures. Check for them with errors.Is.
var (
	ErrIO              = errors.New("could not read from the disk image")
	ErrNotFound        = errors.New("no such directory entry")
	ErrInvalidGeometry = errors.New("invalid volume geometry")
	ErrInvalidName     = errors.New("invalid 8.3 name")
)

// These errors name the stage of the load pipeline which failed.
var (
	ErrOpenImage            = errors.New("could not open the disk image")
	ErrReadBootSector       = errors.New("could not read boot sector")
	ErrReadFAT              = errors.New("could not read file allocation table")
	ErrReadRootDirectory    = errors.New("could not read root directory")
	ErrSessionClosed        = errors.New("session already closed")
	errUnsupportedSectorLen = errors.New("sector size is no multiple of the directory entry size")
)
