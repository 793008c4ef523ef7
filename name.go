package fat12

import (
	"fmt"
	"strings"

	"github.com/aligator/fat12/checkpoint"
)

// forbiddenNameChars may not appear in a short name.
const forbiddenNameChars = "\"*+,./:;<=>?[\\]|"

// ShortName builds the 11 byte lookup key for a name like "file.txt":
// both parts are upper cased and padded with spaces to 8 and 3 bytes.
// No long file name shortening (like "~1") is done, too long names are rejected.
func ShortName(name string) ([NameLength]byte, error) {
	var key [NameLength]byte
	for i := range key {
		key[i] = ' '
	}

	base, ext := name, ""
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		base, ext = name[:idx], name[idx+1:]
	}

	if base == "" {
		return key, checkpoint.Wrap(fmt.Errorf("%q has no base name", name), ErrInvalidName)
	}
	if len(base) > 8 || len(ext) > 3 {
		return key, checkpoint.Wrap(fmt.Errorf("%q does not fit into 8.3", name), ErrInvalidName)
	}

	for i, part := range []string{base, ext} {
		offset := i * 8
		for j := 0; j < len(part); j++ {
			c := part[j]
			if c < 0x20 || c > 0x7E || c == ' ' || strings.IndexByte(forbiddenNameChars, c) >= 0 {
				return key, checkpoint.Wrap(fmt.Errorf("%q contains the invalid character %q", name, c), ErrInvalidName)
			}
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			key[offset+j] = c
		}
	}

	return key, nil
}

// RawName copies an already padded on-disk name into a lookup key.
func RawName(name string) ([NameLength]byte, error) {
	var key [NameLength]byte
	if len(name) != NameLength {
		return key, checkpoint.Wrap(fmt.Errorf("%q is %d bytes long, want %d", name, len(name), NameLength), ErrInvalidName)
	}

	copy(key[:], name)
	return key, nil
}
