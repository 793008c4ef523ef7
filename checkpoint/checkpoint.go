// Package checkpoint decorates errors with the file and line of the call site
// that passed them on, which results in something close to a stack trace for
// failures deep inside the image loading pipeline.
// Every error attached to a checkpoint stays visible to errors.Is and errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// From wraps err in a checkpoint carrying the caller position.
// It returns nil if err is nil.
func From(err error) error {
	if err == nil {
		return nil
	}
	if passThrough(err) {
		return err
	}

	return newCheckpoint(err, nil, 2)
}

// Wrap records a checkpoint for prev and tags it with err, which usually is a
// predefined sentinel describing the failed step:
//  var ErrReadFAT = errors.New("could not read the allocation table")
//
//  func loadFAT() error {
//  	err := readSectors()
//  	return checkpoint.Wrap(err, ErrReadFAT)
//  }
// Both errors.Is(err, ErrReadFAT) and errors.Is for anything in the chain of
// prev succeed afterwards.
// Returns nil if prev is nil. A nil err still creates the checkpoint.
func Wrap(prev, err error) error {
	if prev == nil {
		return nil
	}
	if passThrough(prev) {
		return prev
	}

	return newCheckpoint(prev, err, 2)
}

// passThrough reports errors which callers compare with == and must therefore
// never be wrapped (https://github.com/golang/go/issues/39155).
func passThrough(err error) bool {
	return err == io.EOF
}

func newCheckpoint(prev, err error, skip int) *checkpoint {
	_, file, line, ok := runtime.Caller(skip)

	return &checkpoint{
		err:      err,
		prev:     prev,
		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}
}

type checkpoint struct {
	err  error
	prev error

	callerOk bool
	file     string
	line     int
}

func (e *checkpoint) location() string {
	if !e.callerOk {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", e.file, e.line)
}

func (e *checkpoint) Error() string {
	prevErrString := e.prev.Error()
	if _, ok := e.prev.(*checkpoint); !ok {
		prevErrString = "File: unknown\n\t" + strings.ReplaceAll(prevErrString, "\n", "\n\t")
	}

	if e.err == nil {
		return fmt.Sprintf("File: %s\n%v", e.location(), prevErrString)
	}
	return fmt.Sprintf("File: %s\n\t%v\n%v", e.location(), e.err, prevErrString)
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return e.err != nil && errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return e.err != nil && errors.As(e.err, target)
}
