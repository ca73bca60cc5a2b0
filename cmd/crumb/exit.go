package main

import (
	"errors"

	"github.com/crumbware/binarycookies/cursor"
	"github.com/crumbware/binarycookies/mapfile"
	"github.com/crumbware/binarycookies/parse"
)

// Process exit codes, one per failure class.
const (
	exitOK = iota
	exitBadInvocation
	exitBadOpen
	exitBadClose
	exitBadStat
	exitBadMap
	exitBadUnmap
	exitBadEOF
	exitBadMagic
	exitBadParse
)

// exitCode maps an error to its process status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ioErr *mapfile.Error
	if errors.As(err, &ioErr) {
		switch ioErr.Op {
		case "open":
			return exitBadOpen
		case "close":
			return exitBadClose
		case "stat":
			return exitBadStat
		case "map":
			return exitBadMap
		case "unmap":
			return exitBadUnmap
		}
	}
	switch {
	case errors.Is(err, parse.ErrTruncated), errors.Is(err, cursor.ErrShortData):
		return exitBadEOF
	case errors.Is(err, parse.ErrBadMagic):
		return exitBadMagic
	case errors.Is(err, parse.ErrStructure):
		return exitBadParse
	}
	return exitBadInvocation
}
