// Package binarycookies decodes the binary container format web browsers
// use to persist cookies (Cookies.binarycookies) into structured records
// and renders them as JSON.
//
// The subpackages do the work: parse validates and walks the container,
// cookie holds the record model, encode renders records, cursor reads raw
// bytes, and mapfile obtains the input buffer. This package is the
// convenience front door.
package binarycookies

import (
	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/parse"
)

// Decode validates data as a complete binarycookies container and returns
// every record in file order. The whole buffer must be present up front;
// the format cannot be decoded incrementally because the checksum and
// trailer close over all pages.
func Decode(data []byte) ([]*cookie.Record, error) {
	col := &cookie.Collect{}
	if err := parse.Parse(data, col); err != nil {
		return nil, err
	}
	return col.Records, nil
}
