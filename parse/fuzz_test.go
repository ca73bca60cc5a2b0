package parse

import (
	"errors"
	"testing"

	"github.com/crumbware/binarycookies/cookie"
)

// FuzzParse checks that arbitrary input never panics and never produces an
// error outside the declared sentinel classes.
func FuzzParse(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("cook"))
	f.Add(buildContainer())
	f.Add(buildContainer(buildPage(testCookie{version: 1, domain: "a", name: "b"}.bytes())))
	f.Add(buildContainerTrailer([]byte("tail"), buildPage(testCookie{
		flags:  5,
		domain: "example.com",
		value:  "v",
		expiry: 978307200,
	}.bytes())))
	valid := buildContainer(buildPage(testCookie{domain: "fuzz.example"}.bytes()))
	f.Add(valid[:len(valid)/2])

	f.Fuzz(func(t *testing.T, data []byte) {
		err := Parse(data, cookie.Discard)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrTruncated) && !errors.Is(err, ErrBadMagic) && !errors.Is(err, ErrStructure) {
			t.Fatalf("error outside sentinel classes: %v", err)
		}
	})
}
