package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/encode"
	"github.com/crumbware/binarycookies/mapfile"
	"github.com/crumbware/binarycookies/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := renderJSON(args[0])
	if err != nil {
		fatal(err)
	}
	b, err := renderJSON(args[1])
	if err != nil {
		fatal(err)
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	fmt.Fprint(cc.Out, dmp.PatchToText(dmp.PatchMake(a, diffs)))
	return nil
}

// renderJSON decodes path and renders the whole document in memory; diffs
// need both sides complete before comparing.
func renderJSON(path string) (string, error) {
	f, err := mapfile.Open(path)
	if err != nil {
		return "", err
	}
	col := &cookie.Collect{}
	err = parse.Parse(f.Data(), col)
	cerr := f.Close()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if cerr != nil {
		return "", cerr
	}
	buf := &bytes.Buffer{}
	enc := encode.NewEncoder(buf)
	if err := enc.BeginDocument(); err != nil {
		return "", err
	}
	for _, r := range col.Records {
		if err := enc.Cookie(r); err != nil {
			return "", err
		}
	}
	if err := enc.EndDocument(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
