package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/mapfile"
	"github.com/crumbware/binarycookies/parse"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: verify takes at least one file", cli.ErrUsage)
	}
	for _, path := range args {
		verifyFile(cc, path)
	}
	return nil
}

func verifyFile(cc *cli.Context, path string) {
	f, err := mapfile.Open(path)
	if err != nil {
		fatal(err)
	}
	if err := parse.Parse(f.Data(), cookie.Discard); err != nil {
		f.Close()
		fatal(fmt.Errorf("%s: %w", path, err))
	}
	if err := f.Close(); err != nil {
		fatal(err)
	}
	fmt.Fprintf(cc.Out, "OK %s\n", path)
}
