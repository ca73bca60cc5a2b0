package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/encode"
	"github.com/crumbware/binarycookies/mapfile"
	"github.com/crumbware/binarycookies/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump takes exactly one file", cli.ErrUsage)
	}
	return dumpFile(cfg, cc, args[0])
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, path string) error {
	f, err := mapfile.Open(path)
	if err != nil {
		fatal(err)
	}

	// Filtering and YAML output need the full record set; plain JSON
	// streams records as the parser validates them.
	if cfg.Filter != "" || cfg.outFormat().IsYAML() {
		err = dumpBuffered(cfg, cc, f)
	} else {
		err = dumpStreaming(cfg, cc, f)
	}
	if err != nil {
		f.Close()
		fatal(err)
	}
	if err := f.Close(); err != nil {
		fatal(err)
	}
	return nil
}

func dumpStreaming(cfg *DumpConfig, cc *cli.Context, f *mapfile.File) error {
	c, err := parse.New(f.Data())
	if err != nil {
		return err
	}
	enc := encode.NewEncoder(cc.Out, encode.EncodeAtomic(cfg.Atomic))
	if err := enc.BeginDocument(); err != nil {
		return err
	}
	if err := c.Run(enc); err != nil {
		return err
	}
	if err := enc.EndDocument(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}

func dumpBuffered(cfg *DumpConfig, cc *cli.Context, f *mapfile.File) error {
	col := &cookie.Collect{}
	if err := parse.Parse(f.Data(), col); err != nil {
		return err
	}
	records := col.Records
	if cfg.Filter != "" {
		prg, err := compileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: filter: %w", cli.ErrUsage, err)
		}
		records, err = applyFilter(prg, records)
		if err != nil {
			return err
		}
	}
	if cfg.outFormat().IsYAML() {
		return encode.YAML(records, cc.Out)
	}
	enc := encode.NewEncoder(cc.Out)
	if err := enc.BeginDocument(); err != nil {
		return err
	}
	for _, r := range records {
		if err := enc.Cookie(r); err != nil {
			return err
		}
	}
	if err := enc.EndDocument(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cc.Out)
	return err
}
