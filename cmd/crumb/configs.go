package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/crumbware/binarycookies/format"
)

type MainConfig struct {
	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// outFormat resolves the output format, defaulting to JSON.
func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

type DumpConfig struct {
	*MainConfig

	Atomic bool   `cli:"name=atomic desc='write the document only after the archive fully validates'"`
	Filter string `cli:"name=filter desc='keep only cookies matching this expression'"`

	Dump *cli.Command
}

type VerifyConfig struct {
	*MainConfig

	Verify *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
