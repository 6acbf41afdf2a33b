package main

import (
	"io"

	"github.com/basewarphq/bwsls/bwprovider"
)

type PackagePathCmd struct {
	Function string `arg:"" help:"Function name as declared in the service file."`

	out io.Writer `kong:"-"`
}

func (c *PackagePathCmd) Run(p *bwprovider.Provider) error {
	path, err := p.FunctionZipPath(c.Function)
	if err != nil {
		return err
	}
	newReporter(c.out).Line(path)
	return nil
}
