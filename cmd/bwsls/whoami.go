package main

import (
	"context"
	"io"

	"github.com/basewarphq/bwsls/bwprovider"
)

type WhoamiCmd struct {
	out io.Writer `kong:"-"`
}

func (c *WhoamiCmd) Run(p *bwprovider.Provider) error {
	ctx := context.Background()

	info, err := p.AccountInfo(ctx)
	if err != nil {
		return err
	}
	env, err := p.Environment(ctx)
	if err != nil {
		return err
	}

	r := newReporter(c.out)
	r.Section("identity")
	r.Table([]string{"ACCOUNT", "PARTITION", "ARN", "USER"}, [][]string{
		{info.AccountID, info.Partition, info.ARN, info.UserID},
	})
	r.Section("environment")
	r.Table([]string{"NAME", "ACCOUNT", "REGION"}, [][]string{
		{env.Name, env.Account, env.Region},
	})
	return nil
}
