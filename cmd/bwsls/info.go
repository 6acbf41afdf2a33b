package main

import (
	"context"
	"io"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/basewarphq/bwsls/bwhost"
	"github.com/basewarphq/bwsls/bwprovider"
	"github.com/cockroachdb/errors"
)

type InfoCmd struct {
	CheckBucket bool `name:"check-bucket" help:"Verify that the deployment bucket is reachable."`

	out io.Writer `kong:"-"`
}

func (c *InfoCmd) Run(p *bwprovider.Provider, fw *bwhost.Framework) error {
	r := newReporter(c.out)

	profile, ok := p.Profile()
	if !ok {
		profile = "(default chain)"
	}
	bucket, ok := p.DeploymentBucketName()
	if !ok {
		bucket = "(unset)"
	}
	cfnRole, ok := p.CfnRoleArn()
	if !ok {
		cfnRole = "(unset)"
	}

	r.Section(fw.Service.Service)
	r.Table([]string{"SETTING", "VALUE"}, [][]string{
		{"stage", p.Stage()},
		{"region", p.Region()},
		{"profile", profile},
		{"stack", p.StackName()},
		{"bucket", bucket},
		{"cfn-role", cfnRole},
	})

	if tags := p.StackTags(); len(tags) > 0 {
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, tags[k]})
		}
		r.Section("tags")
		r.Table([]string{"KEY", "VALUE"}, rows)
	}

	if !c.CheckBucket {
		return nil
	}
	name, ok := p.DeploymentBucketName()
	if !ok {
		return errors.New("no deployment bucket configured")
	}
	return checkBucket(context.Background(), p, name)
}

func checkBucket(ctx context.Context, p *bwprovider.Provider, name string) error {
	client, err := bwprovider.NewClient(ctx, p, s3.NewFromConfig)
	if err != nil {
		return err
	}
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)}); err != nil {
		return errors.Wrapf(err, "checking deployment bucket %s", name)
	}
	p.Log().Debug("deployment bucket reachable")
	return nil
}
