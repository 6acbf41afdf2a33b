package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/basewarphq/bwsls/bwhost"
	"github.com/basewarphq/bwsls/bwprovider"
	"github.com/basewarphq/bwsls/cmd/internal/version"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

type App struct {
	Version kong.VersionFlag `help:"Show version."`
	Config  string           `short:"c" type:"existingfile" help:"Service file. Defaults to the nearest serverless.yml."`
	Stage   string           `short:"s" help:"Deployment stage."`
	Region  string           `short:"r" help:"AWS region."`
	Profile string           `name:"aws-profile" help:"AWS shared config profile."`

	Info        InfoCmd        `cmd:"" help:"Show the resolved deployment settings."`
	Whoami      WhoamiCmd      `cmd:"" help:"Show the AWS identity and deployment environment."`
	PackagePath PackagePathCmd `cmd:"" name:"package-path" help:"Show the artifact deployed for a function."`
}

// runEnv is the host run config taken from the environment.
type runEnv struct {
	Stage   string `env:"BWSLS_STAGE"`
	Region  string `env:"BWSLS_REGION"`
	Profile string `env:"BWSLS_PROFILE"`
}

func (a *App) framework() (*bwhost.Framework, error) {
	path := a.Config
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = bwhost.FindServiceFile(wd); err != nil {
			return nil, err
		}
	}

	svc, err := bwhost.LoadService(path)
	if err != nil {
		return nil, err
	}

	var re runEnv
	if err := env.Parse(&re); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	opts := bwhost.Options{Stage: a.Stage, Region: a.Region, Profile: a.Profile}
	cfg := bwhost.RunConfig{Stage: re.Stage, Region: re.Region, Profile: re.Profile, ServicePath: path}
	return bwhost.NewFramework(svc, opts, cfg, bwhost.NewWriterSink(os.Stderr)), nil
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("bwsls"),
		kong.Description("AWS CDK provider for serverless services."),
		kong.Vars{"version": version.Version},
	)

	fw, err := app.framework()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fw.Options.Function = app.PackagePath.Function

	p, err := bwprovider.New(fw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(p, fw); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
