package bwprovider

import (
	"github.com/cockroachdb/errors"
)

// Setting names a value resolved through a source chain.
type Setting string

const (
	SettingStage   Setting = "stage"
	SettingRegion  Setting = "region"
	SettingProfile Setting = "profile"
)

const (
	DefaultStage  = "dev"
	DefaultRegion = "us-east-1"
)

// source returns a candidate value for a setting. An empty string means the
// source does not set it.
type source func() string

type chain struct {
	sources []source
	def     string
}

func (c chain) resolve() (string, bool) {
	for _, src := range c.sources {
		if v := src(); v != "" {
			return v, true
		}
	}
	if c.def != "" {
		return c.def, true
	}
	return "", false
}

// chains builds the fixed lookup order for each setting: command line option,
// then the host run config, then the provider section of the service file.
func (p *Provider) chains() map[Setting]chain {
	opts, cfg, prov := &p.fw.Options, &p.fw.Config, &p.fw.Service.Provider
	return map[Setting]chain{
		SettingStage: {
			sources: []source{
				func() string { return opts.Stage },
				func() string { return cfg.Stage },
				func() string { return prov.Stage },
			},
			def: DefaultStage,
		},
		SettingRegion: {
			sources: []source{
				func() string { return opts.Region },
				func() string { return cfg.Region },
				func() string { return prov.Region },
			},
			def: DefaultRegion,
		},
		SettingProfile: {
			sources: []source{
				func() string { return opts.Profile },
				func() string { return cfg.Profile },
				func() string { return prov.Profile },
			},
		},
	}
}

// Resolve returns the first value set for the setting, falling back to its
// default. The boolean is false only when no source sets the value and the
// setting has no default.
func (p *Provider) Resolve(setting Setting) (string, bool, error) {
	c, ok := p.chains()[setting]
	if !ok {
		return "", false, errors.Newf("unknown setting %q", setting)
	}
	v, ok := c.resolve()
	return v, ok, nil
}

func (p *Provider) mustResolve(setting Setting) (string, bool) {
	v, ok, err := p.Resolve(setting)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// Stage returns the deployment stage, "dev" when unset.
func (p *Provider) Stage() string {
	v, _ := p.mustResolve(SettingStage)
	return v
}

// Region returns the AWS region, "us-east-1" when unset.
func (p *Provider) Region() string {
	v, _ := p.mustResolve(SettingRegion)
	return v
}

// Profile returns the AWS shared config profile. When unset the default
// credential chain is used.
func (p *Provider) Profile() (string, bool) {
	return p.mustResolve(SettingProfile)
}
