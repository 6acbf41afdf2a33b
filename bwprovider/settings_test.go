package bwprovider_test

import (
	"testing"

	"github.com/basewarphq/bwsls/bwhost"
	"github.com/basewarphq/bwsls/bwprovider"
)

func TestResolve_Precedence(t *testing.T) {
	t.Setenv("SLS_DEBUG", "")

	tests := []struct {
		name        string
		opts        bwhost.Options
		cfg         bwhost.RunConfig
		prov        bwhost.ProviderConfig
		wantStage   string
		wantRegion  string
		wantProfile string
		wantHasProf bool
	}{
		{
			name:       "all unset uses defaults",
			wantStage:  "dev",
			wantRegion: "us-east-1",
		},
		{
			name:        "service provider config only",
			prov:        bwhost.ProviderConfig{Stage: "prod", Region: "eu-west-1", Profile: "svc"},
			wantStage:   "prod",
			wantRegion:  "eu-west-1",
			wantProfile: "svc",
			wantHasProf: true,
		},
		{
			name:        "run config beats service config",
			cfg:         bwhost.RunConfig{Stage: "stag", Region: "eu-central-1", Profile: "run"},
			prov:        bwhost.ProviderConfig{Stage: "prod", Region: "eu-west-1", Profile: "svc"},
			wantStage:   "stag",
			wantRegion:  "eu-central-1",
			wantProfile: "run",
			wantHasProf: true,
		},
		{
			name:        "cli option beats everything",
			opts:        bwhost.Options{Stage: "qa", Region: "ap-south-1", Profile: "cli"},
			cfg:         bwhost.RunConfig{Stage: "stag", Region: "eu-central-1", Profile: "run"},
			prov:        bwhost.ProviderConfig{Stage: "prod", Region: "eu-west-1", Profile: "svc"},
			wantStage:   "qa",
			wantRegion:  "ap-south-1",
			wantProfile: "cli",
			wantHasProf: true,
		},
		{
			name:        "settings resolve independently",
			opts:        bwhost.Options{Region: "ap-south-1"},
			cfg:         bwhost.RunConfig{Profile: "run"},
			prov:        bwhost.ProviderConfig{Stage: "prod"},
			wantStage:   "prod",
			wantRegion:  "ap-south-1",
			wantProfile: "run",
			wantHasProf: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &bwhost.Service{Service: "svc", Provider: tt.prov}
			fw := bwhost.NewFramework(svc, tt.opts, tt.cfg, nil)
			p := newProvider(t, fw)

			if got := p.Stage(); got != tt.wantStage {
				t.Errorf("Stage() = %q, want %q", got, tt.wantStage)
			}
			if got := p.Region(); got != tt.wantRegion {
				t.Errorf("Region() = %q, want %q", got, tt.wantRegion)
			}
			gotProf, gotHas := p.Profile()
			if gotProf != tt.wantProfile || gotHas != tt.wantHasProf {
				t.Errorf("Profile() = (%q, %v), want (%q, %v)", gotProf, gotHas, tt.wantProfile, tt.wantHasProf)
			}
		})
	}
}

func TestResolve_UnknownSetting(t *testing.T) {
	t.Setenv("SLS_DEBUG", "")
	p := newProvider(t, newFramework(&bwhost.Service{Service: "svc"}))

	if _, _, err := p.Resolve(bwprovider.Setting("color")); err == nil {
		t.Fatal("expected error for unknown setting")
	}

	v, ok, err := p.Resolve(bwprovider.SettingRegion)
	if err != nil || !ok || v != bwprovider.DefaultRegion {
		t.Errorf("Resolve(region) = (%q, %v, %v)", v, ok, err)
	}
}
