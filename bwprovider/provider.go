package bwprovider

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/basewarphq/bwsls/bwhost"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// ProviderName is the name the adapter registers under with the host.
	ProviderName = "aws-cdk"
	// OutputDirGlob is excluded from service packages. It matches the CDK
	// synthesis output directory.
	OutputDirGlob = "cdk.out/**"
)

// Provider resolves deployment settings for a service and hands out AWS
// configurations for the sibling deploy commands.
type Provider struct {
	fw      *bwhost.Framework
	log     Logger
	sdkOpts []SDKOption

	sdk *SDKProvider
}

type providerOptions struct {
	logger  Logger
	sdkOpts []SDKOption
}

// Option configures a Provider.
type Option func(*providerOptions)

// WithLogger replaces the logger derived from SLS_DEBUG.
func WithLogger(l Logger) Option {
	return func(o *providerOptions) {
		o.logger = l
	}
}

// WithSDKOptions configures the SDKProvider created on first use.
func WithSDKOptions(opts ...SDKOption) Option {
	return func(o *providerOptions) {
		o.sdkOpts = append(o.sdkOpts, opts...)
	}
}

// New creates the adapter, registers it with the framework's provider registry
// and excludes the CDK output directory from packaging.
func New(fw *bwhost.Framework, opts ...Option) (*Provider, error) {
	if fw == nil || fw.Service == nil {
		return nil, errors.New("bwprovider: framework has no service loaded")
	}
	if name := fw.Service.Provider.Name; name != "" && name != ProviderName {
		return nil, errors.Newf("service provider is %q, expected %q", name, ProviderName)
	}
	if err := fw.Service.Validate(); err != nil {
		return nil, err
	}

	options := &providerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		var err error
		if logger, err = setupLogging(fw.Log); err != nil {
			return nil, err
		}
	}

	p := &Provider{
		fw:      fw,
		log:     logger,
		sdkOpts: options.sdkOpts,
	}

	fw.Registry.Register(ProviderName, p)
	if !slices.Contains(fw.Service.Package.Exclude, OutputDirGlob) {
		fw.Service.Package.Exclude = append(fw.Service.Package.Exclude, OutputDirGlob)
	}

	p.log.Trace("provider registered",
		zap.String("service", fw.Service.Service),
		zap.String("stage", p.Stage()),
		zap.String("region", p.Region()))
	return p, nil
}

// Log returns the adapter's logger.
func (p *Provider) Log() Logger {
	return p.log
}

// SDKProvider returns the run's SDK provider, creating it on first use.
func (p *Provider) SDKProvider(ctx context.Context) (*SDKProvider, error) {
	if p.sdk != nil {
		return p.sdk, nil
	}

	profile, _ := p.Profile()
	p.log.Debug("creating SDK provider", zap.String("profile", profile), zap.String("region", p.Region()))

	sdk, err := NewSDKProvider(ctx, profile, p.Region(), p.sdkOpts...)
	if err != nil {
		return nil, err
	}
	p.sdk = sdk
	return sdk, nil
}

// SDK returns an AWS configuration for deploying the service. With a
// deployment role configured the role is assumed in the resolved region;
// otherwise the run's credentials are scoped to the environment for writing.
func (p *Provider) SDK(ctx context.Context) (aws.Config, error) {
	sdk, err := p.SDKProvider(ctx)
	if err != nil {
		return aws.Config{}, err
	}

	if role := p.fw.Service.Provider.DeploymentRole; role != "" {
		info, err := sdk.DefaultAccount(ctx)
		if err != nil {
			return aws.Config{}, err
		}
		p.log.Debug("assuming deployment role", zap.String("role", role), zap.String("account", info.AccountID))
		return sdk.WithAssumedRole(ctx, role, info.AccountID, p.Region())
	}

	env, err := p.Environment(ctx)
	if err != nil {
		return aws.Config{}, err
	}
	p.log.Trace("session for environment",
		zap.String("stage", env.Name), zap.String("account", env.Account), zap.String("region", env.Region))
	return sdk.ForEnvironment(ctx, env, ForWriting)
}

// NewClient builds an AWS service client from the provider's SDK
// configuration:
//
//	s3c, err := bwprovider.NewClient(ctx, p, s3.NewFromConfig)
func NewClient[T, O any](
	ctx context.Context, p *Provider, factory func(aws.Config, ...func(*O)) *T, optFns ...func(*O),
) (*T, error) {
	cfg, err := p.SDK(ctx)
	if err != nil {
		return nil, err
	}
	return factory(cfg, optFns...), nil
}
