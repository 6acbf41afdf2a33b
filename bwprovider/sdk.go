package bwprovider

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/trace"
)

// Mode selects what a session will be used for.
type Mode int

const (
	// ForReading sessions may be used for lookups only.
	ForReading Mode = iota
	// ForWriting sessions must hold credentials for the target account.
	ForWriting
)

func (m Mode) String() string {
	switch m {
	case ForReading:
		return "reading"
	case ForWriting:
		return "writing"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// IdentityAPI is the part of the STS client used to look up the caller.
type IdentityAPI interface {
	GetCallerIdentity(
		ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

const roleSessionPrefix = "bwsls-"

// SDKProvider owns credential resolution for a run. It is created from either
// a shared config profile or the default credential chain.
type SDKProvider struct {
	base    aws.Config
	profile string

	newIdentityClient   func(aws.Config) IdentityAPI
	newAssumeRoleClient func(aws.Config) stscreds.AssumeRoleAPIClient
	now                 func() time.Time

	account *AccountInfo
}

type sdkOptions struct {
	loadOptions         []func(*awsconfig.LoadOptions) error
	tracerProvider      trace.TracerProvider
	newIdentityClient   func(aws.Config) IdentityAPI
	newAssumeRoleClient func(aws.Config) stscreds.AssumeRoleAPIClient
}

// SDKOption configures an SDKProvider.
type SDKOption func(*sdkOptions)

// WithLoadOptions passes extra options to the AWS config loader.
func WithLoadOptions(opts ...func(*awsconfig.LoadOptions) error) SDKOption {
	return func(o *sdkOptions) {
		o.loadOptions = append(o.loadOptions, opts...)
	}
}

// WithTracerProvider instruments every SDK call with OpenTelemetry spans from tp.
func WithTracerProvider(tp trace.TracerProvider) SDKOption {
	return func(o *sdkOptions) {
		o.tracerProvider = tp
	}
}

// WithIdentityClient replaces the STS client used for caller lookups.
func WithIdentityClient(fn func(aws.Config) IdentityAPI) SDKOption {
	return func(o *sdkOptions) {
		o.newIdentityClient = fn
	}
}

// WithAssumeRoleClient replaces the STS client used for role assumption.
func WithAssumeRoleClient(fn func(aws.Config) stscreds.AssumeRoleAPIClient) SDKOption {
	return func(o *sdkOptions) {
		o.newAssumeRoleClient = fn
	}
}

// NewSDKProvider loads the base AWS configuration. An empty profile selects
// the default credential chain (environment, shared config, IMDS).
func NewSDKProvider(ctx context.Context, profile, region string, opts ...SDKOption) (*SDKProvider, error) {
	options := &sdkOptions{
		newIdentityClient: func(cfg aws.Config) IdentityAPI {
			return sts.NewFromConfig(cfg)
		},
		newAssumeRoleClient: func(cfg aws.Config) stscreds.AssumeRoleAPIClient {
			return sts.NewFromConfig(cfg)
		},
	}
	for _, opt := range opts {
		opt(options)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}
	loadOpts = append(loadOpts, options.loadOptions...)

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &AuthenticationError{Op: "loading AWS config", Profile: profile, Err: err}
	}
	if options.tracerProvider != nil {
		otelaws.AppendMiddlewares(&cfg.APIOptions, otelaws.WithTracerProvider(options.tracerProvider))
	}

	return &SDKProvider{
		base:                cfg,
		profile:             profile,
		newIdentityClient:   options.newIdentityClient,
		newAssumeRoleClient: options.newAssumeRoleClient,
		now:                 time.Now,
	}, nil
}

// Profile returns the shared config profile the provider was created with.
func (s *SDKProvider) Profile() string {
	return s.profile
}

// BaseConfig returns a copy of the configuration loaded at construction.
func (s *SDKProvider) BaseConfig() aws.Config {
	return s.base.Copy()
}

// DefaultAccount returns the identity behind the provider's credentials. The
// first successful lookup is reused for the lifetime of the provider.
func (s *SDKProvider) DefaultAccount(ctx context.Context) (AccountInfo, error) {
	if s.account != nil {
		return *s.account, nil
	}

	out, err := s.newIdentityClient(s.base).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return AccountInfo{}, &AuthenticationError{Op: "sts:GetCallerIdentity", Profile: s.profile, Err: err}
	}

	info, err := accountInfoFromIdentity(out)
	if err != nil {
		return AccountInfo{}, err
	}
	s.account = &info
	return info, nil
}

// ForEnvironment returns a configuration scoped to the environment's region.
// Sessions for writing are checked against the environment's account.
func (s *SDKProvider) ForEnvironment(ctx context.Context, env Environment, mode Mode) (aws.Config, error) {
	cfg := s.base.Copy()
	if env.Region != "" {
		cfg.Region = env.Region
	}
	if mode != ForWriting || env.Account == "" {
		return cfg, nil
	}

	info, err := s.DefaultAccount(ctx)
	if err != nil {
		return aws.Config{}, err
	}
	if info.AccountID != env.Account {
		return aws.Config{}, &AuthenticationError{
			Op:      "session for " + mode.String(),
			Profile: s.profile,
			Err: errors.Newf("need credentials for account %s, but the current credentials are for %s",
				env.Account, info.AccountID),
		}
	}
	return cfg, nil
}

// WithAssumedRole returns a configuration whose credentials come from
// assuming roleARN. The role is assumed once up front so that rejected
// credentials surface here rather than on first use.
func (s *SDKProvider) WithAssumedRole(ctx context.Context, roleARN, externalID, region string) (aws.Config, error) {
	cfg := s.base.Copy()
	if region != "" {
		cfg.Region = region
	}

	client := s.newAssumeRoleClient(cfg)
	cfg.Credentials = aws.NewCredentialsCache(
		stscreds.NewAssumeRoleProvider(client, roleARN, s.assumeRoleOptions(externalID)))

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, &AuthenticationError{Op: "sts:AssumeRole " + roleARN, Profile: s.profile, Err: err}
	}
	return cfg, nil
}

func (s *SDKProvider) assumeRoleOptions(externalID string) func(*stscreds.AssumeRoleOptions) {
	return func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = roleSessionPrefix + strconv.FormatInt(s.now().Unix(), 10)
		if externalID != "" {
			o.ExternalID = aws.String(externalID)
		}
	}
}

func accountInfoFromIdentity(out *sts.GetCallerIdentityOutput) (AccountInfo, error) {
	arn := aws.ToString(out.Arn)
	parts := strings.Split(arn, ":")
	if len(parts) < 2 {
		return AccountInfo{}, errors.Newf("unexpected ARN format: %s", arn)
	}
	return AccountInfo{
		AccountID: aws.ToString(out.Account),
		Partition: parts[1],
		ARN:       arn,
		UserID:    aws.ToString(out.UserId),
	}, nil
}
