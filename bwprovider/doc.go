// Package bwprovider is the AWS CDK provider adapter for the deployment
// framework modelled by [bwhost].
//
// # Overview
//
// The adapter resolves deployment settings for a service and hands out AWS SDK
// configurations to the commands that synthesize and deploy CDK stacks. It is
// created once per run and registers itself under [ProviderName]:
//
//	p, err := bwprovider.New(fw)
//	if err != nil {
//	    return err
//	}
//	env, err := p.Environment(ctx)  // stage, account and region
//	cfg, err := p.SDK(ctx)          // aws.Config ready for deploying
//
// # Settings
//
// Stage, region and profile are looked up in a fixed order: command line
// option, host run config, provider section of the service file. The first
// non-empty value wins.
//
//	| Setting | Default   | Service file key   |
//	|---------|-----------|--------------------|
//	| stage   | dev       | provider.stage     |
//	| region  | us-east-1 | provider.region    |
//	| profile | (none)    | provider.profile   |
//
// Without a profile the default AWS credential chain is used.
//
// # Credentials
//
// The [SDKProvider] is created on first use and kept for the rest of the run.
// When provider.deploymentRole is set, [Provider.SDK] assumes that role;
// otherwise it checks that the run's credentials belong to the target account.
// Failures are reported as [*AuthenticationError].
//
// # Logging
//
// Log output goes to the host's log sink. Trace and debug output is only
// forwarded when SLS_DEBUG is set; otherwise BWSLS_LOG_LEVEL applies (warn by
// default).
package bwprovider
