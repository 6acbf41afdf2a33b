package bwprovider

import (
	"context"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// AccountInfo identifies the principal behind the current credentials.
type AccountInfo struct {
	AccountID string
	Partition string
	ARN       string
	UserID    string
}

// Environment is the deployment target: a stage in an account and region.
type Environment struct {
	Name    string
	Account string
	Region  string
}

// CDKEnvironment returns the environment in the form CDK stacks expect.
func (e Environment) CDKEnvironment() *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(e.Account),
		Region:  jsii.String(e.Region),
	}
}

// AccountInfo looks up the caller identity of the run's credentials.
func (p *Provider) AccountInfo(ctx context.Context) (AccountInfo, error) {
	sdk, err := p.SDKProvider(ctx)
	if err != nil {
		return AccountInfo{}, err
	}
	return sdk.DefaultAccount(ctx)
}

// Environment returns the deployment target for the resolved stage and region.
func (p *Provider) Environment(ctx context.Context) (Environment, error) {
	info, err := p.AccountInfo(ctx)
	if err != nil {
		return Environment{}, err
	}
	return Environment{
		Name:    p.Stage(),
		Account: info.AccountID,
		Region:  p.Region(),
	}, nil
}
