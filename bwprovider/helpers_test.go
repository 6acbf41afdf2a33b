package bwprovider_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/basewarphq/bwsls/bwhost"
	"github.com/basewarphq/bwsls/bwprovider"
)

type recordingSink struct {
	lines []string
}

func (s *recordingSink) Log(msg string) {
	s.lines = append(s.lines, msg)
}

type fakeIdentity struct {
	out   *sts.GetCallerIdentityOutput
	err   error
	calls int
}

func (f *fakeIdentity) GetCallerIdentity(
	_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func identityFor(account string) *fakeIdentity {
	return &fakeIdentity{out: &sts.GetCallerIdentityOutput{
		Account: aws.String(account),
		Arn:     aws.String("arn:aws:iam::" + account + ":user/deployer"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}}
}

type fakeAssumeRole struct {
	in  *sts.AssumeRoleInput
	err error
}

func (f *fakeAssumeRole) AssumeRole(
	_ context.Context, in *sts.AssumeRoleInput, _ ...func(*sts.Options),
) (*sts.AssumeRoleOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &sts.AssumeRoleOutput{
		AssumedRoleUser: &types.AssumedRoleUser{
			Arn:           aws.String("arn:aws:sts::222222222222:assumed-role/deploy/session"),
			AssumedRoleId: aws.String("AROAEXAMPLE:session"),
		},
		Credentials: &types.Credentials{
			AccessKeyId:     aws.String("ASIAASSUMED"),
			SecretAccessKey: aws.String("assumed-secret"),
			SessionToken:    aws.String("assumed-token"),
			Expiration:      aws.Time(time.Now().Add(time.Hour)),
		},
	}, nil
}

// isolateAWSEnv keeps tests away from the developer's AWS configuration and
// supplies static credentials.
func isolateAWSEnv(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("SLS_DEBUG", "")
	unsetenv(t, "BWSLS_LOG_LEVEL")
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetting %s: %v", key, err)
	}
}

func newFramework(svc *bwhost.Service) *bwhost.Framework {
	return bwhost.NewFramework(svc, bwhost.Options{}, bwhost.RunConfig{}, nil)
}

func newProvider(t *testing.T, fw *bwhost.Framework, opts ...bwprovider.Option) *bwprovider.Provider {
	t.Helper()

	p, err := bwprovider.New(fw, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return p
}

func withFakeSTS(ident *fakeIdentity, assume *fakeAssumeRole) bwprovider.Option {
	return bwprovider.WithSDKOptions(
		bwprovider.WithIdentityClient(func(aws.Config) bwprovider.IdentityAPI { return ident }),
		bwprovider.WithAssumeRoleClient(func(aws.Config) stscreds.AssumeRoleAPIClient { return assume }),
	)
}
