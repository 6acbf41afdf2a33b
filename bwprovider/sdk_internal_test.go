package bwprovider

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

func TestAssumeRoleOptions(t *testing.T) {
	s := &SDKProvider{now: func() time.Time { return time.Unix(1700000000, 0) }}

	var o stscreds.AssumeRoleOptions
	s.assumeRoleOptions("111111111111")(&o)

	if o.RoleSessionName != "bwsls-1700000000" {
		t.Errorf("RoleSessionName = %q, want %q", o.RoleSessionName, "bwsls-1700000000")
	}
	if aws.ToString(o.ExternalID) != "111111111111" {
		t.Errorf("ExternalID = %q, want %q", aws.ToString(o.ExternalID), "111111111111")
	}

	var noExt stscreds.AssumeRoleOptions
	s.assumeRoleOptions("")(&noExt)
	if noExt.ExternalID != nil {
		t.Errorf("ExternalID = %q, want nil", aws.ToString(noExt.ExternalID))
	}
}

func TestAccountInfoFromIdentity(t *testing.T) {
	info, err := accountInfoFromIdentity(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws-us-gov:sts::123456789012:assumed-role/ci/session"),
		UserId:  aws.String("AROAEXAMPLE:session"),
	})
	if err != nil {
		t.Fatalf("accountInfoFromIdentity() error: %v", err)
	}
	if info.Partition != "aws-us-gov" {
		t.Errorf("Partition = %q, want %q", info.Partition, "aws-us-gov")
	}
	if info.AccountID != "123456789012" || info.UserID != "AROAEXAMPLE:session" {
		t.Errorf("info = %+v", info)
	}
}
