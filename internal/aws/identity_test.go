package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
)

func TestToCallerIdentity(t *testing.T) {
	got := toCallerIdentity(&sts.GetCallerIdentityOutput{
		Account: awssdk.String("123456789012"),
		Arn:     awssdk.String("arn:aws:iam::123456789012:user/deployer"),
		UserId:  awssdk.String("AIDAEXAMPLE"),
	})

	assert.Equal(t, "123456789012", got.Account)
	assert.Equal(t, "arn:aws:iam::123456789012:user/deployer", got.Arn)
	assert.Equal(t, "AIDAEXAMPLE", got.UserID)
}

func TestToCallerIdentity_NilFields(t *testing.T) {
	got := toCallerIdentity(&sts.GetCallerIdentityOutput{})

	assert.Empty(t, got.Account)
	assert.Empty(t, got.Arn)
	assert.Empty(t, got.UserID)
}
