package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/vietdv277/stratus/pkg/provider"
)

// SSMParameterStore implements the ParameterStore interface on top of
// SSM Parameter Store. Provisioning outputs (bucket name, region,
// distribution id) are written under a caller-chosen prefix so deploy
// runs can resolve them without local configuration.
type SSMParameterStore struct {
	client *Client
}

// NewParameterStore creates a new SSM-backed parameter store
func NewParameterStore(client *Client) *SSMParameterStore {
	return &SSMParameterStore{client: client}
}

// Get returns a parameter value, or provider.ErrNotFound
func (p *SSMParameterStore) Get(ctx context.Context, name string) (string, error) {
	output, err := p.client.SSM.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(name),
	})
	if err != nil {
		var notFound *ssmtypes.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", provider.ErrNotFound
		}
		return "", fmt.Errorf("failed to get parameter %s: %w", name, err)
	}

	if output.Parameter == nil {
		return "", provider.ErrNotFound
	}
	return deref(output.Parameter.Value), nil
}

// Set creates or updates a parameter
func (p *SSMParameterStore) Set(ctx context.Context, name, value string) error {
	_, err := p.client.SSM.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(value),
		Type:      ssmtypes.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to put parameter %s: %w", name, err)
	}
	return nil
}
