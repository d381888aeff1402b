package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietdv277/stratus/pkg/provider"
)

type fakeParams struct {
	values map[string]string
	gets   []string
}

func (f *fakeParams) Get(ctx context.Context, name string) (string, error) {
	f.gets = append(f.gets, name)
	v, ok := f.values[name]
	if !ok {
		return "", provider.ErrNotFound
	}
	return v, nil
}

func (f *fakeParams) Set(ctx context.Context, name, value string) error {
	f.values[name] = value
	return nil
}

func TestFillFromParameterStore_ResolvesMissingSettings(t *testing.T) {
	params := &fakeParams{values: map[string]string{
		"/myapp/prod/bucket":          "myapp-prod-site",
		"/myapp/prod/distribution-id": "E2RECORDED",
	}}
	s := &siteSettings{SSMPrefix: "/myapp/prod"}

	fillFromParameterStore(context.Background(), params, s)

	assert.Equal(t, "myapp-prod-site", s.Bucket)
	assert.Equal(t, "E2RECORDED", s.DistributionID)
}

func TestFillFromParameterStore_KeepsExplicitSettings(t *testing.T) {
	params := &fakeParams{values: map[string]string{
		"/myapp/prod/bucket":          "recorded-bucket",
		"/myapp/prod/distribution-id": "E2RECORDED",
	}}
	s := &siteSettings{
		SSMPrefix:      "/myapp/prod",
		Bucket:         "flag-bucket",
		DistributionID: "E2FLAG",
	}

	fillFromParameterStore(context.Background(), params, s)

	assert.Equal(t, "flag-bucket", s.Bucket)
	assert.Equal(t, "E2FLAG", s.DistributionID)
	assert.Empty(t, params.gets)
}

func TestFillFromParameterStore_NoPrefixIsANoOp(t *testing.T) {
	params := &fakeParams{values: map[string]string{}}
	s := &siteSettings{}

	fillFromParameterStore(context.Background(), params, s)

	assert.Empty(t, s.Bucket)
	assert.Empty(t, params.gets)
}

func TestFillFromParameterStore_MissingParametersLeaveSettingsEmpty(t *testing.T) {
	params := &fakeParams{values: map[string]string{}}
	s := &siteSettings{SSMPrefix: "/myapp/prod"}

	fillFromParameterStore(context.Background(), params, s)

	assert.Empty(t, s.Bucket)
	assert.Empty(t, s.DistributionID)
}
