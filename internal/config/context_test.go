package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stratus.yaml")
	t.Setenv("STRATUS_CONFIG", path)
	return path
}

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentContext)
	assert.NotNil(t, cfg.Contexts)
	assert.Empty(t, cfg.Contexts)
}

func TestAddAndGetContext_RoundTrip(t *testing.T) {
	useTempConfig(t)

	want := &Context{
		Bucket:         "myapp-prod-site",
		Region:         "ap-southeast-1",
		DistributionID: "E2EXAMPLE123",
		BuildDir:       "dist",
		Profile:        "prod-sso",
		SSMPrefix:      "/myapp/prod",
	}
	require.NoError(t, AddContext("prod", want))

	got, err := GetContext("prod")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSetCurrentContext(t *testing.T) {
	useTempConfig(t)

	require.NoError(t, AddContext("staging", &Context{Bucket: "myapp-staging"}))
	require.NoError(t, SetCurrentContext("staging"))

	ctx, name, err := GetCurrentContext()
	require.NoError(t, err)
	assert.Equal(t, "staging", name)
	assert.Equal(t, "myapp-staging", ctx.Bucket)
}

func TestSetCurrentContext_UnknownName(t *testing.T) {
	useTempConfig(t)

	err := SetCurrentContext("nope")
	assert.ErrorContains(t, err, `context "nope" not found`)
}

func TestGetCurrentContext_NoneSet(t *testing.T) {
	useTempConfig(t)

	ctx, name, err := GetCurrentContext()
	require.NoError(t, err)
	assert.Nil(t, ctx)
	assert.Empty(t, name)
}

func TestDeleteContext_ClearsCurrentSelection(t *testing.T) {
	useTempConfig(t)

	require.NoError(t, AddContext("dev", &Context{Bucket: "myapp-dev"}))
	require.NoError(t, SetCurrentContext("dev"))
	require.NoError(t, DeleteContext("dev"))

	ctx, name, err := GetCurrentContext()
	require.NoError(t, err)
	assert.Nil(t, ctx)
	assert.Empty(t, name)
}

func TestUpdateContext_RecordsDistributionID(t *testing.T) {
	useTempConfig(t)

	require.NoError(t, AddContext("prod", &Context{Bucket: "myapp-prod"}))
	require.NoError(t, UpdateContext("prod", func(c *Context) {
		c.DistributionID = "E3NEWDIST456"
	}))

	got, err := GetContext("prod")
	require.NoError(t, err)
	assert.Equal(t, "E3NEWDIST456", got.DistributionID)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}
