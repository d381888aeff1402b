package aws

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReadPolicy(t *testing.T) {
	raw, err := PublicReadPolicy("myapp-prod-site")
	require.NoError(t, err)

	var policy struct {
		Version   string
		Statement []struct {
			Sid       string
			Effect    string
			Principal string
			Action    string
			Resource  string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &policy))

	assert.Equal(t, "2012-10-17", policy.Version)
	require.Len(t, policy.Statement, 1)
	assert.Equal(t, "Allow", policy.Statement[0].Effect)
	assert.Equal(t, "*", policy.Statement[0].Principal)
	assert.Equal(t, "s3:GetObject", policy.Statement[0].Action)
	assert.Equal(t, "arn:aws:s3:::myapp-prod-site/*", policy.Statement[0].Resource)
}

func TestWebsiteEndpoint(t *testing.T) {
	p := &S3StorageProvider{}

	assert.Equal(t,
		"myapp-prod-site.s3-website-ap-southeast-1.amazonaws.com",
		p.WebsiteEndpoint("myapp-prod-site", "ap-southeast-1"))
	assert.Equal(t,
		"b.s3-website-us-east-1.amazonaws.com",
		p.WebsiteEndpoint("b", "us-east-1"))
}

func TestChunkKeys(t *testing.T) {
	keys := make([]string, 2500)
	for i := range keys {
		keys[i] = fmt.Sprintf("assets/chunk-%04d.js", i)
	}

	batches := chunkKeys(keys, deleteBatchSize)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[1], 1000)
	assert.Len(t, batches[2], 500)
	assert.Equal(t, keys[0], batches[0][0])
	assert.Equal(t, keys[2499], batches[2][499])
}

func TestChunkKeys_Empty(t *testing.T) {
	assert.Nil(t, chunkKeys(nil, deleteBatchSize))
	assert.Nil(t, chunkKeys([]string{}, deleteBatchSize))
}

func TestChunkKeys_ExactMultiple(t *testing.T) {
	keys := make([]string, 2000)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
	}

	batches := chunkKeys(keys, deleteBatchSize)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[1], 1000)
}
