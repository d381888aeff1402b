package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/stratus/pkg/types"
)

// fakeStorage records calls and simulates a bucket's object set.
type fakeStorage struct {
	objects   map[string]types.Asset
	existing  []types.Object
	calls     []string
	listErr   error
	deleteErr error
	putErr    error
}

func newFakeStorage(existing ...string) *fakeStorage {
	f := &fakeStorage{objects: map[string]types.Asset{}}
	for _, key := range existing {
		f.existing = append(f.existing, types.Object{Key: key})
		f.objects[key] = types.Asset{Key: key}
	}
	return f
}

func (f *fakeStorage) EnsureBucket(ctx context.Context, bucket types.Bucket) (bool, error) {
	f.calls = append(f.calls, "EnsureBucket")
	return true, nil
}

func (f *fakeStorage) ConfigureWebsite(ctx context.Context, bucket types.Bucket) error {
	f.calls = append(f.calls, "ConfigureWebsite")
	return nil
}

func (f *fakeStorage) ListObjects(ctx context.Context, bucket, prefix string) ([]types.Object, error) {
	f.calls = append(f.calls, "ListObjects")
	return f.existing, f.listErr
}

func (f *fakeStorage) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	f.calls = append(f.calls, fmt.Sprintf("DeleteObjects(%d)", len(keys)))
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, key := range keys {
		delete(f.objects, key)
	}
	return nil
}

func (f *fakeStorage) PutObject(ctx context.Context, bucket string, asset types.Asset) error {
	f.calls = append(f.calls, "PutObject("+asset.Key+")")
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[asset.Key] = asset
	return nil
}

func (f *fakeStorage) WebsiteEndpoint(bucket, region string) string {
	return bucket + ".s3-website-" + region + ".amazonaws.com"
}

// fakeCDN records invalidation requests.
type fakeCDN struct {
	invalidations [][]string
	invErr        error
}

func (f *fakeCDN) CreateDistribution(ctx context.Context, spec types.DistributionSpec) (*types.Distribution, error) {
	return &types.Distribution{ID: "E2FAKE", DomainName: "d111.cloudfront.net", Status: "InProgress"}, nil
}

func (f *fakeCDN) GetDistribution(ctx context.Context, id string) (*types.Distribution, error) {
	return &types.Distribution{ID: id, Status: "Deployed"}, nil
}

func (f *fakeCDN) Invalidate(ctx context.Context, distributionID string, paths []string) (*types.Invalidation, error) {
	f.invalidations = append(f.invalidations, paths)
	if f.invErr != nil {
		return nil, f.invErr
	}
	return &types.Invalidation{ID: "I1FAKE", Status: "InProgress", Paths: paths, CreatedAt: time.Now()}, nil
}

// writeBuildDir creates a build tree from relative paths.
func writeBuildDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+rel), 0644))
	}
	return dir
}

func TestRun_BucketMatchesBuildDirExactly(t *testing.T) {
	dir := writeBuildDir(t, "a.html", "assets/b.js")
	storage := newFakeStorage("stale/old.js", "index.html")
	cdn := &fakeCDN{}

	d := NewDeployer(storage, cdn, io.Discard)
	summary, err := d.Run(context.Background(), Options{Bucket: "site", BuildDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Deleted)
	assert.Equal(t, 2, summary.Uploaded)

	keys := make([]string, 0, len(storage.objects))
	for key := range storage.objects {
		keys = append(keys, key)
	}
	assert.ElementsMatch(t, []string{"a.html", "assets/b.js"}, keys)
}

func TestRun_DeleteHappensBeforeUpload(t *testing.T) {
	dir := writeBuildDir(t, "index.html")
	storage := newFakeStorage("index.html")

	d := NewDeployer(storage, &fakeCDN{}, io.Discard)
	_, err := d.Run(context.Background(), Options{Bucket: "site", BuildDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"ListObjects", "DeleteObjects(1)", "PutObject(index.html)"}, storage.calls)
}

func TestRun_MissingBuildDirFailsBeforeAnyRemoteCall(t *testing.T) {
	storage := newFakeStorage()
	cdn := &fakeCDN{}

	d := NewDeployer(storage, cdn, io.Discard)
	_, err := d.Run(context.Background(), Options{
		Bucket:         "site",
		BuildDir:       filepath.Join(t.TempDir(), "no-such-dir"),
		DistributionID: "E2FAKE",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "does not exist")
	assert.Empty(t, storage.calls)
	assert.Empty(t, cdn.invalidations)
}

func TestRun_NoDistributionSkipsInvalidation(t *testing.T) {
	dir := writeBuildDir(t, "index.html")
	cdn := &fakeCDN{}

	d := NewDeployer(newFakeStorage(), cdn, io.Discard)
	summary, err := d.Run(context.Background(), Options{Bucket: "site", BuildDir: dir})
	require.NoError(t, err)

	assert.Nil(t, summary.Invalidation)
	assert.Empty(t, cdn.invalidations)
}

func TestRun_InvalidatesAllPaths(t *testing.T) {
	dir := writeBuildDir(t, "index.html", "assets/app.js")
	cdn := &fakeCDN{}

	d := NewDeployer(newFakeStorage(), cdn, io.Discard)
	summary, err := d.Run(context.Background(), Options{
		Bucket:         "site",
		BuildDir:       dir,
		DistributionID: "E2FAKE",
	})
	require.NoError(t, err)

	require.NotNil(t, summary.Invalidation)
	require.Len(t, cdn.invalidations, 1)
	assert.Equal(t, []string{"/*"}, cdn.invalidations[0])
}

func TestRun_EmptyBucketDeleteIsNoOp(t *testing.T) {
	dir := writeBuildDir(t, "index.html")
	storage := newFakeStorage()

	d := NewDeployer(storage, &fakeCDN{}, io.Discard)
	summary, err := d.Run(context.Background(), Options{Bucket: "site", BuildDir: dir})
	require.NoError(t, err)

	assert.Zero(t, summary.Deleted)
	assert.NotContains(t, storage.calls, "DeleteObjects(0)")
}

func TestRun_UploadFailureAbortsRun(t *testing.T) {
	dir := writeBuildDir(t, "a.html", "b.html")
	storage := newFakeStorage()
	storage.putErr = errors.New("access denied")
	cdn := &fakeCDN{}

	d := NewDeployer(storage, cdn, io.Discard)
	_, err := d.Run(context.Background(), Options{
		Bucket:         "site",
		BuildDir:       dir,
		DistributionID: "E2FAKE",
	})

	require.Error(t, err)
	assert.Empty(t, cdn.invalidations)
}

func TestRun_EmptyBuildDirIsAnError(t *testing.T) {
	d := NewDeployer(newFakeStorage(), &fakeCDN{}, io.Discard)
	_, err := d.Run(context.Background(), Options{Bucket: "site", BuildDir: t.TempDir()})
	assert.ErrorContains(t, err, "nothing to deploy")
}

func TestRun_MissingBucketName(t *testing.T) {
	d := NewDeployer(newFakeStorage(), &fakeCDN{}, io.Discard)
	_, err := d.Run(context.Background(), Options{BuildDir: t.TempDir()})
	assert.ErrorContains(t, err, "bucket name is required")
}
