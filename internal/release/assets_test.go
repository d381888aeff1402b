package release

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"index.html", "text/html; charset=utf-8"},
		{"assets/app.6f3a.js", "application/javascript"},
		{"assets/style.css", "text/css; charset=utf-8"},
		{"assets/app.js.map", "application/json"},
		{"logo.svg", "image/svg+xml"},
		{"favicon.ico", "image/x-icon"},
		{"fonts/inter.woff2", "font/woff2"},
		{"manifest.webmanifest", "application/manifest+json"},
		{"IMG.PNG", "image/png"}, // extension match is case-insensitive
		{"binary.datafile", "application/octet-stream"},
		{"no-extension", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentTypeFor(tt.name), tt.name)
	}
}

func TestCacheControlFor(t *testing.T) {
	assert.Equal(t, CacheImmutable, CacheControlFor("assets/app.6f3a.js"))
	assert.Equal(t, CacheImmutable, CacheControlFor("assets/fonts/inter.woff2"))

	assert.Equal(t, CacheNoStore, CacheControlFor("index.html"))
	assert.Equal(t, CacheNoStore, CacheControlFor("favicon.ico"))
	assert.Equal(t, CacheNoStore, CacheControlFor("static/app.js"))
	// only the top-level assets prefix qualifies
	assert.Equal(t, CacheNoStore, CacheControlFor("nested/assets/app.js"))
}

func TestCollectAssets(t *testing.T) {
	dir := writeBuildDir(t, "index.html", "assets/app.js", "assets/img/logo.png")

	assets, err := CollectAssets(dir)
	require.NoError(t, err)
	require.Len(t, assets, 3)

	// sorted by key
	assert.Equal(t, "assets/app.js", assets[0].Key)
	assert.Equal(t, "assets/img/logo.png", assets[1].Key)
	assert.Equal(t, "index.html", assets[2].Key)

	for _, a := range assets {
		assert.Equal(t, filepath.Join(dir, filepath.FromSlash(a.Key)), a.Path)
		assert.Positive(t, a.Size)
	}

	assert.Equal(t, CacheImmutable, assets[0].CacheControl)
	assert.Equal(t, CacheNoStore, assets[2].CacheControl)
	assert.Equal(t, "application/javascript", assets[0].ContentType)
	assert.Equal(t, "text/html; charset=utf-8", assets[2].ContentType)
}

func TestCollectAssets_MissingDir(t *testing.T) {
	_, err := CollectAssets(filepath.Join(t.TempDir(), "dist"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestCollectAssets_NotADirectory(t *testing.T) {
	dir := writeBuildDir(t, "index.html")
	_, err := CollectAssets(filepath.Join(dir, "index.html"))
	assert.ErrorContains(t, err, "not a directory")
}

func TestCollectAssets_EmptyDir(t *testing.T) {
	assets, err := CollectAssets(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, assets)
}
