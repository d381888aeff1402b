package release

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

// Cache-control directives. Fingerprinted bundles under the assets prefix
// never change, so they get the one-year immutable directive; everything
// else (index.html and friends) must be revalidated on every release.
const (
	CacheImmutable = "public, max-age=31536000, immutable"
	CacheNoStore   = "no-cache, no-store, must-revalidate"
)

// assetsPrefix marks fingerprinted build output
const assetsPrefix = "assets/"

// contentTypes covers the extensions a SPA build emits. mime.TypeByExtension
// depends on the host's mime.types, so the common ones are pinned here.
var contentTypes = map[string]string{
	".html":        "text/html; charset=utf-8",
	".css":         "text/css; charset=utf-8",
	".js":          "application/javascript",
	".mjs":         "application/javascript",
	".json":        "application/json",
	".map":         "application/json",
	".svg":         "image/svg+xml",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".jpeg":        "image/jpeg",
	".gif":         "image/gif",
	".webp":        "image/webp",
	".avif":        "image/avif",
	".ico":         "image/x-icon",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
	".ttf":         "font/ttf",
	".otf":         "font/otf",
	".eot":         "application/vnd.ms-fontobject",
	".txt":         "text/plain; charset=utf-8",
	".xml":         "application/xml",
	".webmanifest": "application/manifest+json",
	".wasm":        "application/wasm",
	".pdf":         "application/pdf",
	".mp4":         "video/mp4",
	".webm":        "video/webm",
}

// ContentTypeFor infers the content type from the file extension,
// falling back to generic binary.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CacheControlFor selects the cache-control header for a key
func CacheControlFor(key string) string {
	if strings.HasPrefix(key, assetsPrefix) {
		return CacheImmutable
	}
	return CacheNoStore
}

// CollectAssets walks the build directory recursively and returns one asset
// per regular file, keyed by its slash-separated relative path. The result
// is sorted by key for a stable upload order.
func CollectAssets(buildDir string) ([]types.Asset, error) {
	info, err := os.Stat(buildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("build directory %s does not exist, run your build first", buildDir)
		}
		return nil, fmt.Errorf("failed to stat build directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", buildDir)
	}

	var assets []types.Asset
	err = filepath.WalkDir(buildDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(buildDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		fi, err := d.Info()
		if err != nil {
			return err
		}

		assets = append(assets, types.Asset{
			Key:          key,
			Path:         path,
			Size:         fi.Size(),
			ContentType:  ContentTypeFor(key),
			CacheControl: CacheControlFor(key),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk build directory: %w", err)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Key < assets[j].Key })
	return assets, nil
}
