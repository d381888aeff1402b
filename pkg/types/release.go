package types

// Asset is a single file from the build-output directory, ready for upload.
type Asset struct {
	Key          string `json:"key"`  // slash-separated path relative to the build root
	Path         string `json:"path"` // absolute local path
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
	CacheControl string `json:"cache_control"`
}

// ReleaseSummary captures what a deploy run did.
type ReleaseSummary struct {
	Bucket       string        `json:"bucket"`
	Deleted      int           `json:"deleted"`
	Uploaded     int           `json:"uploaded"`
	Invalidation *Invalidation `json:"invalidation,omitempty"`
}
