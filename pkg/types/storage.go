package types

import "time"

// Bucket represents a storage bucket configured for static-website hosting
type Bucket struct {
	Name          string `json:"name"`
	Region        string `json:"region"`
	IndexDocument string `json:"index_document"`
	ErrorDocument string `json:"error_document"`
}

// Object represents an object in storage
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag"`
}
