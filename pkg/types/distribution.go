package types

import "time"

// DistributionSpec describes the distribution to create in front of a
// website-hosted bucket.
type DistributionSpec struct {
	OriginDomain  string `json:"origin_domain"`  // bucket website endpoint
	IndexDocument string `json:"index_document"` // default root object, SPA rewrite target
	Comment       string `json:"comment"`
}

// Distribution represents a content-delivery distribution
type Distribution struct {
	ID         string `json:"id"`
	ARN        string `json:"arn"`
	DomainName string `json:"domain_name"`
	Status     string `json:"status"`
}

// Invalidation represents a cache invalidation request
type Invalidation struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Paths     []string  `json:"paths"`
	CreatedAt time.Time `json:"created_at"`
}
