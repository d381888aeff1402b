package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vietdv277/stratus/pkg/types"
)

// deleteBatchSize is the DeleteObjects per-request limit
const deleteBatchSize = 1000

// S3StorageProvider implements the StorageProvider interface for AWS S3
type S3StorageProvider struct {
	client *Client
}

// NewStorageProvider creates a new S3 storage provider
func NewStorageProvider(client *Client) *S3StorageProvider {
	return &S3StorageProvider{client: client}
}

// EnsureBucket creates the bucket if needed. A bucket already owned by the
// caller is treated as success; a name owned by another account is not.
func (p *S3StorageProvider) EnsureBucket(ctx context.Context, bucket types.Bucket) (bool, error) {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket.Name),
	}

	// us-east-1 rejects an explicit LocationConstraint
	if bucket.Region != "" && bucket.Region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(bucket.Region),
		}
	}

	_, err := p.client.S3.CreateBucket(ctx, input)
	if err != nil {
		var owned *s3types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket.Name, err)
	}

	return true, nil
}

// ConfigureWebsite enables public static-website hosting on the bucket:
// public-access-block off, index/error documents, public-read policy.
func (p *S3StorageProvider) ConfigureWebsite(ctx context.Context, bucket types.Bucket) error {
	_, err := p.client.S3.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket.Name),
		PublicAccessBlockConfiguration: &s3types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(false),
			BlockPublicPolicy:     aws.Bool(false),
			IgnorePublicAcls:      aws.Bool(false),
			RestrictPublicBuckets: aws.Bool(false),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to disable public access block: %w", err)
	}

	_, err = p.client.S3.PutBucketWebsite(ctx, &s3.PutBucketWebsiteInput{
		Bucket: aws.String(bucket.Name),
		WebsiteConfiguration: &s3types.WebsiteConfiguration{
			IndexDocument: &s3types.IndexDocument{Suffix: aws.String(bucket.IndexDocument)},
			ErrorDocument: &s3types.ErrorDocument{Key: aws.String(bucket.ErrorDocument)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure website hosting: %w", err)
	}

	policy, err := PublicReadPolicy(bucket.Name)
	if err != nil {
		return err
	}

	_, err = p.client.S3.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket.Name),
		Policy: aws.String(policy),
	})
	if err != nil {
		return fmt.Errorf("failed to attach bucket policy: %w", err)
	}

	return nil
}

// ListObjects returns all objects in the bucket matching the prefix
func (p *S3StorageProvider) ListObjects(ctx context.Context, bucket, prefix string) ([]types.Object, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(p.client.S3, input)

	var objects []types.Object
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
		}

		for _, obj := range page.Contents {
			o := types.Object{
				Key:  deref(obj.Key),
				ETag: deref(obj.ETag),
			}
			if obj.Size != nil {
				o.Size = *obj.Size
			}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			objects = append(objects, o)
		}
	}

	return objects, nil
}

// DeleteObjects removes the given keys in batches
func (p *S3StorageProvider) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	for _, batch := range chunkKeys(keys, deleteBatchSize) {
		identifiers := make([]s3types.ObjectIdentifier, len(batch))
		for i, key := range batch {
			identifiers[i] = s3types.ObjectIdentifier{Key: aws.String(key)}
		}

		_, err := p.client.S3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &s3types.Delete{
				Objects: identifiers,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete objects from %s: %w", bucket, err)
		}
	}

	return nil
}

// PutObject uploads a single local file under its key
func (p *S3StorageProvider) PutObject(ctx context.Context, bucket string, asset types.Asset) error {
	f, err := os.Open(asset.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", asset.Path, err)
	}
	defer f.Close()

	_, err = p.client.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(asset.Key),
		Body:          f,
		ContentLength: aws.Int64(asset.Size),
		ContentType:   aws.String(asset.ContentType),
		CacheControl:  aws.String(asset.CacheControl),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", asset.Key, err)
	}

	return nil
}

// WebsiteEndpoint returns the bucket's website hostname for the region
func (p *S3StorageProvider) WebsiteEndpoint(bucket, region string) string {
	return fmt.Sprintf("%s.s3-website-%s.amazonaws.com", bucket, region)
}

// PublicReadPolicy renders the bucket policy allowing anonymous GetObject
// on every key in the bucket.
func PublicReadPolicy(bucket string) (string, error) {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Sid":       "PublicReadGetObject",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}

	data, err := json.Marshal(policy)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bucket policy: %w", err)
	}
	return string(data), nil
}

// chunkKeys splits keys into batches of at most size
func chunkKeys(keys []string, size int) [][]string {
	var batches [][]string
	for len(keys) > 0 {
		n := size
		if len(keys) < n {
			n = len(keys)
		}
		batches = append(batches, keys[:n])
		keys = keys[n:]
	}
	return batches
}
