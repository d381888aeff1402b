package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/vietdv277/stratus/pkg/types"
)

const originID = "site-origin"

// CloudFrontProvider implements the CDNProvider interface for AWS CloudFront
type CloudFrontProvider struct {
	client *Client
	now    func() time.Time
}

// NewCDNProvider creates a new CloudFront provider
func NewCDNProvider(client *Client) *CloudFrontProvider {
	return &CloudFrontProvider{
		client: client,
		now:    time.Now,
	}
}

// CreateDistribution creates a distribution in front of the bucket's website
// endpoint. The website endpoint only speaks HTTP, so the origin protocol is
// http-only while viewers are redirected to HTTPS. A 404 from the origin is
// rewritten to the index document with a 200 so client-side routes resolve.
func (p *CloudFrontProvider) CreateDistribution(ctx context.Context, spec types.DistributionSpec) (*types.Distribution, error) {
	callerRef := fmt.Sprintf("stratus-%d", p.now().UnixNano())

	config := &cftypes.DistributionConfig{
		CallerReference:   aws.String(callerRef),
		Comment:           aws.String(spec.Comment),
		Enabled:           aws.Bool(true),
		DefaultRootObject: aws.String(spec.IndexDocument),
		Origins: &cftypes.Origins{
			Quantity: aws.Int32(1),
			Items: []cftypes.Origin{
				{
					Id:         aws.String(originID),
					DomainName: aws.String(spec.OriginDomain),
					CustomOriginConfig: &cftypes.CustomOriginConfig{
						HTTPPort:             aws.Int32(80),
						HTTPSPort:            aws.Int32(443),
						OriginProtocolPolicy: cftypes.OriginProtocolPolicyHttpOnly,
					},
				},
			},
		},
		DefaultCacheBehavior: &cftypes.DefaultCacheBehavior{
			TargetOriginId:       aws.String(originID),
			ViewerProtocolPolicy: cftypes.ViewerProtocolPolicyRedirectToHttps,
			Compress:             aws.Bool(true),
			AllowedMethods: &cftypes.AllowedMethods{
				Quantity: aws.Int32(2),
				Items:    []cftypes.Method{cftypes.MethodGet, cftypes.MethodHead},
				CachedMethods: &cftypes.CachedMethods{
					Quantity: aws.Int32(2),
					Items:    []cftypes.Method{cftypes.MethodGet, cftypes.MethodHead},
				},
			},
			MinTTL:     aws.Int64(0),
			DefaultTTL: aws.Int64(86400),
			MaxTTL:     aws.Int64(31536000),
			ForwardedValues: &cftypes.ForwardedValues{
				QueryString: aws.Bool(false),
				Cookies:     &cftypes.CookiePreference{Forward: cftypes.ItemSelectionNone},
			},
		},
		CustomErrorResponses: &cftypes.CustomErrorResponses{
			Quantity: aws.Int32(1),
			Items: []cftypes.CustomErrorResponse{
				{
					ErrorCode:          aws.Int32(404),
					ResponseCode:       aws.String("200"),
					ResponsePagePath:   aws.String("/" + spec.IndexDocument),
					ErrorCachingMinTTL: aws.Int64(300),
				},
			},
		},
	}

	output, err := p.client.CloudFront.CreateDistribution(ctx, &cloudfront.CreateDistributionInput{
		DistributionConfig: config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	return toDistribution(output.Distribution), nil
}

// GetDistribution returns a distribution by id
func (p *CloudFrontProvider) GetDistribution(ctx context.Context, id string) (*types.Distribution, error) {
	output, err := p.client.CloudFront.GetDistribution(ctx, &cloudfront.GetDistributionInput{
		Id: aws.String(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution %s: %w", id, err)
	}

	return toDistribution(output.Distribution), nil
}

// Invalidate submits one invalidation request for the given paths
func (p *CloudFrontProvider) Invalidate(ctx context.Context, distributionID string, paths []string) (*types.Invalidation, error) {
	now := p.now()

	output, err := p.client.CloudFront.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &cftypes.InvalidationBatch{
			CallerReference: aws.String(fmt.Sprintf("stratus-%d", now.UnixNano())),
			Paths: &cftypes.Paths{
				Quantity: aws.Int32(int32(len(paths))),
				Items:    paths,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invalidation: %w", err)
	}

	inv := &types.Invalidation{
		Paths:     paths,
		CreatedAt: now,
	}
	if output.Invalidation != nil {
		inv.ID = deref(output.Invalidation.Id)
		inv.Status = deref(output.Invalidation.Status)
		if output.Invalidation.CreateTime != nil {
			inv.CreatedAt = *output.Invalidation.CreateTime
		}
	}

	return inv, nil
}

func toDistribution(d *cftypes.Distribution) *types.Distribution {
	if d == nil {
		return nil
	}
	return &types.Distribution{
		ID:         deref(d.Id),
		ARN:        deref(d.ARN),
		DomainName: deref(d.DomainName),
		Status:     deref(d.Status),
	}
}
