// Package exports uploads rendered map captures to S3-compatible object
// storage and hands back a shareable URL.
package exports

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/flightfolio/core/internal/config"
)

// S3Uploader implements routemap.Uploader against any S3-compatible endpoint.
type S3Uploader struct {
	client *s3.Client
	opts   config.S3Options
}

// NewS3Uploader returns nil when object storage is not configured; callers
// treat a nil uploader as "return exports inline".
func NewS3Uploader(opts config.S3Options) *S3Uploader {
	if opts.Bucket == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil
	}

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	client := s3.New(s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		UsePathStyle: opts.PathStyleAccess,
		BaseEndpoint: nonEmptyPtr(opts.Endpoint),
	})

	return &S3Uploader{client: client, opts: opts}
}

// Upload stores the object and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return u.publicURL(key), nil
}

func (u *S3Uploader) publicURL(key string) string {
	if u.opts.CustomDomain != "" {
		return strings.TrimSuffix(u.opts.CustomDomain, "/") + "/" + key
	}
	if u.opts.Endpoint != "" {
		base := strings.TrimSuffix(u.opts.Endpoint, "/")
		if u.opts.PathStyleAccess {
			return fmt.Sprintf("%s/%s/%s", base, u.opts.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", strings.Replace(base, "://", "://"+u.opts.Bucket+".", 1), key)
	}
	region := u.opts.Region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.opts.Bucket, region, key)
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
