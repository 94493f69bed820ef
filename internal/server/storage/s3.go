// Package storage wraps the S3-compatible object store holding uploaded
// files. Logical buckets share one physical S3 bucket; object keys are
// "<bucket>/<file id>".
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dkraev/inkpress/internal/server/config"
)

const presignValidity = 15 * time.Minute

type ObjectStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

func NewObjectStore(ctx context.Context, c *sc.Config) (*ObjectStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.S3RootUser,
			c.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &ObjectStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  c.S3Bucket,
	}, nil
}

func objectKey(bucket, id string) string {
	return fmt.Sprintf("%s/%s", bucket, id)
}

func (o *ObjectStore) Put(ctx context.Context, bucket, id string, data []byte, contentType string) error {
	key := objectKey(bucket, id)

	_, err := o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &o.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("putting object %s: %w", key, err)
	}
	return nil
}

func (o *ObjectStore) Delete(ctx context.Context, bucket, id string) error {
	key := objectKey(bucket, id)

	_, err := o.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &o.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("deleting object %s: %w", key, err)
	}
	return nil
}

// PresignedGetURL returns a short-lived URL for fetching the object
// directly from the backend.
func (o *ObjectStore) PresignedGetURL(ctx context.Context, bucket, id string) (string, error) {
	key := objectKey(bucket, id)

	req, err := o.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &o.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}

	return req.URL, nil
}
