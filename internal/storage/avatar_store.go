package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3AvatarStore keeps profile pictures as whole objects in one bucket.
type S3AvatarStore struct {
	client        *s3.Client
	bucket        *string
	publicBaseURL string
}

func NewS3AvatarStore(ctx context.Context, client *s3.Client, bucket, publicBaseURL string) (*S3AvatarStore, error) {
	s := &S3AvatarStore{
		client:        client,
		bucket:        aws.String(bucket),
		publicBaseURL: publicBaseURL,
	}
	if err := s.createBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *S3AvatarStore) createBucket(ctx context.Context, name string) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(name)})
	if err != nil {
		var opErr *http.ResponseError
		if errors.As(err, &opErr) && opErr.HTTPStatusCode() == 409 {
			// bucket already exists
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

func (s *S3AvatarStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      s.bucket,
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Locator is the URL a client fetches the object from; the gateway
// proxies /avatars/ to the bucket.
func (s *S3AvatarStore) Locator(key string) string {
	return fmt.Sprintf("%s/avatars/%s", s.publicBaseURL, key)
}
