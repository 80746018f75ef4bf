package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ObjectAPI is the subset of the S3 client used by S3Storage. Tests
// substitute function-typed mocks for it.
type S3ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage implements ObjectStorage on Amazon S3
type S3Storage struct {
	client S3ObjectAPI
}

// NewS3Storage creates an S3-backed object storage adapter
func NewS3Storage(client S3ObjectAPI) *S3Storage {
	return &S3Storage{client: client}
}

// NewS3Client builds an S3 client from the default AWS configuration
// chain.
func NewS3Client(ctx context.Context) (S3ObjectAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// Retrieve implements ObjectStorage.Retrieve
func (s *S3Storage) Retrieve(ctx context.Context, bucket, key string) ([]byte, error) {
	if key == "" {
		return nil, NewStorageError("Retrieve", bucket, key, ErrInvalidKey)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, NewStorageError("Retrieve", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, NewStorageError("Retrieve", bucket, key, err)
	}
	return data, nil
}

// Store implements ObjectStorage.Store
func (s *S3Storage) Store(ctx context.Context, bucket, key string, data []byte, opts *StoreOptions) error {
	if key == "" {
		return NewStorageError("Store", bucket, key, ErrInvalidKey)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if opts != nil && opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return NewStorageError("Store", bucket, key, err)
	}
	return nil
}
