// Package storage implements the object-storage interface on S3,
// issuing short-lived presigned URLs for client uploads and downloads.
package storage

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"panel/config"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/service"
)

const defaultPresignExpiry = 15 * time.Minute

type s3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewS3Storage is the constructor for s3Storage.
func NewS3Storage(ctx context.Context, cfg *config.Config) (service.ObjectStorage, error) {
	if cfg.Storage == nil || cfg.Storage.Bucket == "" {
		return nil, errors.New("storage bucket must be configured")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.AccessKeyID != "" {
		// Static credentials cover MinIO-style local setups; production
		// relies on the default provider chain.
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config for S3")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	expiry := defaultPresignExpiry
	if cfg.Storage.PresignExpiry > 0 {
		expiry = cfg.Storage.PresignExpiry
	}

	return &s3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Storage.Bucket,
		expiry:  expiry,
	}, nil
}

// PresignUpload returns a URL the client can PUT an object to.
func (s *s3Storage) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return req.URL, nil
}

// PresignDownload returns a URL the client can GET an object from.
func (s *s3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return req.URL, nil
}

// Put writes an object directly, used for server-generated exports.
func (s *s3Storage) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return nil
}
