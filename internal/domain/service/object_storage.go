package service

import "context"

// ObjectStorage abstracts the S3-style bucket used for avatars and
// exports. Uploads and downloads happen through short-lived presigned
// URLs handed to the client; only exports are written server-side.
type ObjectStorage interface {
	// PresignUpload returns a URL the client can PUT an object to.
	PresignUpload(ctx context.Context, key, contentType string) (string, error)

	// PresignDownload returns a URL the client can GET an object from.
	PresignDownload(ctx context.Context, key string) (string, error)

	// Put writes an object directly, used for server-generated exports.
	Put(ctx context.Context, key, contentType string, body []byte) error
}
