// Package storage provides a read-only abstraction over the archive's object
// storage service.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the reporter needs: stat calls for spot-checking reported
// mismatches against the live object, plus bucket and listing access. The
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	info, err := client.StatObject(ctx, "archive", "collection/granule/file.h5", minio.StatObjectOptions{})
package storage
