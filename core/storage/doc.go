// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and is used to archive the Excel and PDF
// reports generated by the panel, so they can be listed and downloaded again
// later. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "redelex-reports")
package storage
