package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"redelex-panel/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const archivePrefix = "reports/"

// Entry is an archived report.
type Entry struct {
	Object       string    `json:"object"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Archive keeps generated reports in object storage.
type Archive struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchive creates an archive over bucket.
func NewArchive(client storage.Client, bucket string, logger *zap.Logger) *Archive {
	return &Archive{client: client, bucket: bucket, logger: logger}
}

// Ensure creates the bucket if it does not exist.
func (a *Archive) Ensure(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created report bucket", zap.String("bucket", a.bucket))
	return nil
}

// Store uploads a rendered report and returns its object name,
// reports/<category>/<yyyy>/<mm>/<fileName-without-ext>-<id>.<ext>.
func (a *Archive) Store(ctx context.Context, category, fileName string, f Format, data []byte) (string, error) {
	now := time.Now()
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	object := fmt.Sprintf("%s%s/%s/%s-%s.%s", archivePrefix, category, now.Format("2006/01"), base, uuid.NewString()[:8], f)

	_, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: f.ContentType(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive report: %w", err)
	}
	return object, nil
}

// List returns archived reports of category, newest first.
func (a *Archive) List(ctx context.Context, category string) ([]Entry, error) {
	prefix := archivePrefix
	if category != "" {
		prefix += category + "/"
	}

	entries := []Entry{}
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		entries = append(entries, Entry{Object: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})
	return entries, nil
}

// Open streams an archived report. Objects outside the archive are refused.
func (a *Archive) Open(ctx context.Context, object string) (io.ReadCloser, error) {
	if !strings.HasPrefix(object, archivePrefix) || strings.Contains(object, "..") {
		return nil, fmt.Errorf("invalid report object: %s", object)
	}
	rc, err := a.client.GetObject(ctx, a.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	return rc, nil
}

// Remove deletes an archived report.
func (a *Archive) Remove(ctx context.Context, object string) error {
	if !strings.HasPrefix(object, archivePrefix) || strings.Contains(object, "..") {
		return fmt.Errorf("invalid report object: %s", object)
	}
	if err := a.client.RemoveObject(ctx, a.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove report: %w", err)
	}
	a.logger.Info("Removed archived report", zap.String("object", object))
	return nil
}

// Prune removes archived reports last modified before cutoff and returns how
// many were removed. It stops at the first failure.
func (a *Archive) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := a.List(ctx, "")
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if !e.LastModified.Before(cutoff) {
			continue
		}
		if err := a.Remove(ctx, e.Object); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
