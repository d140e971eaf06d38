package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

const audioPrefix = "meetings"

var _ services.AudioArchive = (*MinIOClient)(nil)

// ObjectStore is the subset of the MinIO client used by the archive
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinIOClient archives meeting recordings in an S3-compatible bucket
type MinIOClient struct {
	client ObjectStore
	bucket string
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	// Initialize MinIO client
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := NewMinIOClientWithStore(minioClient, cfg.BucketName)
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// NewMinIOClientWithStore wraps an existing object store
func NewMinIOClientWithStore(store ObjectStore, bucket string) *MinIOClient {
	return &MinIOClient{client: store, bucket: bucket}
}

// ensureBucket creates the bucket when it does not exist. Recordings are
// private so no bucket policy is set.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// ArchiveAudio uploads the recording of a meeting
func (m *MinIOClient) ArchiveAudio(ctx context.Context, meetingID string, audio services.Audio) error {
	contentType := audio.ContentType
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	_, err := m.client.PutObject(ctx, m.bucket, ObjectName(meetingID), bytes.NewReader(audio.Data), int64(len(audio.Data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// RemoveAudio deletes the archived recording of a meeting
func (m *MinIOClient) RemoveAudio(ctx context.Context, meetingID string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, ObjectName(meetingID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// ObjectName returns the object key of a meeting recording
func ObjectName(meetingID string) string {
	return path.Join(audioPrefix, meetingID+".mp3")
}
