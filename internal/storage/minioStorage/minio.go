package minioStorage

import (
	"ProjectTracker/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SnapshotMirror copies every saved document to an object in a bucket.
type SnapshotMirror struct {
	client *minio.Client
	bucket string
	object string
}

func NewSnapshotMirror(endpoint, accessKey, secretKey string, useSSL bool, bucket, object string) (*SnapshotMirror, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", bucket, err)
		}
	}

	return &SnapshotMirror{client: client, bucket: bucket, object: object}, nil
}

func (m *SnapshotMirror) Mirror(ctx context.Context, doc *models.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = m.client.PutObject(ctx, m.bucket, m.object, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload snapshot %s/%s: %w", m.bucket, m.object, err)
	}
	return nil
}
