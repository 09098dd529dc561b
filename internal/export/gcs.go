package export

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// Uploader pushes a saved artifact to object storage. The pipeline treats it
// as optional: a nil Uploader means local output only.
type Uploader interface {
	Upload(ctx context.Context, localPath, objectName string) error
}

// GCSUploader uploads to a Google Cloud Storage bucket using application
// default credentials.
type GCSUploader struct {
	svc    *storage.Service
	bucket string
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	tokenSource, err := google.DefaultTokenSource(ctx, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("cloud storage credentials: %w", err)
	}
	svc, err := storage.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("cloud storage client: %w", err)
	}
	return &GCSUploader{svc: svc, bucket: bucket}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, localPath, objectName string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	object := &storage.Object{Name: objectName}
	if _, err := u.svc.Objects.Insert(u.bucket, object).Media(f).Context(ctx).Do(); err != nil {
		return fmt.Errorf("upload %s to gs://%s/%s: %w", localPath, u.bucket, objectName, err)
	}
	return nil
}
