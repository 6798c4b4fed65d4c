package documents

import (
	"context"
	"io"
	"net/url"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/dto/responses"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type DocumentMinioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	LinkExpiry  time.Duration
}

func NewDocumentMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) contracts.DocumentStorage {
	return &DocumentMinioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		LinkExpiry:  time.Hour * time.Duration(internalConfig.App.DocumentLinkExpiryInHours),
	}
}

func (s *DocumentMinioStorage) PutDocument(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	_, err := s.MinioClient.PutObject(ctx, s.BucketName, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioPutObject(err, s.BucketName)
	}
	return nil
}

func (s *DocumentMinioStorage) ListDocuments(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	for object := range s.MinioClient.ListObjects(ctx, s.BucketName, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, s.BucketName)
		}
		names = append(names, object.Key)
	}
	return names, nil
}

// PresignDocument hands out a time-limited download URL so documents are
// never served through the API process itself.
func (s *DocumentMinioStorage) PresignDocument(ctx context.Context, name string) (*responses.DocumentLink, error) {
	presigned, err := s.MinioClient.PresignedGetObject(ctx, s.BucketName, name, s.LinkExpiry, url.Values{})
	if err != nil {
		return nil, exceptions.ErrMinioPresignObject(err, s.BucketName)
	}
	return &responses.DocumentLink{
		Name:      name,
		URL:       presigned.String(),
		ExpiresAt: time.Now().Add(s.LinkExpiry),
	}, nil
}
