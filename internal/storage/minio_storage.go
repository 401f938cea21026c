package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/symposio/media-service-go/internal/port"
	"github.com/symposio/media-service-go/internal/usecase/media"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage wraps a minio client bound to one bucket.
type MinioStorage struct {
	client     minioClient
	endpoint   string
	bucketName string
	useSSL     bool
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, endpoint: endpoint, bucketName: bucket, useSSL: useSSL}, nil
}

func (s *MinioStorage) InitBucket() error {
	ok, err := s.client.BucketExists(context.Background(), s.bucketName)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucketName)
		if err := s.client.MakeBucket(context.Background(), s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	log.Printf("saving file %q into bucket %q...", fileKey, s.bucketName)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}

	_, err := s.client.PutObject(ctx, s.bucketName, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

// RemoveFile deletes a blob. A key that is already gone is a success.
func (s *MinioStorage) RemoveFile(ctx context.Context, fileKey string) error {
	log.Printf("removing file %q from bucket %q...", fileKey, s.bucketName)

	err := mapMinioErr(s.client.RemoveObject(ctx, s.bucketName, fileKey, minio.RemoveObjectOptions{}))
	if errors.Is(err, media.ErrObjectNotFound) {
		return nil
	}
	return err
}

func (s *MinioStorage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	log.Printf("getting stats on file %q in bucket %q...", fileKey, s.bucketName)

	info, err := s.client.StatObject(ctx, s.bucketName, fileKey, minio.StatObjectOptions{})
	if err != nil {
		return port.FileInfo{}, mapMinioErr(err)
	}
	return port.FileInfo{
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *MinioStorage) GetFile(ctx context.Context, fileKey string) (io.ReadSeekCloser, error) {
	log.Printf("getting file %q from bucket %q...", fileKey, s.bucketName)

	obj, err := s.client.GetObject(ctx, s.bucketName, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	log.Printf("checking if file %q exists in bucket %q...", fileKey, s.bucketName)

	_, err := s.StatFile(ctx, fileKey)
	if errors.Is(err, media.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PublicURL resolves the publicly reachable URL of a blob.
func (s *MinioStorage) PublicURL(fileKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucketName, fileKey)
}
