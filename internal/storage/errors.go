package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/symposio/media-service-go/internal/usecase/media"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return media.ErrObjectNotFound
	case "NoSuchBucket":
		return media.ErrBucketNotFound
	default:
		// network, auth and everything else: the store is unreachable to us
		return fmt.Errorf("%w: %v", media.ErrStoreUnavailable, err)
	}
}
