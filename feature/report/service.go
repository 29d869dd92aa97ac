package report

import (
	"context"
	"fmt"

	"archive-reporter/core/storage"
	"archive-reporter/feature/report/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service validates report requests and delegates to the store. Validation
// happens before any connection is touched, so malformed input never reaches
// the database or the retry loop.
type Service struct {
	store  *Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new report service.
func NewService(store *Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// SchemaVersion returns the installed reconciliation schema version.
func (s *Service) SchemaVersion(ctx context.Context) (int, error) {
	return s.store.GetSchemaVersion(ctx)
}

// MismatchPage returns one page of mismatches in ascending order.
func (s *Service) MismatchPage(ctx context.Context, cursor models.Cursor, direction models.Direction, limit int) ([]models.Mismatch, error) {
	if err := validatePageRequest(cursor, direction, limit); err != nil {
		return nil, err
	}
	return s.store.GetMismatchPage(ctx, cursor, direction, limit)
}

// PhantomPage returns one page of phantoms in ascending order.
func (s *Service) PhantomPage(ctx context.Context, cursor models.Cursor, direction models.Direction, limit int) ([]models.Phantom, error) {
	if err := validatePageRequest(cursor, direction, limit); err != nil {
		return nil, err
	}
	return s.store.GetPhantomPage(ctx, cursor, direction, limit)
}

// CheckObject stats the live object behind a reported key path so an operator
// can see whether the discrepancy still stands. A missing object is a valid
// result (Found=false), not an error.
func (s *Service) CheckObject(ctx context.Context, keyPath string) (*models.ObjectCheck, error) {
	if keyPath == "" {
		return nil, invalidInputf("key_path must not be empty")
	}

	s.logger.Debug("Statting object for spot check", zap.String("key_path", keyPath))

	info, err := s.client.StatObject(ctx, s.bucket, keyPath, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return &models.ObjectCheck{KeyPath: keyPath, Found: false}, nil
		}
		return nil, fmt.Errorf("failed to stat object %q: %w", keyPath, err)
	}

	return &models.ObjectCheck{
		KeyPath:      keyPath,
		Found:        true,
		Etag:         info.ETag,
		SizeInBytes:  info.Size,
		LastModified: info.LastModified.UnixMilli(),
		StorageClass: info.StorageClass,
	}, nil
}

func validatePageRequest(cursor models.Cursor, direction models.Direction, limit int) error {
	if cursor.JobID <= 0 {
		return invalidInputf("job_id must be a positive integer, got %d", cursor.JobID)
	}
	if limit <= 0 {
		return invalidInputf("limit must be a positive integer, got %d", limit)
	}
	if direction != models.DirectionNext && direction != models.DirectionPrevious {
		return invalidInputf("unknown direction %q", string(direction))
	}
	return nil
}
