package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"archive-reporter/core/database"
	"archive-reporter/core/retry"
	"archive-reporter/feature/report/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store executes the report queries against the reconciliation database.
// It holds no mutable state, so it is safe to use from concurrent requests;
// every call borrows its own connection from the pool and releases it on all
// exit paths.
type Store struct {
	db      *gorm.DB
	dialect Dialect
	policy  retry.Policy
	logger  *zap.Logger
}

// NewStore creates a store using the default retry policy.
func NewStore(db *gorm.DB, dialect Dialect, logger *zap.Logger) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		policy:  retry.DefaultPolicy(),
		logger:  logger,
	}
}

// GetSchemaVersion returns the latest installed schema version.
//
// Deployments that predate schema versioning have no version table at all;
// that condition maps to version 1 instead of an error. An empty version
// table is treated the same way.
func (s *Store) GetSchemaVersion(ctx context.Context) (int, error) {
	s.logger.Debug("Querying installed schema version")

	var version int
	err := retry.Do(ctx, s.policy, database.IsTransient, func() error {
		return s.db.WithContext(ctx).Raw(s.dialect.SchemaVersionSQL()).Row().Scan(&version)
	})
	if err != nil {
		if database.IsMissingTable(err) || errors.Is(err, sql.ErrNoRows) {
			s.logger.Info("Schema version table not provisioned, assuming version 1")
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query schema version: %w", err)
	}

	return version, nil
}

// GetMismatchPage returns one page of mismatches for the cursor's job.
//
// The page is read strictly after the cursor tuple (DirectionNext) or
// strictly before it (DirectionPrevious) in a single bounded query. An empty
// cursor starts from the job's natural boundary. The returned slice is always
// in ascending (collection_id, granule_id, key_path) order regardless of
// direction; an empty slice means end-of-data, not an error.
func (s *Store) GetMismatchPage(ctx context.Context, cursor models.Cursor, direction models.Direction, limit int) ([]models.Mismatch, error) {
	s.logger.Debug("Retrieving mismatch page",
		zap.Int64("job_id", cursor.JobID),
		zap.String("direction", string(direction)),
		zap.Int("limit", limit))

	query := s.dialect.MismatchPageSQL(direction, !cursor.IsEmpty())

	var page []models.Mismatch
	err := retry.Do(ctx, s.policy, database.IsTransient, func() error {
		rows, err := s.db.WithContext(ctx).Raw(query, pageArgs(cursor, limit)...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		page = page[:0]
		for rows.Next() {
			m, err := scanMismatch(rows)
			if err != nil {
				return err
			}
			page = append(page, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query mismatches for job %d: %w", cursor.JobID, err)
	}

	if direction == models.DirectionPrevious {
		// Previous pages are fetched in descending order; callers must never
		// see anything but ascending order.
		slices.Reverse(page)
	}
	return page, nil
}

// GetPhantomPage returns one page of phantoms for the cursor's job, with the
// same ordering contract as GetMismatchPage.
func (s *Store) GetPhantomPage(ctx context.Context, cursor models.Cursor, direction models.Direction, limit int) ([]models.Phantom, error) {
	s.logger.Debug("Retrieving phantom page",
		zap.Int64("job_id", cursor.JobID),
		zap.String("direction", string(direction)),
		zap.Int("limit", limit))

	query := s.dialect.PhantomPageSQL(direction, !cursor.IsEmpty())

	var page []models.Phantom
	err := retry.Do(ctx, s.policy, database.IsTransient, func() error {
		rows, err := s.db.WithContext(ctx).Raw(query, pageArgs(cursor, limit)...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		page = page[:0]
		for rows.Next() {
			p, err := scanPhantom(rows)
			if err != nil {
				return err
			}
			page = append(page, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query phantoms for job %d: %w", cursor.JobID, err)
	}

	if direction == models.DirectionPrevious {
		slices.Reverse(page)
	}
	return page, nil
}

// pageArgs assembles the bind parameters matching the dialect's statement:
// job id, optional cursor tuple, limit.
func pageArgs(cursor models.Cursor, limit int) []any {
	args := []any{cursor.JobID}
	if !cursor.IsEmpty() {
		args = append(args, cursor.CollectionID, cursor.GranuleID, cursor.KeyPath)
	}
	return append(args, limit)
}

// scanMismatch decodes one row in the fixed column order declared by the
// dialect. A column count or type drift fails the whole page immediately.
func scanMismatch(rows *sql.Rows) (models.Mismatch, error) {
	var m models.Mismatch
	var comment sql.NullString

	err := rows.Scan(
		&m.JobID, &m.CollectionID, &m.GranuleID, &m.Filename, &m.KeyPath,
		&m.ArchiveLocation, &m.ArchiveEtag, &m.ObjectEtag,
		&m.ArchiveLastUpdate, &m.ObjectLastUpdate,
		&m.ArchiveSizeInBytes, &m.ObjectSizeInBytes,
		&m.ArchiveStorageClass, &m.ObjectStorageClass,
		&m.DiscrepancyType, &comment,
	)
	if err != nil {
		return models.Mismatch{}, fmt.Errorf("failed to decode mismatch row: %w", err)
	}

	if comment.Valid {
		m.Comment = &comment.String
	}
	return m, nil
}

func scanPhantom(rows *sql.Rows) (models.Phantom, error) {
	var p models.Phantom

	err := rows.Scan(
		&p.JobID, &p.CollectionID, &p.GranuleID, &p.Filename, &p.KeyPath,
		&p.ArchiveEtag, &p.ArchiveLastUpdate, &p.ArchiveSizeInBytes, &p.ArchiveStorageClass,
	)
	if err != nil {
		return models.Phantom{}, fmt.Errorf("failed to decode phantom row: %w", err)
	}
	return p, nil
}
