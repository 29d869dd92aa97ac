package report

import (
	"archive-reporter/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the report module into the application.
type Feature struct {
	db      *gorm.DB
	service *Service
}

// NewFeature creates the report feature with a MySQL dialect.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, logg *zap.Logger) *Feature {
	store := NewStore(db, MySQLDialect{}, logg)
	return &Feature{
		db:      db,
		service: NewService(store, client, bucket, logg),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "report"
}

// IsEnabled reports whether the feature can serve requests. The report
// feature is read-only over the reconciliation database, so it is disabled
// when no database connection is available.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the report routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
