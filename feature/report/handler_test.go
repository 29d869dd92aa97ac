package report

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"archive-reporter/core/storage/mocks"
	"archive-reporter/feature/report/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	store, mock := newTestStore(t)
	svc := NewService(store, &mocks.Client{}, "archive", zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, mock
}

func TestHandleSchemaVersion(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT version_id FROM schema_versions").
		WillReturnRows(sqlmock.NewRows([]string{"version_id"}).AddRow(4))

	resp, err := app.Test(httptest.NewRequest("GET", "/report/schema-version", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body["schema_version"])
}

func TestHandleMismatchPage(t *testing.T) {
	t.Run("FirstPage", func(t *testing.T) {
		app, mock := newTestApp(t)

		rows := sqlmock.NewRows(mismatchCols)
		mismatchRow(rows, "A", "1", "k1")
		mismatchRow(rows, "A", "1", "k2")
		mock.ExpectQuery("SELECT (.+) FROM reconcile_mismatch_report").
			WillReturnRows(rows)

		resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/mismatches?limit=2", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var page models.MismatchPageOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		assert.Len(t, page.Items, 2)
		assert.Equal(t, float64(42), page.Items[0].JobID)
		if assert.NotNil(t, page.EndCursor) {
			assert.Equal(t, "k2", page.EndCursor.KeyPath)
		}
	})

	t.Run("EmptyPageIsSuccess", func(t *testing.T) {
		app, mock := newTestApp(t)

		mock.ExpectQuery("SELECT (.+) FROM reconcile_mismatch_report").
			WillReturnRows(sqlmock.NewRows(mismatchCols))

		resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/mismatches", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"items":[]`)
	})

	t.Run("PreviousDirection", func(t *testing.T) {
		app, mock := newTestApp(t)

		rows := sqlmock.NewRows(mismatchCols)
		mismatchRow(rows, "B", "1", "k1")
		mismatchRow(rows, "A", "2", "k1")
		mock.ExpectQuery("SELECT (.+) ORDER BY collection_id DESC").
			WillReturnRows(rows)

		target := "/report/jobs/42/mismatches?direction=previous&collection_id=B&granule_id=1&key_path=k2&limit=2"
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var page models.MismatchPageOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		// Always ascending, whichever direction produced the page.
		assert.Equal(t, "A", page.Items[0].CollectionID)
		assert.Equal(t, "B", page.Items[1].CollectionID)
	})

	t.Run("BadJobID", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/notanumber/mismatches", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BadDirection", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/mismatches?direction=sideways", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NonPositiveLimit", func(t *testing.T) {
		app, sqlMock := newTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/mismatches?limit=0", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		// Rejected before the store ran any query.
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestHandlePhantomPage(t *testing.T) {
	app, mock := newTestApp(t)

	rows := sqlmock.NewRows([]string{
		"job_id", "collection_id", "granule_id", "filename", "key_path",
		"archive_etag", "archive_last_update", "archive_size_in_bytes", "archive_storage_class",
	}).AddRow(int64(42), "A", "1", "f1.h5", "k1", "etag1", int64(100), int64(10), "GLACIER")

	mock.ExpectQuery("SELECT (.+) FROM reconcile_phantom_report").
		WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/phantoms?limit=1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page models.PhantomPageOutput
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "f1.h5", page.Items[0].Filename)
}

func TestHandleObjectCheck_MissingKeyPath(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/jobs/42/mismatches/object", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
