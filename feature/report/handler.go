package report

import (
	"errors"
	"strconv"

	"archive-reporter/core/logger"
	"archive-reporter/feature/report/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultPageLimit is used when the request does not specify a limit.
const DefaultPageLimit = 100

// Handler handles HTTP requests for reconciliation reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/schema-version", h.HandleSchemaVersion)
	group.Get("/jobs/:job_id/mismatches", h.HandleMismatchPage)
	group.Get("/jobs/:job_id/mismatches/object", h.HandleObjectCheck)
	group.Get("/jobs/:job_id/phantoms", h.HandlePhantomPage)
}

// HandleSchemaVersion reports the installed reconciliation schema version.
// @Summary Get Schema Version
// @Description Returns the latest installed reconciliation schema version. Reports 1 when the schema has not been provisioned yet.
// @Tags report
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int "Schema Version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/schema-version [get]
func (h *Handler) HandleSchemaVersion(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	version, err := h.service.SchemaVersion(c.Context())
	if err != nil {
		l.Error("Schema version probe failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"schema_version": version})
}

// HandleMismatchPage returns one page of mismatches for a job.
// @Summary Page Mismatches
// @Description Returns a keyset-paginated page of mismatch records for a reconciliation job, always in ascending (collection_id, granule_id, key_path) order.
// @Tags report
// @Accept json
// @Produce json
// @Param job_id path int true "Reconciliation job ID"
// @Param collection_id query string false "Cursor collection id (exclusive fence)"
// @Param granule_id query string false "Cursor granule id (exclusive fence)"
// @Param key_path query string false "Cursor key path (exclusive fence)"
// @Param direction query string false "next or previous" default(next)
// @Param limit query int false "Maximum rows returned" default(100)
// @Success 200 {object} models.MismatchPageOutput "Mismatch Page"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/jobs/{job_id}/mismatches [get]
func (h *Handler) HandleMismatchPage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cursor, direction, limit, err := parsePageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page, err := h.service.MismatchPage(c.Context(), cursor, direction, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Mismatch page failed", zap.Int64("job_id", cursor.JobID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(models.NewMismatchPageOutput(page))
}

// HandlePhantomPage returns one page of phantoms for a job.
// @Summary Page Phantoms
// @Description Returns a keyset-paginated page of phantom records (archive entries with no backing object) for a reconciliation job, in ascending order.
// @Tags report
// @Accept json
// @Produce json
// @Param job_id path int true "Reconciliation job ID"
// @Param collection_id query string false "Cursor collection id (exclusive fence)"
// @Param granule_id query string false "Cursor granule id (exclusive fence)"
// @Param key_path query string false "Cursor key path (exclusive fence)"
// @Param direction query string false "next or previous" default(next)
// @Param limit query int false "Maximum rows returned" default(100)
// @Success 200 {object} models.PhantomPageOutput "Phantom Page"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/jobs/{job_id}/phantoms [get]
func (h *Handler) HandlePhantomPage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cursor, direction, limit, err := parsePageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page, err := h.service.PhantomPage(c.Context(), cursor, direction, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Phantom page failed", zap.Int64("job_id", cursor.JobID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(models.NewPhantomPageOutput(page))
}

// HandleObjectCheck stats the live object behind a reported key path.
// @Summary Spot-check Object
// @Description Stats the object referenced by a mismatch against the live object store, returning its current etag, size, and last-modified time.
// @Tags report
// @Accept json
// @Produce json
// @Param job_id path int true "Reconciliation job ID"
// @Param key_path query string true "Object key path"
// @Success 200 {object} models.ObjectCheck "Object Check"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/jobs/{job_id}/mismatches/object [get]
func (h *Handler) HandleObjectCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	check, err := h.service.CheckObject(c.Context(), c.Query("key_path"))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Object spot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(check)
}

// parsePageRequest extracts the cursor, direction, and limit shared by the
// paging endpoints. Semantic validation (positive job id and limit) lives in
// the service; this only rejects values that fail to parse at all.
func parsePageRequest(c *fiber.Ctx) (models.Cursor, models.Direction, int, error) {
	jobID, err := strconv.ParseInt(c.Params("job_id"), 10, 64)
	if err != nil {
		return models.Cursor{}, "", 0, invalidInputf("job_id must be an integer")
	}

	direction, err := models.ParseDirection(c.Query("direction"))
	if err != nil {
		return models.Cursor{}, "", 0, invalidInputf("%v", err)
	}

	limit := DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return models.Cursor{}, "", 0, invalidInputf("limit must be an integer")
		}
	}

	cursor := models.Cursor{
		JobID:        jobID,
		CollectionID: c.Query("collection_id"),
		GranuleID:    c.Query("granule_id"),
		KeyPath:      c.Query("key_path"),
	}

	return cursor, direction, limit, nil
}
