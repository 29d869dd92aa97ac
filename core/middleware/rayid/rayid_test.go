package rayid_test

import (
	"net/http/httptest"
	"testing"

	"archive-reporter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())

		var captured string
		app.Get("/ping", func(c *fiber.Ctx) error {
			captured, _ = c.Locals("ray_id").(string)
			return c.SendString("pong")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("HonorsIncomingID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())
		app.Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
	})
}
