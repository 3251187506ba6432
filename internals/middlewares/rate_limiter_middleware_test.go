package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func hitUntilLimited(t *testing.T, app *fiber.App, path string, max int) {
	t.Helper()
	for i := 0; i < max; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", path, nil))
		if err != nil {
			t.Fatalf("request ke-%d error: %v", i+1, err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("request ke-%d: status %d, ingin %d", i+1, resp.StatusCode, fiber.StatusCreated)
		}
	}
	resp, err := app.Test(httptest.NewRequest("POST", path, nil))
	if err != nil {
		t.Fatalf("request lewat batas error: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("lewat batas: status %d, ingin %d", resp.StatusCode, fiber.StatusTooManyRequests)
	}
}

func TestSubmitPaymentRateLimiterBlocksAfterLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/payments", SubmitPaymentRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	hitUntilLimited(t, app, "/payments", 10)
}

func TestWebhookRateLimiterBlocksAfterLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/payments/webhook", WebhookRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	hitUntilLimited(t, app, "/payments/webhook", 60)
}
