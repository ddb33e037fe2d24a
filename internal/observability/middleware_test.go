package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestContext())
	app.Use(Instrument())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(http.StatusTeapot, "boom") })
	app.Get("/metrics", Handler())
	return app
}

func TestInstrument_CountsRequests(t *testing.T) {
	app := setupApp()

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/ok", "200"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/ok", "200"))
	if after != before+1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestInstrument_UsesFiberErrorCode(t *testing.T) {
	app := setupApp()

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "418"))

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil)); err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "418"))
	if after != before+1 {
		t.Fatalf("expected 418 counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	app := setupApp()

	// make sure at least one sample exists
	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil)); err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if !strings.Contains(string(body), "peakdash_http_requests_total") {
		t.Fatalf("expected peakdash_http_requests_total in metrics output")
	}
}
