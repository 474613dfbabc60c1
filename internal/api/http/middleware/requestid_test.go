package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/portfolio_backend/pkg/reqctx"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "missing", incoming: "", keep: false},
		{name: "uuid", incoming: "3f2b8c4e-1a2b-4c3d-9e8f-0a1b2c3d4e5f", keep: true},
		{name: "dotted token", incoming: "edge.lb-01_req.42", keep: true},
		{name: "spaces", incoming: "req 1", keep: false},
		{name: "markup", incoming: "<script>alert(1)</script>", keep: false},
		{name: "newline escape", incoming: "abc%0d%0aSet-Cookie:x", keep: false},
		{name: "too long", incoming: strings.Repeat("a", 129), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			app := fiber.New()
			app.Use(RequestID())
			app.Get("/", func(c fiber.Ctx) error {
				fromCtx = reqctx.RequestIDFromContext(c.Context())
				return c.SendStatus(fiber.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			resp.Body.Close()

			got := resp.Header.Get(HeaderRequestID)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err = uuid.Parse(got)
			assert.NoError(t, err, "expected a generated UUID, got %q", got)
		})
	}
}
