package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/router"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
	"github.com/Alijeyrad/portfolio_backend/internal/service/project"
	"github.com/Alijeyrad/portfolio_backend/internal/testkit"
	"github.com/Alijeyrad/portfolio_backend/pkg/constants"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8000,
			TimeoutSeconds: 5,
			Environment:    "test",
			CORS: config.CORSConfig{
				Enabled:          true,
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "OPTIONS"},
				AllowCredentials: true,
			},
		},
	}
}

type testEnv struct {
	app   *fiber.App
	store *testkit.MemStore
}

// newTestApp wires the real services. A nil store means no database is configured.
func newTestApp(t *testing.T, cfg *config.Config, store *testkit.MemStore) testEnv {
	t.Helper()

	projects, err := project.New()
	require.NoError(t, err)

	var (
		contactSvc contact.Service
		diagSvc    diagnostics.Service
	)
	if store != nil {
		contactSvc = contact.New(store, nil)
		diagSvc = diagnostics.New(store, diagnostics.Settings{DatabaseURLSet: true, DatabaseNameSet: true}, 0)
	} else {
		contactSvc = contact.New(nil, nil)
		diagSvc = diagnostics.New(nil, diagnostics.Settings{}, 0)
	}

	r := router.NewRouter(router.Params{
		Cfg:            cfg,
		ProjectSvc:     projects,
		ContactSvc:     contactSvc,
		DiagnosticsSvc: diagSvc,
	})
	return testEnv{app: NewApp(cfg, r, false), store: store}
}

func doJSON(t *testing.T, app *fiber.App, req *nethttp.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	}
	return resp.StatusCode, body
}

func postContact(body string) *nethttp.Request {
	req := httptest.NewRequest(nethttp.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

const validContact = `{"name":"Tanjiro","email":"tanjiro@example.com","subject":"Collab","content":"Loved the AMV."}`

func TestRoot(t *testing.T) {
	env := newTestApp(t, testConfig(), testkit.NewMemStore())

	code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/", nil))

	assert.Equal(t, nethttp.StatusOK, code)
	assert.Equal(t, "Demon Slayer Portfolio API is running", body["message"])
}

func TestListProjects(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)

	resp, err := env.app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/projects", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var projects []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	require.Len(t, projects, 3)

	ids := []string{}
	for _, p := range projects {
		ids = append(ids, p["id"].(string))
		for _, key := range []string{"title", "description", "tags", "video_url", "thumbnail"} {
			assert.Contains(t, p, key)
		}
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, []any{"AMV", "Action", "D&B"}, projects[0]["tags"])
}

func TestGetProject(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)

	code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/projects/2", nil))
	assert.Equal(t, nethttp.StatusOK, code)
	assert.Equal(t, "Breath of Thunder Montage", body["title"])

	code, body = doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/projects/99", nil))
	assert.Equal(t, nethttp.StatusNotFound, code)
	assert.Equal(t, "project not found", body["error"])
}

func TestSubmitContact(t *testing.T) {
	t.Run("stores valid message", func(t *testing.T) {
		env := newTestApp(t, testConfig(), testkit.NewMemStore())

		code, body := doJSON(t, env.app, postContact(validContact))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, "ok", body["status"])
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, 1, env.store.Count(constants.MessageCollection))

		docs, err := env.store.GetDocuments(t.Context(), constants.MessageCollection, nil, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, docs[0]["request_id"])
		assert.Contains(t, docs[0], "created_at")
	})

	t.Run("subject is optional", func(t *testing.T) {
		env := newTestApp(t, testConfig(), testkit.NewMemStore())

		code, _ := doJSON(t, env.app, postContact(`{"name":"Nezuko","email":"nezuko@example.com","content":"hi"}`))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, 1, env.store.Count(constants.MessageCollection))
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestApp(t, testConfig(), testkit.NewMemStore())

		code, body := doJSON(t, env.app, postContact(`{"name":`))

		assert.Equal(t, nethttp.StatusBadRequest, code)
		assert.Equal(t, "invalid request body", body["error"])
		assert.Zero(t, env.store.Creates)
	})

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing email", `{"name":"Zenitsu","content":"hi"}`, "email"},
		{"invalid email", `{"name":"Zenitsu","email":"not-an-email","content":"hi"}`, "email"},
		{"missing content", `{"name":"Zenitsu","email":"z@example.com"}`, "content"},
		{"name too long", `{"name":"` + strings.Repeat("a", 101) + `","email":"z@example.com","content":"hi"}`, "name"},
		{"subject too long", `{"name":"Z","email":"z@example.com","subject":"` + strings.Repeat("s", 201) + `","content":"hi"}`, "subject"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestApp(t, testConfig(), testkit.NewMemStore())

			code, body := doJSON(t, env.app, postContact(tc.body))

			assert.Equal(t, nethttp.StatusUnprocessableEntity, code)
			detail, ok := body["detail"].([]any)
			require.True(t, ok, "detail: %v", body["detail"])
			fields := []string{}
			for _, d := range detail {
				fields = append(fields, d.(map[string]any)["field"].(string))
			}
			assert.Contains(t, fields, tc.field)
			assert.Zero(t, env.store.Creates)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		store := testkit.NewMemStore()
		store.Err = errors.New("connection refused")
		env := newTestApp(t, testConfig(), store)

		code, body := doJSON(t, env.app, postContact(validContact))

		assert.Equal(t, nethttp.StatusInternalServerError, code)
		assert.Equal(t, "internal server error", body["error"])
		assert.Contains(t, body["detail"], "connection refused")
	})

	t.Run("store not configured", func(t *testing.T) {
		env := newTestApp(t, testConfig(), nil)

		code, body := doJSON(t, env.app, postContact(validContact))

		assert.Equal(t, nethttp.StatusInternalServerError, code)
		assert.Equal(t, contact.ErrNotConfigured.Error(), body["detail"])
	})
}

func TestSubmitContact_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit.ContactPerMinute = 2
	env := newTestApp(t, cfg, testkit.NewMemStore())

	for i := 0; i < 2; i++ {
		code, _ := doJSON(t, env.app, postContact(validContact))
		require.Equal(t, nethttp.StatusOK, code)
	}
	code, body := doJSON(t, env.app, postContact(validContact))

	assert.Equal(t, nethttp.StatusTooManyRequests, code)
	assert.Equal(t, "too many requests", body["error"])
	assert.Equal(t, 2, env.store.Count(constants.MessageCollection))
}

func TestSubmitContact_RateLimitPerForwardedClient(t *testing.T) {
	postFrom := func(t *testing.T, app *fiber.App, client string) int {
		t.Helper()
		req := postContact(validContact)
		req.Header.Set(fiber.HeaderXForwardedFor, client)
		code, _ := doJSON(t, app, req)
		return code
	}

	t.Run("trusted proxy", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.RateLimit.ContactPerMinute = 1
		// app.Test connections come from 0.0.0.0
		cfg.Server.TrustedProxies = []string{"0.0.0.0"}
		env := newTestApp(t, cfg, testkit.NewMemStore())

		assert.Equal(t, nethttp.StatusOK, postFrom(t, env.app, "1.1.1.1"))
		assert.Equal(t, nethttp.StatusOK, postFrom(t, env.app, "2.2.2.2"))
		assert.Equal(t, nethttp.StatusTooManyRequests, postFrom(t, env.app, "1.1.1.1"))
		assert.Equal(t, 2, env.store.Count(constants.MessageCollection))
	})

	t.Run("untrusted header is ignored", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.RateLimit.ContactPerMinute = 1
		env := newTestApp(t, cfg, testkit.NewMemStore())

		assert.Equal(t, nethttp.StatusOK, postFrom(t, env.app, "1.1.1.1"))
		assert.Equal(t, nethttp.StatusTooManyRequests, postFrom(t, env.app, "2.2.2.2"))
	})
}

func TestDiagnostics(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		store := testkit.NewMemStore()
		_, err := store.CreateDocument(t.Context(), constants.MessageCollection, map[string]any{"name": "x"})
		require.NoError(t, err)
		env := newTestApp(t, testConfig(), store)

		code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/test", nil))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, "connected", body["status"])
		assert.Equal(t, "✅ Running", body["backend"])
		assert.Equal(t, "✅ Connected & Working", body["database"])
		assert.Equal(t, "Connected", body["connection_status"])
		assert.Equal(t, "✅ Set", body["database_url"])
		assert.Equal(t, "✅ Set", body["database_name"])
		assert.Equal(t, []any{constants.MessageCollection}, body["collections"])
	})

	t.Run("not configured", func(t *testing.T) {
		env := newTestApp(t, testConfig(), nil)

		code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/test", nil))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, "not_configured", body["status"])
		assert.Equal(t, "❌ Not Set", body["database_url"])
		assert.Equal(t, "❌ Not Set", body["database_name"])
		assert.Equal(t, "Not Connected", body["connection_status"])
		assert.Equal(t, []any{}, body["collections"])
	})

	t.Run("query failed", func(t *testing.T) {
		store := testkit.NewMemStore()
		store.ListErr = errors.New("(Unauthorized) not authorized on portfolio to execute command listCollections")
		env := newTestApp(t, testConfig(), store)

		code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/test", nil))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, "query_failed", body["status"])
		assert.Equal(t, "⚠️  Connected but Error: (Unauthorized) not authorized on portfolio to exec", body["database"])
		assert.Equal(t, "Connected", body["connection_status"])
		assert.Equal(t, []any{}, body["collections"])
		assert.Equal(t, 1, store.Pings)
	})

	t.Run("unreachable", func(t *testing.T) {
		store := testkit.NewMemStore()
		store.Err = errors.New("server selection error: context deadline exceeded, current topology")
		env := newTestApp(t, testConfig(), store)

		code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/test", nil))

		assert.Equal(t, nethttp.StatusOK, code)
		assert.Equal(t, "unreachable", body["status"])
		assert.True(t, strings.HasPrefix(body["database"].(string), "❌ Unreachable: server selection error"))
		assert.LessOrEqual(t, len([]rune(body["database"].(string))), len([]rune("❌ Unreachable: "))+50)
	})
}

func TestHealthProbes(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)
	for _, path := range []string{"/livez", "/readyz", "/startupz"} {
		resp, err := env.app.Test(httptest.NewRequest(nethttp.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode, path)
	}

	store := testkit.NewMemStore()
	store.Err = errors.New("no reachable servers")
	env = newTestApp(t, testConfig(), store)
	resp, err := env.app.Test(httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORS_ReflectsOriginWithCredentials(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/projects", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://portfolio.example.com")
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://portfolio.example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}

func TestRequestID(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)

	resp, err := env.app.Test(httptest.NewRequest(nethttp.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-abc")
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-abc", resp.Header.Get(middleware.HeaderRequestID))
}

func TestUnknownRoute(t *testing.T) {
	env := newTestApp(t, testConfig(), nil)

	code, body := doJSON(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/nope", nil))

	assert.Equal(t, nethttp.StatusNotFound, code)
	assert.NotEmpty(t, body["error"])
}
