package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogger/internal/auth"
	"blogger/internal/config"
	"blogger/internal/handlers"
	"blogger/internal/middleware"
	"blogger/internal/routes"
	"blogger/internal/services"

	"github.com/stretchr/testify/assert"
)

// testHandler wires real handlers over services without repositories; the
// requests below never reach the database.
func testHandler(cfg *config.Config) http.Handler {
	v := auth.NewStaticToken("t")
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(nil, v)),
		Blog:     handlers.NewBlogHandler(services.NewBlogService(nil, false)),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(nil)),
		Vendor:   handlers.NewVendorHandler(services.NewVendorService(nil)),
		Ad:       handlers.NewAdHandler(services.NewAdService(nil)),
	}
	return NewHandler(cfg, h, v)
}

func TestNewHandler_PingCarriesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler(&config.Config{Env: "dev"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestNewHandler_ValidationBeforeDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	r.Body = http.NoBody
	testHandler(&config.Config{Env: "dev"}).ServeHTTP(rec, r)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS_DevAllowsAnyOrigin(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	testHandler(&config.Config{Env: "dev"}).ServeHTTP(rec, r)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_ProdOnlyConfiguredOrigins(t *testing.T) {
	cfg := &config.Config{Env: "prod", DomainName: "blog.example.com", EC2IP: "10.0.0.1", FrontendPort: "3000"}
	h := testHandler(cfg)

	for _, origin := range []string{"https://blog.example.com", "http://blog.example.com", "http://10.0.0.1:3000"} {
		r := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
	}

	r := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
