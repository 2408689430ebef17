package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/provider"

	"github.com/gin-gonic/gin"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.JWT.ExpireHours = 1

	container, err := provider.Build(cfg)
	if err != nil {
		t.Fatalf("build container failed: %v", err)
	}
	return SetupRouter(cfg, container)
}

// The gateway redirects the buyer's browser to the success URL with no
// Authorization header; the confirmation route must be reachable without
// a token.
func TestPaymentSuccessRouteNeedsNoToken(t *testing.T) {
	r := setupRouterTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/success?session_id=cs_test_123", nil)
	r.ServeHTTP(w, req)

	if w.Code == http.StatusUnauthorized {
		t.Fatalf("payment success callback must not require auth, got 401: %s", w.Body.String())
	}
	// No gateway is configured in this test, so the handler reports the
	// payment service unavailable rather than an auth failure.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status want 500 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected failure envelope, got success")
	}
	if resp.Message != "payment service unavailable" {
		t.Fatalf("message want payment service unavailable got %q", resp.Message)
	}
}

func TestOrderRoutesStillRequireToken(t *testing.T) {
	r := setupRouterTest(t)

	for _, path := range []string{"/api/v1/orders", "/api/v1/orders/1", "/api/v1/cart"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token want 401 got %d", path, w.Code)
		}
	}
}
