package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/auth"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-router-tests",
		TokenExpiration: time.Hour,
		Issuer:          "etsyali-test",
	})
}

// The middleware chain rejects every request exercised here before a
// handler runs, so the zero Handlers value is enough for routing tests.
func newTestEngine(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	engine := gin.New()
	jwtService := newTestJWTService()
	Setup(engine, jwtService, Handlers{})
	return engine, jwtService
}

func TestSetup_RegistersRoutes(t *testing.T) {
	engine, _ := newTestEngine(t)

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/login",
		"GET /api/v1/fournisseurs",
		"GET /api/v1/livraisons/export",
		"POST /api/v1/ventes",
		"POST /api/v1/credits/:id/paiements",
		"DELETE /api/v1/credits/paiements/:id",
		"PUT /api/v1/stocks/actuels/:id/ajuster",
		"POST /api/v1/inventaires/:id/valider",
		"PUT /api/v1/vehicules/:id/statut",
		"GET /api/v1/vehicules/:id/maintenances",
		"POST /api/v1/paies/:id/payer",
		"GET /api/v1/employes/:id/conges",
		"GET /api/v1/planifications/actives",
		"GET /api/v1/caisse/solde",
		"POST /api/v1/profits/rapports/generer",
		"GET /api/v1/statistiques/ventes",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s should be registered", route)
	}
}

func TestSetup_ProtectedRoutesRejectMissingToken(t *testing.T) {
	engine, _ := newTestEngine(t)

	paths := []string{
		"/api/v1/fournisseurs",
		"/api/v1/ventes",
		"/api/v1/statistiques/credits",
		"/api/v1/caisse/solde",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "GET %s without token", path)
	}
}

func TestSetup_DeleteRequiresAdminRole(t *testing.T) {
	engine, jwtService := newTestEngine(t)

	token, _, err := jwtService.GenerateToken(uuid.New(), "vendeur", auth.RoleGestionnaire)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/fournisseurs/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
