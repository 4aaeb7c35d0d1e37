package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipefy/backend/internal/api"
	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/middleware"
	"github.com/recipefy/backend/internal/service"
	"github.com/recipefy/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	tokens  *service.TokenService
	metrics *metrics.Collector
}

func newTestServer(t *testing.T, store service.ObjectStore) *testServer {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	log := zap.NewNop()
	collector := metrics.NewCollector()
	tokens := service.NewTokenService("api-test-secret")

	recipes := service.NewRecipeService(db, log)
	settings := service.NewSettingsService(db, log)
	views := service.NewRecipeViewService(recipes, settings, collector)
	shopping := service.NewShoppingListService(db, recipes, log, collector)
	collections := service.NewCollectionService(db, log)
	media := service.NewMediaService(store, recipes, "recipes", log)

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.GET("/health", api.NewHealthHandler(db).HealthCheck)

	v1 := router.Group("/api/v1")
	api.NewQuantityHandler(collector).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	api.NewRecipeHandler(recipes, views, media, nil).RegisterRoutes(protected)
	api.NewShoppingListHandler(shopping, nil).RegisterRoutes(protected)
	api.NewSettingsHandler(settings).RegisterRoutes(protected)
	api.NewCollectionHandler(collections, nil).RegisterRoutes(protected)

	return &testServer{router: router, db: db, tokens: tokens, metrics: collector}
}

func (s *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

// do sends body as JSON when it is not already a reader and decodes the
// response into out when out is non-nil.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	if out != nil && rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr
}

func pancakeBody() map[string]interface{} {
	return map[string]interface{}{
		"title":           "Pancakes",
		"servings":        "4",
		"source_platform": "web",
		"source_url":      "https://example.com/pancakes",
		"ingredients": []map[string]string{
			{"line": "2 cups flour", "amount": "2 cups", "name": "flour"},
			{"line": "8 oz butter", "amount": "8 oz", "name": "butter"},
			{"line": "salt to taste", "amount": "to taste", "name": "salt"},
		},
		"instructions": []map[string]interface{}{
			{"text": "Mix"},
			{"text": "Fry"},
		},
		"tags": []string{"breakfast"},
	}
}
