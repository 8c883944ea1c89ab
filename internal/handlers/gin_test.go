package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"entries-api/internal/adapters/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore("entries")
	logger, _ := test.NewNullLogger()

	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		SaveHandler: NewSaveHandler(store, logger),
		GetHandler:  NewGetHandler(store, logger),
	})
	return router, store
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_SaveThenGet(t *testing.T) {
	router, store := setupTestRouter(t)

	w := serve(router, http.MethodPut, "/entries/123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All good!", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, 1, store.Len())

	w = serve(router, http.MethodGet, "/entries/123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"123"}`, w.Body.String())
}

func TestRoutes_MissingEntry(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/entries/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", w.Body.String())
}

func TestRoutes_MissingID(t *testing.T) {
	router, store := setupTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		w := serve(router, method, "/entries")
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
		assert.Equal(t, "Bad request", w.Body.String(), method)
	}
	assert.Equal(t, 0, store.Len())
}

func TestRoutes_Health(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
