package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"appforge.backend/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/v1/health", handlers.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"status":"up"}}`, w.Body.String())
}
