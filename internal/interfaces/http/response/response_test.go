package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("production")
	os.Exit(m.Run())
}

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	r := gin.New()
	r.GET("/t", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		response.Success(c, http.StatusCreated, gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["ok"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", data["id"])
}

func TestErrorMapsAppError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("project not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "project not found", body["message"])
}

func TestErrorMapsRateLimit(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		response.Error(c, &domainerrors.RateLimitError{Policy: "global"})
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMIT", body["code"])
	assert.Equal(t, "Too many requests", body["message"])
}

func TestErrorMapsWrappedRateLimit(t *testing.T) {
	wrapped := errors.New("limiter: " + (&domainerrors.RateLimitError{Policy: "perKey"}).Error())
	// A plain wrapping string is not enough; the error chain is what counts.
	w, body := serve(t, func(c *gin.Context) {
		response.Error(c, wrapped)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", body["code"])
}

func TestErrorCollapsesUnknownErrors(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		response.Error(c, errors.New("pq: connection reset"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "Internal error", body["message"])
	assert.NotContains(t, w.Body.String(), "connection reset")
}
