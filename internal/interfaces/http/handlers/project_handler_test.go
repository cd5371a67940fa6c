package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/repositories"
	"appforge.backend/internal/interfaces/http/handlers"
	"appforge.backend/internal/interfaces/http/middleware"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectWeb(t *testing.T) (*gin.Engine, *entities.AuthenticatedDev) {
	t.Helper()
	db := newHandlerDB(t, projectsTable, secretsTable, `CREATE TABLE builds (
		id TEXT PRIMARY KEY,
		project_id TEXT,
		platform TEXT,
		workflow TEXT,
		ref TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)

	dev := &entities.AuthenticatedDev{ID: uuid.New(), Name: "owner", Role: entities.DevRoleDev}
	h := handlers.NewProjectHandler(usecases.NewProjectUsecase(repositories.NewProjectRepository(db)))

	r := gin.New()
	v1 := r.Group("/v1", func(c *gin.Context) {
		c.Set(middleware.DevKey, dev)
	})
	v1.POST("/projects", h.Create)
	v1.GET("/projects", h.List)
	v1.GET("/projects/:id", h.Get)
	v1.PATCH("/projects/:id", h.Update)
	v1.DELETE("/projects/:id", h.Delete)
	return r, dev
}

func projectRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w, out
}

func TestProjectCreateAndGet(t *testing.T) {
	r, dev := newProjectWeb(t)

	w, body := projectRequest(t, r, http.MethodPost, "/v1/projects",
		`{"name":"Corner Shop","domain":"https://corner.example","publicSlug":"corner"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Corner Shop", data["name"])
	assert.Equal(t, "corner", data["publicSlug"])
	assert.Equal(t, dev.ID.String(), data["ownerDevId"])

	id := data["id"].(string)
	w, body = projectRequest(t, r, http.MethodGet, "/v1/projects/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Corner Shop", body["data"].(map[string]interface{})["name"])
}

func TestProjectCreateValidation(t *testing.T) {
	r, _ := newProjectWeb(t)

	// name below minimum length
	w, body := projectRequest(t, r, http.MethodPost, "/v1/projects", `{"name":"a","domain":"https://x.example"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", body["code"])

	// missing domain
	w, body = projectRequest(t, r, http.MethodPost, "/v1/projects", `{"name":"Valid Name"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", body["code"])
}

func TestProjectSlugConflict(t *testing.T) {
	r, _ := newProjectWeb(t)

	w, _ := projectRequest(t, r, http.MethodPost, "/v1/projects",
		`{"name":"First","domain":"https://a.example","publicSlug":"shared"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := projectRequest(t, r, http.MethodPost, "/v1/projects",
		`{"name":"Second","domain":"https://b.example","publicSlug":"shared"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLUG_TAKEN", body["code"])
}

func TestProjectUpdate(t *testing.T) {
	r, _ := newProjectWeb(t)

	_, body := projectRequest(t, r, http.MethodPost, "/v1/projects",
		`{"name":"Before","domain":"https://a.example"}`)
	id := body["data"].(map[string]interface{})["id"].(string)

	w, body := projectRequest(t, r, http.MethodPatch, "/v1/projects/"+id,
		`{"name":"After","githubOwner":"acme","githubRepo":"shop"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "After", data["name"])
	assert.Equal(t, "acme", data["githubOwner"])
	// untouched field survives
	assert.Equal(t, "https://a.example", data["domain"])
}

func TestProjectDelete(t *testing.T) {
	r, _ := newProjectWeb(t)

	_, body := projectRequest(t, r, http.MethodPost, "/v1/projects",
		`{"name":"Doomed","domain":"https://a.example"}`)
	id := body["data"].(map[string]interface{})["id"].(string)

	w, body := projectRequest(t, r, http.MethodDelete, "/v1/projects/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["data"].(map[string]interface{})["deleted"])

	w, body = projectRequest(t, r, http.MethodGet, "/v1/projects/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestProjectInvalidID(t *testing.T) {
	r, _ := newProjectWeb(t)

	w, body := projectRequest(t, r, http.MethodGet, "/v1/projects/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", body["code"])
}

func TestProjectListScopedToOwner(t *testing.T) {
	r, _ := newProjectWeb(t)

	projectRequest(t, r, http.MethodPost, "/v1/projects", `{"name":"Mine","domain":"https://a.example"}`)

	w, body := projectRequest(t, r, http.MethodGet, "/v1/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := body["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Mine", items[0].(map[string]interface{})["name"])
}
