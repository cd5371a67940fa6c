package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/repositories"
	"appforge.backend/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicFixture(t *testing.T) (*gin.Engine, *entities.Project) {
	t.Helper()
	db := newHandlerDB(t, projectsTable)
	repo := repositories.NewProjectRepository(db)

	project := &entities.Project{
		OwnerDevID: uuid.New(),
		Name:       "Corner Shop",
		PublicSlug: "corner-shop",
		Domain:     "https://corner.example",
	}
	require.NoError(t, repo.Create(context.Background(), project))

	h := handlers.NewPublicHandler(repo)
	r := gin.New()
	r.GET("/public/projects/:id/privacy", h.PrivacyByID)
	r.GET("/public/projects/slug/:slug/privacy", h.PrivacyBySlug)
	return r, project
}

func getPage(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPrivacyByID(t *testing.T) {
	r, project := newPublicFixture(t)

	w := getPage(r, "/public/projects/"+project.ID.String()+"/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Corner Shop Privacy Policy")
	assert.Contains(t, w.Body.String(), "https://corner.example")
	assert.NotContains(t, w.Body.String(), "{{appName}}")
}

func TestPrivacyBySlug(t *testing.T) {
	r, _ := newPublicFixture(t)

	w := getPage(r, "/public/projects/slug/corner-shop/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corner Shop Privacy Policy")
}

func TestPrivacyNotFound(t *testing.T) {
	r, _ := newPublicFixture(t)

	for _, path := range []string{
		"/public/projects/not-a-uuid/privacy",
		"/public/projects/" + uuid.NewString() + "/privacy",
		"/public/projects/slug/no-such-slug/privacy",
	} {
		w := getPage(r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Not Found", w.Body.String(), path)
	}
}

func TestPrivacyEscapesProjectFields(t *testing.T) {
	db := newHandlerDB(t, projectsTable)
	repo := repositories.NewProjectRepository(db)
	project := &entities.Project{
		OwnerDevID: uuid.New(),
		Name:       `<script>alert("x")</script>`,
		Domain:     `https://evil.example/"><img>`,
	}
	require.NoError(t, repo.Create(context.Background(), project))

	h := handlers.NewPublicHandler(repo)
	r := gin.New()
	r.GET("/public/projects/:id/privacy", h.PrivacyByID)

	w := getPage(r, "/public/projects/"+project.ID.String()+"/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestPrivacyLanguageSelection(t *testing.T) {
	r, project := newPublicFixture(t)
	base := "/public/projects/" + project.ID.String() + "/privacy"

	w := getPage(r, base+"?lang=ar")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lang="ar"`)
	assert.Contains(t, w.Body.String(), "سياسة الخصوصية")

	// Anything unknown falls back to English.
	w = getPage(r, base+"?lang=fr")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lang="en"`)
	assert.Contains(t, w.Body.String(), "Data We Collect")
}
