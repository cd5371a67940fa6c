package handlers

import (
	"embed"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"time"

	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:embed templates/privacy-policy-en.md templates/privacy-policy-ar.md
var privacyTemplates embed.FS

const privacyContactEmail = "support@example.com"

var templateVarPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// PublicHandler serves unauthenticated project pages.
type PublicHandler struct {
	projectRepo repositories.ProjectRepository
}

func NewPublicHandler(projectRepo repositories.ProjectRepository) *PublicHandler {
	return &PublicHandler{
		projectRepo: projectRepo,
	}
}

// PrivacyByID renders the project's privacy policy page.
func (h *PublicHandler) PrivacyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	project, err := h.projectRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	h.render(c, project.Name, project.Domain)
}

// PrivacyBySlug renders the privacy policy page addressed by public slug.
func (h *PublicHandler) PrivacyBySlug(c *gin.Context) {
	project, err := h.projectRepo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	h.render(c, project.Name, project.Domain)
}

func (h *PublicHandler) notFoundOrError(c *gin.Context, err error) {
	if err == domainerrors.ErrNotFound {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	response.Error(c, err)
}

func (h *PublicHandler) render(c *gin.Context, appName, domain string) {
	lang := normalizeLang(c.Query("lang"))

	raw, err := privacyTemplates.ReadFile("templates/privacy-policy-" + lang + ".md")
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	vars := map[string]string{
		"appName":      appName,
		"domain":       domain,
		"date":         time.Now().UTC().Format("2006-01-02"),
		"contactEmail": privacyContactEmail,
	}
	content := templateVarPattern.ReplaceAllStringFunc(string(raw), func(m string) string {
		key := templateVarPattern.FindStringSubmatch(m)[1]
		return vars[key]
	})

	safeName := html.EscapeString(appName)
	safeDomain := html.EscapeString(domain)
	safeContent := html.EscapeString(content)

	page := fmt.Sprintf(`<!doctype html>
<html lang="%s">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s - Privacy Policy</title>
  <style>
    body { font-family: Arial, sans-serif; background: #f7f8fb; margin: 0; padding: 0; }
    .container { max-width: 860px; margin: 40px auto; background: #fff; padding: 32px; border-radius: 12px; box-shadow: 0 8px 24px rgba(0,0,0,0.08); }
    h1 { margin-top: 0; }
    pre { white-space: pre-wrap; word-break: break-word; font-size: 14px; line-height: 1.6; }
    .meta { color: #666; font-size: 14px; }
    a { color: #2563eb; }
  </style>
</head>
<body>
  <div class="container">
    <h1>%s Privacy Policy</h1>
    <p class="meta">Website: <a href="%s">%s</a></p>
    <pre>%s</pre>
  </div>
</body>
</html>`, lang, safeName, safeName, safeDomain, safeDomain, safeContent)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, page)
}

func normalizeLang(input string) string {
	if input == "ar" || input == "AR" {
		return "ar"
	}
	return "en"
}
