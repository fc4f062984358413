package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kum096/Dashboard/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the dashboard pages from the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics on a malformed
// template, which can only happen at build time.
func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"statusLabel":   statusLabel,
		"statusChoices": statusChoices,
		"pathEscape":    url.PathEscape,
	}).ParseFS(templateFS, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// statusLabel turns "in_transit" into "In transit".
func statusLabel(status string) string {
	s := strings.ReplaceAll(status, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type statusSelect struct {
	Statuses []domain.ShipmentStatus
	Current  string
}

func statusChoices(statuses []domain.ShipmentStatus, current string) statusSelect {
	return statusSelect{Statuses: statuses, Current: string(domain.ParseStatus(current))}
}
