package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/hongminglow/warehouse-be/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by HTML.
const (
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
	PageError     = "error.html"
	PageNotFound  = "not_found.html"
)

var pages = []string{PageLogin, PageDashboard, PageError, PageNotFound}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page once at startup.
func New() (*Renderer, error) {
	rd := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		rd.pages[page] = t
	}
	return rd, nil
}

// HTML renders page with data plus the request's principal and path.
// Output is buffered so a failing template never sends half a page.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	t, ok := rd.pages[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		data["User"] = &p
	} else {
		data["User"] = nil
	}
	data["CurrentPath"] = r.URL.Path
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Gudang"
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Printf("render %s failed: %v", page, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("render %s: write failed: %v", page, err)
	}
}

var funcs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02 Jan 2006")
	},
	"text": func(s *string) string {
		if s == nil || *s == "" {
			return "-"
		}
		return *s
	},
	"qty": func(n *int64) string {
		if n == nil {
			return "0"
		}
		return fmt.Sprintf("%d", *n)
	},
}
