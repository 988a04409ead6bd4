package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/faithss/website/internal/views"
)

// mustView clones the shared layout set and adds one page file.
func mustView(t *template.Template, page string) *template.Template {
	view := template.Must(t.Clone())
	template.Must(view.ParseFS(views.FS, "pages/"+page))
	return view
}

func render(w http.ResponseWriter, view *template.Template, name string, status int, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
