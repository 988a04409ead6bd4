package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/faithss/website/internal/config"
	"github.com/faithss/website/internal/handlers"
	"github.com/faithss/website/internal/notify"
	"github.com/faithss/website/internal/results"
	"github.com/faithss/website/internal/reveal"
	"github.com/faithss/website/internal/views"
)

// Deps are the collaborators the handlers need beyond the database.
type Deps struct {
	Config   *config.Config
	Desk     *results.Desk
	Notifier notify.Notifier
}

func Router(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates(d.Config)

	r.Get("/healthz", handlers.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(views.Static()))))

	// Pages
	r.Get("/", handlers.Home(tmpl))
	about := handlers.About(tmpl)
	r.Get("/about", about)
	r.Get("/AboutFaith", about)
	r.Get("/admission", handlers.Admissions(tmpl))
	r.Get("/staff", handlers.Staff(tmpl))

	// Results lookup
	r.Get("/results", handlers.Results(tmpl, d.Desk))
	r.Post("/results", handlers.ResultsSearch(tmpl, d.Desk))
	r.Post("/results/print", handlers.ResultsPrint(tmpl, d.Desk, d.Config.SchoolName))

	// Validated forms
	login := handlers.FormPage(tmpl, "login", nil)
	register := handlers.FormPage(tmpl, "register", nil)
	contact := handlers.FormPage(tmpl, "contact", d.Notifier)
	r.Get("/login", login)
	r.Post("/login", login)
	r.Get("/register", register)
	r.Post("/register", register)
	for _, p := range []string{"/contact", "/ContactFaith"} {
		r.Get(p, contact)
		r.Post(p, contact)
	}
	r.Post("/forms/{form}/check", handlers.CheckField)

	return r
}

func mustParseTemplates(cfg *config.Config) *template.Template {
	loc := cfg.Location()
	funcs := template.FuncMap{
		"school": func() string { return cfg.SchoolName },
		"year":   func() string { return time.Now().In(loc).Format("2006") },
		"reveal": reveal.Markup,
		"join":   strings.Join,
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseFS(views.FS, "layouts/*.tmpl"))
	p = template.Must(p.ParseFS(views.FS, "partials/*.tmpl"))
	return p
}
