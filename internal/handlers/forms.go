package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithss/website/internal/forms"
	"github.com/faithss/website/internal/notify"
	svc "github.com/faithss/website/internal/services"
)

// formPage is the fixed copy around one catalog form.
type formPage struct {
	Title   string
	Heading string
	Intro   string
	Submit  string
	Aside   *link
}

type link struct {
	Href string
	Text string
}

var formPages = map[string]formPage{
	"login": {
		Title:   "Login",
		Heading: "Welcome Back",
		Intro:   "Log in to access the student portal.",
		Submit:  "Login",
		Aside:   &link{Href: "/register", Text: "Don't have an account? Register here."},
	},
	"register": {
		Title:   "Register",
		Heading: "Create an Account",
		Intro:   "Register to apply for admission and follow your application.",
		Submit:  "Register",
		Aside:   &link{Href: "/login", Text: "Already registered? Log in."},
	},
	"contact": {
		Title:   "Contact Us",
		Heading: "Get in Touch",
		Intro:   "Questions about admissions, fees or results? Send us a message.",
		Submit:  "Send Message",
	},
}

// formView is the model consumed by the "form" partial.
type formView struct {
	Action   string
	Name     string
	Revealed []string
	Touched  []string
	Fields   []forms.FieldView
	Submit   string
}

func formData(f *forms.Form, action string, flash *Flash) map[string]any {
	p := formPages[f.Name()]
	return map[string]any{
		"Title":   p.Title,
		"Heading": p.Heading,
		"Intro":   p.Intro,
		"Aside":   p.Aside,
		"Flash":   flash,
		"Form": formView{
			Action:   action,
			Name:     f.Name(),
			Revealed: f.Revealed(),
			Touched:  f.TouchedFields(),
			Fields:   f.Fields(),
			Submit:   p.Submit,
		},
	}
}

// restore rebuilds a posted form: values, then the touched set and mask state
// carried in _touched and _shown inputs.
func restore(f *forms.Form, r *http.Request) {
	f.Load(r.PostFormValue)
	for _, name := range r.PostForm["_touched"] {
		f.Dispatch(forms.Blur(name))
	}
	for _, name := range r.PostForm["_shown"] {
		f.Dispatch(forms.ToggleMask(name))
	}
}

// FormPage serves one catalog form at its page path. GET renders it fresh.
// POST either flips a password mask (_toggle) or submits. A successful submit
// redirects back with ?ok=<form> so the page shows the notice over a reset
// form; a blocked one re-renders with every field touched.
func FormPage(t *template.Template, name string, n notify.Notifier) http.HandlerFunc {
	if _, ok := forms.Lookup(name); !ok {
		panic("handlers: unknown form " + name)
	}
	view := mustView(t, "form_page.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		f, _ := forms.Lookup(name)
		action := r.URL.Path

		if r.Method != http.MethodPost {
			render(w, view, "form_page.tmpl", http.StatusOK, formData(f, action, MakeFlash(r, "", "")))
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		restore(f, r)

		if field := r.PostFormValue("_toggle"); field != "" {
			f.Dispatch(forms.ToggleMask(field))
			render(w, view, "form_page.tmpl", http.StatusOK, formData(f, action, nil))
			return
		}

		res := f.Dispatch(forms.Submit())
		if res.Outcome != forms.Succeeded {
			render(w, view, "form_page.tmpl", http.StatusUnprocessableEntity,
				formData(f, action, &Flash{Kind: "error", Text: res.Notice}))
			return
		}

		log.Printf("forms: %s submitted", name)
		if name == "contact" && n != nil {
			if err := svc.ForwardContact(r.Context(), n, res.Submitted); err != nil {
				log.Printf("forms: forward contact: %v", err)
				http.Redirect(w, r, action+"?error=notify", http.StatusSeeOther)
				return
			}
		}
		http.Redirect(w, r, action+"?ok="+name, http.StatusSeeOther)
	}
}

type fieldCheck struct {
	Field   string `json:"field"`
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

// CheckField handles a blur: it loads the posted form, touches only the
// named field and reports that field's state.
func CheckField(w http.ResponseWriter, r *http.Request) {
	f, ok := forms.Lookup(chi.URLParam(r, "form"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	field := r.PostFormValue("_field")
	if !f.Has(field) {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}
	f.Load(r.PostFormValue)
	f.Dispatch(forms.Blur(field))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fieldCheck{
		Field:   field,
		State:   f.State(field).String(),
		Message: f.Message(field),
	})
}
