package handlers

import (
	"html/template"
	"net/http"
	"strconv"
)

func Home(t *template.Template) http.HandlerFunc {
	view := mustView(t, "home.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := staffData(r, "/")
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		data["Title"] = "Home"
		render(w, view, "home.tmpl", http.StatusOK, data)
	}
}

var coreValues = []string{"Excellence", "Integrity", "Discipline", "Service", "Faith"}

func About(t *template.Template) http.HandlerFunc {
	view := mustView(t, "about.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, view, "about.tmpl", http.StatusOK, map[string]any{
			"Title":  "About Us",
			"Values": coreValues,
		})
	}
}

type faq struct {
	Question string
	Answer   string
	Open     bool
	Toggle   int // faq index the link opens; -1 closes
}

var admissionFAQs = []faq{
	{Question: "What are the entry requirements for JSS 1?",
		Answer: "Candidates must have completed primary school and pass the entrance examination and interview."},
	{Question: "When does the admission window open?",
		Answer: "Forms are available from January to June each year for the session beginning in September."},
	{Question: "Is there a transfer option for SSS classes?",
		Answer: "Yes. Transfer candidates sit a placement test and must present their last school report."},
	{Question: "Do you offer boarding facilities?",
		Answer: "We are a day school; after-school supervised study runs until 5pm."},
}

var admissionSteps = []string{
	"Download and complete the application form.",
	"Submit the form with two passport photographs and a copy of the birth certificate.",
	"Sit the entrance examination on the scheduled date.",
	"Attend an interview with a parent or guardian.",
}

const prospectusURL = "https://www.africau.edu/images/default/sample.pdf"

// Admissions renders the FAQ as an accordion with at most one item open,
// selected by ?faq=<index>.
func Admissions(t *template.Template) http.HandlerFunc {
	view := mustView(t, "admissions.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		open := -1
		if n, err := strconv.Atoi(r.URL.Query().Get("faq")); err == nil && n >= 0 && n < len(admissionFAQs) {
			open = n
		}
		items := make([]faq, len(admissionFAQs))
		for i, f := range admissionFAQs {
			f.Open = i == open
			f.Toggle = i
			if f.Open {
				f.Toggle = -1
			}
			items[i] = f
		}
		render(w, view, "admissions.tmpl", http.StatusOK, map[string]any{
			"Title":      "Admissions",
			"FAQs":       items,
			"Steps":      admissionSteps,
			"Prospectus": prospectusURL,
		})
	}
}
