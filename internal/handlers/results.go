package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/results"
)

func resultsPage(title string) map[string]any {
	return map[string]any{
		"Title":    title,
		"BusyText": results.BusyText,
	}
}

// Results shows the lookup form with the prompt text.
func Results(t *template.Template, desk *results.Desk) http.HandlerFunc {
	view := mustView(t, "results.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		data := resultsPage("Results")
		data["Message"] = directory.PromptText
		data["Busy"] = desk.Busy(visitorID(w, r))
		render(w, view, "results.tmpl", http.StatusOK, data)
	}
}

// ResultsSearch runs one lookup for the calling visitor. A lookup posted
// while another is pending for the same visitor is refused with 429.
func ResultsSearch(t *template.Template, desk *results.Desk) http.HandlerFunc {
	view := mustView(t, "results.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		visitor := visitorID(w, r)
		id := r.PostFormValue("admission")
		pin := r.PostFormValue("pin")

		data := resultsPage("Results")
		data["Admission"] = id
		data["Pin"] = pin

		res, err := desk.Search(r.Context(), visitor, id, pin)
		switch {
		case err == nil:
			data["Result"] = res
			render(w, view, "results.tmpl", http.StatusOK, data)
		case errors.Is(err, results.ErrBusy):
			data["Busy"] = true
			data["Message"] = results.BusyText
			render(w, view, "results.tmpl", http.StatusTooManyRequests, data)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// client went away
		default:
			status := http.StatusOK
			if !directory.Rejected(err) {
				log.Printf("results: lookup %q: %v", id, err)
				status = http.StatusInternalServerError
			}
			data["Message"] = directory.Notice(err)
			render(w, view, "results.tmpl", status, data)
		}
	}
}

// ResultsPrint renders the printable report with a verification QR code.
func ResultsPrint(t *template.Template, desk *results.Desk, school string) http.HandlerFunc {
	view := mustView(t, "results_print.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		id := r.PostFormValue("admission")
		pin := r.PostFormValue("pin")

		res, err := desk.Find(r.Context(), id, pin)
		if err != nil {
			if directory.Rejected(err) {
				http.Redirect(w, r, "/results", http.StatusSeeOther)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		qr, err := reportQR(school, res)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		render(w, view, "results_print.tmpl", http.StatusOK, map[string]any{
			"Title":  "Results · " + res.Name,
			"Result": res,
			"QR":     qr,
		})
	}
}
