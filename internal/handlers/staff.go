package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/models"
	"github.com/faithss/website/internal/reveal"
	svc "github.com/faithss/website/internal/services"
)

// Cards enter one after another.
const cardStagger = 100 * time.Millisecond

type staffCard struct {
	models.Staff
	Reveal template.HTMLAttr
}

func staffQuery(r *http.Request) directory.StaffQuery {
	q := r.URL.Query()
	dept := strings.TrimSpace(q.Get("dept"))
	if dept == "" {
		dept = directory.AllDepartments
	}
	return directory.StaffQuery{
		Department: dept,
		Search:     q.Get("q"),
		Sort:       directory.ParseSort(q.Get("sort")),
	}
}

// staffData builds the staff section model for the page at path. ?bio=<i>
// opens the bio of the i-th card in the filtered list.
func staffData(r *http.Request, path string) (map[string]any, error) {
	q := staffQuery(r)
	list, err := svc.StaffDirectory(r.Context(), q)
	if err != nil {
		return nil, err
	}

	cards := make([]staffCard, len(list))
	for i, s := range list {
		sec, err := reveal.New(reveal.Up, reveal.DefaultThreshold, reveal.Stagger(0, cardStagger, i))
		if err != nil {
			return nil, err
		}
		cards[i] = staffCard{Staff: s, Reveal: sec.Attrs()}
	}

	var selected *models.Staff
	if i, err := strconv.Atoi(r.URL.Query().Get("bio")); err == nil && i >= 0 && i < len(list) {
		selected = &list[i]
	}

	return map[string]any{
		"Path":        path,
		"Departments": directory.Departments,
		"Query":       q,
		"Cards":       cards,
		"Selected":    selected,
	}, nil
}

func Staff(t *template.Template) http.HandlerFunc {
	view := mustView(t, "staff.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := staffData(r, "/staff")
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		data["Title"] = "Our Staff"
		render(w, view, "staff.tmpl", http.StatusOK, data)
	}
}
