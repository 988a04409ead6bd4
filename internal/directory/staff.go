package directory

import (
	"cmp"
	"strings"

	"github.com/faithss/website/internal/models"
)

// AllDepartments is the pass-through department filter.
const AllDepartments = "All"

// Departments lists the filter buttons in display order.
var Departments = []string{AllDepartments, models.DeptScience, models.DeptArts, models.DeptCommercial}

type SortKey string

const (
	SortNone       SortKey = ""
	SortExperience SortKey = "experience"
	SortWAEC       SortKey = "waec"
)

// ParseSort maps a form value to a SortKey; anything unknown is SortNone.
func ParseSort(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortExperience:
		return SortExperience
	case SortWAEC:
		return SortWAEC
	}
	return SortNone
}

type StaffQuery struct {
	Department string
	Search     string
	Sort       SortKey
}

// Staff runs department filter, name search and stable sort over list. The
// input slice is never modified.
func Staff(list []models.Staff, q StaffQuery) []models.Staff {
	out := Filter(list, inDepartment(q.Department), nameContains(q.Search))
	SortStable(out, staffOrder(q.Sort))
	return out
}

func inDepartment(dept string) func(models.Staff) bool {
	return func(s models.Staff) bool {
		return dept == "" || dept == AllDepartments || s.Department == dept
	}
}

func nameContains(q string) func(models.Staff) bool {
	q = strings.ToLower(q)
	return func(s models.Staff) bool {
		return strings.Contains(strings.ToLower(s.Name), q)
	}
}

func staffOrder(k SortKey) func(a, b models.Staff) int {
	switch k {
	case SortExperience:
		return func(a, b models.Staff) int { return cmp.Compare(b.Experience, a.Experience) }
	case SortWAEC:
		return func(a, b models.Staff) int { return cmp.Compare(b.WAECPassRate, a.WAECPassRate) }
	}
	return nil
}
