package directory

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/faithss/website/internal/models"
)

var (
	ErrMissingID      = errors.New("missing admission number")
	ErrMissingPin     = errors.New("missing result pin")
	ErrBadAdmissionID = errors.New("invalid admission number format")
	ErrNotFound       = errors.New("no matching result")
)

var notices = map[error]string{
	ErrMissingID:      "Please enter your admission number.",
	ErrMissingPin:     "Please enter your result pin.",
	ErrBadAdmissionID: "Invalid admission number format. (e.g., FSS001)",
	ErrNotFound:       "No results found for that admission number and pin combination. Please check your entries.",
}

// Rejected reports whether err is a lookup refusal the visitor can correct,
// as opposed to a failure reading the records.
func Rejected(err error) bool {
	for e := range notices {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// PromptText is shown before any lookup has been made.
const PromptText = "Enter your admission number and pin to view results."

// Notice is the user-facing text for a lookup error.
func Notice(err error) string {
	for e, text := range notices {
		if errors.Is(err, e) {
			return text
		}
	}
	return "Something went wrong. Please try again."
}

// DefaultAdmissionPattern matches ids such as FSS001.
const DefaultAdmissionPattern = `^[Ff][Ss]{2}\d{3}$`

// DefaultTermOrder ranks terms; anything missing ranks 0.
var DefaultTermOrder = map[string]int{"First": 1, "Second": 2, "Third": 3}

// Policy holds the lookup rules that are not fixed business law: the
// admission id shape and the term ranking.
type Policy struct {
	Admission *regexp.Regexp
	TermOrder map[string]int
}

func DefaultPolicy() Policy {
	return Policy{
		Admission: regexp.MustCompile(DefaultAdmissionPattern),
		TermOrder: DefaultTermOrder,
	}
}

// NewPolicy compiles pattern; an empty pattern uses the default.
func NewPolicy(pattern string, order map[string]int) (Policy, error) {
	if pattern == "" {
		pattern = DefaultAdmissionPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Policy{}, fmt.Errorf("admission pattern: %w", err)
	}
	if order == nil {
		order = DefaultTermOrder
	}
	return Policy{Admission: re, TermOrder: order}, nil
}

// TermRank ranks "Second Term" and "Second" alike.
func (p Policy) TermRank(term string) int {
	t := strings.TrimSpace(term)
	if r, ok := p.TermOrder[t]; ok {
		return r
	}
	return p.TermOrder[strings.TrimSuffix(t, " Term")]
}

// Check validates the inputs without touching any record.
func (p Policy) Check(id, pin string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(pin) == "" {
		return ErrMissingPin
	}
	if !p.Admission.MatchString(id) {
		return ErrBadAdmissionID
	}
	return nil
}

// Lookup returns the latest-term record whose admission id matches
// case-insensitively and whose pin matches exactly.
func (p Policy) Lookup(records []models.Result, id, pin string) (models.Result, error) {
	if err := p.Check(id, pin); err != nil {
		return models.Result{}, err
	}
	found := Filter(records, func(r models.Result) bool {
		return strings.EqualFold(r.AdmissionID, id) && r.Pin == pin
	})
	if len(found) == 0 {
		return models.Result{}, ErrNotFound
	}
	SortStable(found, func(a, b models.Result) int {
		return p.TermRank(b.Term) - p.TermRank(a.Term)
	})
	return found[0], nil
}
