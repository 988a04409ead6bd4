package forms

import (
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Values is a read-only view of a form's current field values, keyed by field
// name. Predicates use it to read sibling fields.
type Values map[string]string

// Predicate reports whether value is acceptable. Predicates must be pure.
type Predicate func(value string, ctx Values) bool

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10,}$`)
)

// MinTrimmed accepts values whose trimmed length is at least n characters.
func MinTrimmed(n int) Predicate {
	return func(v string, _ Values) bool {
		return utf8.RuneCountInString(strings.TrimSpace(v)) >= n
	}
}

// MinLength accepts values of at least n characters, whitespace included.
func MinLength(n int) Predicate {
	return func(v string, _ Values) bool {
		return utf8.RuneCountInString(v) >= n
	}
}

// Email accepts local@domain.tld shapes with no whitespace anywhere.
func Email(v string, _ Values) bool { return reEmail.MatchString(v) }

// Phone accepts ten or more ASCII digits and nothing else.
func Phone(v string, _ Values) bool { return rePhone.MatchString(v) }

// Matches accepts a non-empty value equal to the sibling field's value.
func Matches(field string) Predicate {
	return func(v string, ctx Values) bool {
		return v != "" && v == ctx[field]
	}
}

// OneOf accepts a non-empty value from options.
func OneOf(options []string) Predicate {
	return func(v string, _ Values) bool {
		return v != "" && slices.Contains(options, v)
	}
}

// Date accepts values that parse with layout.
func Date(layout string) Predicate {
	return func(v string, _ Values) bool {
		if v == "" {
			return false
		}
		_, err := time.Parse(layout, v)
		return err == nil
	}
}
