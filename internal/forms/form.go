// Package forms is the field validation engine behind the login,
// registration and contact pages.
//
// A Form owns the value and touched flag of each field. Validity is derived
// from the field's predicate on every read and never stored. All mutation
// goes through Dispatch so each page action is one discrete event.
package forms

import (
	"fmt"
	"maps"
)

// Kind selects the input widget and which affordances apply.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPhone
	KindPassword
	KindDate
	KindSelect
	KindTextarea
)

// InputType is the HTML input type used when the field is rendered unmasked.
func (k Kind) InputType() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "tel"
	case KindPassword:
		return "password"
	case KindDate:
		return "date"
	case KindSelect:
		return "select"
	case KindTextarea:
		return "textarea"
	default:
		return "text"
	}
}

// Spec is a field's fixed contract. A nil Valid marks the field optional.
type Spec struct {
	Name        string
	Label       string
	Kind        Kind
	Valid       Predicate
	Message     string // shown whenever the field is in the error state
	Options     []string
	Placeholder string
}

func (s Spec) Optional() bool { return s.Valid == nil }

// State is the visual state of one field.
type State int

const (
	Neutral State = iota
	Error
	Success
)

func (s State) String() string {
	switch s {
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "neutral"
	}
}

// FailureText is the notice raised when a submit is blocked.
const FailureText = "Please correct the errors in the form."

type Form struct {
	name        string
	successText string
	specs       []Spec
	index       map[string]int
	values      Values
	touched     map[string]bool
	revealed    map[string]bool
}

// New builds a form with every field empty and untouched. It panics on a
// duplicate field name.
func New(name, successText string, specs ...Spec) *Form {
	f := &Form{
		name:        name,
		successText: successText,
		specs:       specs,
		index:       make(map[string]int, len(specs)),
		values:      make(Values, len(specs)),
		touched:     make(map[string]bool, len(specs)),
		revealed:    make(map[string]bool),
	}
	for i, s := range specs {
		if _, dup := f.index[s.Name]; dup {
			panic(fmt.Sprintf("forms: duplicate field %q in form %q", s.Name, name))
		}
		f.index[s.Name] = i
		f.values[s.Name] = ""
	}
	return f
}

func (f *Form) Name() string { return f.name }

func (f *Form) Specs() []Spec { return f.specs }

func (f *Form) Has(field string) bool {
	_, ok := f.index[field]
	return ok
}

func (f *Form) Value(field string) string { return f.values[field] }

func (f *Form) Touched(field string) bool { return f.touched[field] }

// Values returns a copy of the current values.
func (f *Form) Values() Values { return maps.Clone(f.values) }

// Valid evaluates the field's predicate against the current values. Unknown
// fields are never valid.
func (f *Form) Valid(field string) bool {
	i, ok := f.index[field]
	if !ok {
		return false
	}
	s := f.specs[i]
	if s.Optional() {
		return true
	}
	return s.Valid(f.values[field], f.values)
}

// AllValid is the AND of Valid over every field.
func (f *Form) AllValid() bool {
	for _, s := range f.specs {
		if !f.Valid(s.Name) {
			return false
		}
	}
	return true
}

func (f *Form) State(field string) State {
	i, ok := f.index[field]
	if !ok || f.specs[i].Optional() || !f.touched[field] {
		return Neutral
	}
	if f.Valid(field) {
		return Success
	}
	return Error
}

// Message is the field's fixed message while it is in the error state, and
// empty otherwise.
func (f *Form) Message(field string) string {
	if f.State(field) != Error {
		return ""
	}
	return f.specs[f.index[field]].Message
}

// Masked reports whether a password field currently hides its value.
func (f *Form) Masked(field string) bool {
	i, ok := f.index[field]
	if !ok || f.specs[i].Kind != KindPassword {
		return false
	}
	return !f.revealed[field]
}

// Load sets every field from get, typically r.PostFormValue.
func (f *Form) Load(get func(string) string) {
	for _, s := range f.specs {
		f.Dispatch(SetValue(s.Name, get(s.Name)))
	}
}

func (f *Form) reset() {
	for _, s := range f.specs {
		f.values[s.Name] = ""
		f.touched[s.Name] = false
	}
}

// SuccessText is the notice raised by a successful submit.
func (f *Form) SuccessText() string { return f.successText }
