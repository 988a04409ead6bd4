package forms

type Action int

const (
	ActSetValue Action = iota
	ActBlur
	ActSubmit
	ActToggleMask
)

// Event is one state-transition request against a form.
type Event struct {
	Action Action
	Field  string
	Value  string
}

func SetValue(field, value string) Event {
	return Event{Action: ActSetValue, Field: field, Value: value}
}

// Blur marks field as touched.
func Blur(field string) Event { return Event{Action: ActBlur, Field: field} }

func Submit() Event { return Event{Action: ActSubmit} }

func ToggleMask(field string) Event { return Event{Action: ActToggleMask, Field: field} }

type Outcome int

const (
	// Pending means the event did not finish a submit.
	Pending Outcome = iota
	Succeeded
	Blocked
)

// Result is what Dispatch hands back to the page. Submitted carries the
// values as they were at a successful submit, before the reset.
type Result struct {
	Outcome   Outcome
	Notice    string
	Submitted Values
}

// Dispatch applies e and returns its outcome. Events naming an unknown field
// are ignored.
func (f *Form) Dispatch(e Event) Result {
	switch e.Action {
	case ActSetValue:
		if f.Has(e.Field) {
			f.values[e.Field] = e.Value
		}
	case ActBlur:
		if f.Has(e.Field) {
			f.touched[e.Field] = true
		}
	case ActToggleMask:
		if i, ok := f.index[e.Field]; ok && f.specs[i].Kind == KindPassword {
			f.revealed[e.Field] = !f.revealed[e.Field]
		}
	case ActSubmit:
		return f.submit()
	}
	return Result{}
}

func (f *Form) submit() Result {
	for _, s := range f.specs {
		f.touched[s.Name] = true
	}
	if !f.AllValid() {
		return Result{Outcome: Blocked, Notice: FailureText}
	}
	sent := f.Values()
	f.reset()
	return Result{Outcome: Succeeded, Notice: f.successText, Submitted: sent}
}
