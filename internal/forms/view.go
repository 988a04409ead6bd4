package forms

// FieldView is what a template needs to draw one field.
type FieldView struct {
	Spec
	Value     string
	State     string
	Error     string
	Masked    bool
	InputType string
}

// Fields returns one view per field in declaration order.
func (f *Form) Fields() []FieldView {
	out := make([]FieldView, 0, len(f.specs))
	for _, s := range f.specs {
		out = append(out, f.Field(s.Name))
	}
	return out
}

func (f *Form) Field(name string) FieldView {
	i, ok := f.index[name]
	if !ok {
		return FieldView{}
	}
	s := f.specs[i]
	typ := s.Kind.InputType()
	masked := f.Masked(name)
	if s.Kind == KindPassword && !masked {
		typ = "text"
	}
	return FieldView{
		Spec:      s,
		Value:     f.values[name],
		State:     f.State(name).String(),
		Error:     f.Message(name),
		Masked:    masked,
		InputType: typ,
	}
}

// Revealed lists the password fields currently shown in clear text, so a
// page can carry the toggle state across requests.
func (f *Form) Revealed() []string {
	var out []string
	for _, s := range f.specs {
		if s.Kind == KindPassword && f.revealed[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}

// TouchedFields lists the touched fields in declaration order, so a page can
// carry them across requests alongside Revealed.
func (f *Form) TouchedFields() []string {
	var out []string
	for _, s := range f.specs {
		if f.touched[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}
