package htmlform

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/validate"
)

// Form is an ordered collection of fields plus submission metadata. It is a
// host-independent element tree: nothing here touches a live document, and
// the same form value can be rendered any number of times.
//
// Form is not safe for concurrent mutation; build and render it from a
// single goroutine.
type Form struct {
	ID     string
	Action string
	Method string

	fields []*Field
}

// FormOption configures a form during construction.
type FormOption func(*Form)

// WithFormID sets an explicit element ID instead of the generated one.
func WithFormID(id string) FormOption {
	return func(f *Form) {
		f.ID = id
	}
}

// WithMethod overrides the default POST method.
func WithMethod(method string) FormOption {
	return func(f *Form) {
		f.Method = method
	}
}

// New creates an empty form posting to the given action URL.
func New(action string, opts ...FormOption) *Form {
	f := &Form{
		Action: action,
		Method: http.MethodPost,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.ID == "" {
		f.ID = "form-" + uuid.NewString()
	}
	return f
}

// AddField appends fields in order.
func (f *Form) AddField(fields ...*Field) {
	f.fields = append(f.fields, fields...)
}

// RemoveField deletes the first field with the given name and reports
// whether one was found.
func (f *Form) RemoveField(name string) bool {
	for i, field := range f.fields {
		if field.Name == name {
			f.fields = append(f.fields[:i], f.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup returns the first field with the given name.
func (f *Form) Lookup(name string) (*Field, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field, true
		}
	}
	return nil, false
}

// Fields returns the fields in render order. The slice is a copy; the fields
// themselves are shared.
func (f *Form) Fields() []*Field {
	out := make([]*Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Values collects the current field values keyed by field name, ready for
// submission.
func (f *Form) Values() url.Values {
	values := make(url.Values, len(f.fields))
	for _, field := range f.fields {
		values.Set(field.Name, field.Value)
	}
	return values
}

// SetValue updates the named field's value and reports whether the field
// exists.
func (f *Form) SetValue(name, value string) bool {
	field, ok := f.Lookup(name)
	if !ok {
		return false
	}
	field.Value = value
	return true
}

// SetError attaches an error message to the named field. Setting a new
// message replaces the previous one; the renderer shows it as a sibling
// element right after the control.
func (f *Form) SetError(name, message string) bool {
	field, ok := f.Lookup(name)
	if !ok {
		return false
	}
	field.Error = message
	return true
}

// ClearError removes the named field's error message.
func (f *Form) ClearError(name string) bool {
	field, ok := f.Lookup(name)
	if !ok {
		return false
	}
	field.Error = ""
	return true
}

// ClearErrors removes every field's error message.
func (f *Form) ClearErrors() {
	for _, field := range f.fields {
		field.Error = ""
	}
}

// ApplyErrors maps validation failures onto fields by name and returns how
// many messages were attached. Existing errors on fields the err does not
// mention are left alone. Errors that are not validate.ValidationErrors are
// ignored.
func (f *Form) ApplyErrors(err error) int {
	verrs := validate.ExtractValidationErrors(err)
	if verrs == nil {
		return 0
	}

	applied := 0
	for _, field := range f.fields {
		// First message per field wins, matching the validators' contract.
		if msgs := verrs.Get(field.Name); len(msgs) > 0 {
			field.Error = msgs[0]
			applied++
		}
	}
	return applied
}
