package htmlform

import "github.com/google/uuid"

// FieldType selects the control a field renders as.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldSelect   FieldType = "select"
)

// Option is a single choice in a dropdown field.
type Option struct {
	Value string
	Label string
}

// Field describes one form control together with its current value and
// display error. Fields are plain data; rendering happens in Form.Render.
type Field struct {
	ID          string
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Placeholder string
	Required    bool
	Options     []Option

	// Error is the message rendered next to the control. Empty means no
	// error is shown. Typically populated from the validate package.
	Error string
}

// FieldOption configures a field during construction.
type FieldOption func(*Field)

// WithID sets an explicit element ID instead of the generated one.
func WithID(id string) FieldOption {
	return func(f *Field) {
		f.ID = id
	}
}

// WithValue pre-fills the field.
func WithValue(value string) FieldOption {
	return func(f *Field) {
		f.Value = value
	}
}

// WithPlaceholder sets the placeholder attribute on text-like fields.
func WithPlaceholder(placeholder string) FieldOption {
	return func(f *Field) {
		f.Placeholder = placeholder
	}
}

// WithFieldRequired marks the field required in the rendered markup. This is
// a rendering hint only; actual presence checks live in the validate package.
func WithFieldRequired() FieldOption {
	return func(f *Field) {
		f.Required = true
	}
}

func newField(fieldType FieldType, name, label string, opts ...FieldOption) *Field {
	f := &Field{
		Name:  name,
		Label: label,
		Type:  fieldType,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.ID == "" {
		f.ID = "field-" + uuid.NewString()
	}
	return f
}

// TextInput creates a single-line text field.
func TextInput(name, label string, opts ...FieldOption) *Field {
	return newField(FieldText, name, label, opts...)
}

// EmailInput creates a text field with the email input type.
func EmailInput(name, label string, opts ...FieldOption) *Field {
	return newField(FieldEmail, name, label, opts...)
}

// PasswordInput creates a masked text field.
func PasswordInput(name, label string, opts ...FieldOption) *Field {
	return newField(FieldPassword, name, label, opts...)
}

// Dropdown creates a select field with the given options.
func Dropdown(name, label string, options []Option, opts ...FieldOption) *Field {
	f := newField(FieldSelect, name, label, opts...)
	f.Options = options
	return f
}
