package htmlform

import (
	"html"
	"io"
	"strings"
)

// Render writes the form as HTML. Every user-supplied string is escaped, so
// field values coming straight from request input are safe to echo back.
func (f *Form) Render(w io.Writer) error {
	_, err := io.WriteString(w, f.RenderString())
	return err
}

// RenderString renders the form as an HTML string.
func (f *Form) RenderString() string {
	var b strings.Builder

	b.WriteString(`<form id="`)
	b.WriteString(html.EscapeString(f.ID))
	b.WriteString(`" action="`)
	b.WriteString(html.EscapeString(f.Action))
	b.WriteString(`" method="`)
	b.WriteString(html.EscapeString(f.Method))
	b.WriteString("\">\n")

	for _, field := range f.fields {
		renderField(&b, field)
	}

	b.WriteString("</form>\n")
	return b.String()
}

func renderField(b *strings.Builder, field *Field) {
	b.WriteString(`<div class="form-field">` + "\n")

	b.WriteString(`<label for="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(field.Label))
	b.WriteString("</label>\n")

	if field.Type == FieldSelect {
		renderSelect(b, field)
	} else {
		renderInput(b, field)
	}

	// The error text is the control's next sibling so that re-rendering
	// after SetError/ClearError swaps it in place.
	if field.Error != "" {
		b.WriteString(`<span class="field-error">`)
		b.WriteString(html.EscapeString(field.Error))
		b.WriteString("</span>\n")
	}

	b.WriteString("</div>\n")
}

func renderInput(b *strings.Builder, field *Field) {
	b.WriteString(`<input type="`)
	b.WriteString(html.EscapeString(string(field.Type)))
	b.WriteString(`" id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)

	if field.Value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(field.Value))
		b.WriteString(`"`)
	}
	if field.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(field.Placeholder))
		b.WriteString(`"`)
	}
	if field.Required {
		b.WriteString(` required`)
	}

	b.WriteString(">\n")
}

func renderSelect(b *strings.Builder, field *Field) {
	b.WriteString(`<select id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)
	if field.Required {
		b.WriteString(` required`)
	}
	b.WriteString(">\n")

	for _, opt := range field.Options {
		b.WriteString(`<option value="`)
		b.WriteString(html.EscapeString(opt.Value))
		b.WriteString(`"`)
		if opt.Value == field.Value && field.Value != "" {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(opt.Label))
		b.WriteString("</option>\n")
	}

	b.WriteString("</select>\n")
}
