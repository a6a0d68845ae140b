// Package htmlform builds HTML form markup from a plain element tree: a Form
// holds an ordered list of Field values, fields are added and removed at
// runtime, and rendering writes escaped HTML to any io.Writer. Nothing in
// the package depends on a live document, so forms are constructed and
// tested without a rendering host.
//
// Error display mirrors the usual inline pattern: SetError attaches a
// message that renders as a sibling element immediately after the control,
// ClearError removes it, and ApplyErrors maps a validate.ValidationErrors
// value onto fields by name.
//
//	form := htmlform.New("/signup")
//	form.AddField(
//	    htmlform.EmailInput("email", "Email", htmlform.WithFieldRequired()),
//	    htmlform.PasswordInput("password", "Password"),
//	)
//	if msg := validate.Email(input); msg != "" {
//	    form.SetError("email", msg)
//	}
//	form.Render(w)
package htmlform
