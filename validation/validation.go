// Package validation checks submitted form fields against per-field rules
// and reports the first violation of each field as a human-readable message.
// Validators return the normalized record together with an Errors map; they
// never panic past the boundary, so callers branch on Errors being empty.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

// Errors maps a form field name to the first error message recorded for it.
type Errors map[string]string

// add records a message for a field unless the field already failed an
// earlier rule.
func (e Errors) add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Ok reports whether validation passed.
func (e Errors) Ok() bool {
	return len(e) == 0
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// field reads a single form value, trimming surrounding whitespace.
func field(form url.Values, name string) string {
	return strings.TrimSpace(form.Get(name))
}
