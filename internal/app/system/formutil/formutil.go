// Package formutil provides helpers for form handling and re-rendering
// with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type newServiceData struct {
//		formutil.Base
//		Title       string
//		Description string
//	}
//
//	// In your handler:
//	data := newServiceData{
//		Base:  formutil.NewBase(r, db, "Add Service", "/admin/services"),
//		Title: title,
//	}
//	data.SetError("Title is required.")
//	templates.Render(w, r, "admin/service_form", data)
package formutil

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/raiconsult/web/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
)

// Base contains common fields for form pages that can be embedded in form data structs.
// It embeds viewdata.BaseVM for site settings and user context, and adds Error for form validation.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// NewBase creates a fully populated Base for a form page.
// This is the preferred way to create a Base for embedding in form view models.
func NewBase(r *http.Request, db *mongo.Database, title, backDefault string) Base {
	return Base{
		BaseVM: viewdata.NewBaseVM(r, db, title, backDefault),
	}
}

// SetError sets the error message on a Base struct.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}

// SplitLines converts a multi-line text-area value into an ordered list.
// Lines are split on \n (a trailing \r is trimmed), surrounding whitespace
// is removed, and blank lines are discarded. The transformation is
// idempotent: JoinLines followed by SplitLines returns the same list.
func SplitLines(s string) []string {
	items := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// JoinLines is the inverse presentation of SplitLines, used to populate
// text areas on edit forms.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
