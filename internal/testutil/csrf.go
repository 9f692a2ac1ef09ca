package testutil

import (
	"context"
	"net/http"
)

// csrfTokenKey matches the context key gorilla/csrf uses internally, so a
// fake token can be injected for handler tests.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken adds a fake CSRF token to the request context. Handlers
// that call csrf.Token(r) (directly or through viewdata) then get a
// non-empty value instead of panicking outside the CSRF middleware.
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345")
	return r.WithContext(ctx)
}

// NewAuthenticatedRequestWithCSRF creates a request carrying both a signed-in
// user and a CSRF token, for testing form-rendering admin handlers.
func NewAuthenticatedRequestWithCSRF(method, target string, user TestUser) *http.Request {
	req := NewAuthenticatedRequest(method, target, user)
	return WithCSRFToken(req)
}
