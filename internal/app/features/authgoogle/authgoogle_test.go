package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errorsfeature "github.com/raiconsult/web/internal/app/features/errors"
	"github.com/raiconsult/web/internal/app/store/oauthstate"
	"github.com/raiconsult/web/internal/app/system/auth"
	"github.com/raiconsult/web/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *mongo.Database, *oauthstate.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	oauthStateStore := oauthstate.New(db)

	sessionMgr, err := auth.NewSessionManager(
		"test-session-key-for-testing-1234567890",
		"test-session",
		"",
		24*time.Hour,
		false,
		logger,
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}

	handler := NewHandler(
		db,
		sessionMgr,
		errorsfeature.NewErrorLogger(logger),
		oauthStateStore,
		"test-client-id",
		"test-client-secret",
		"http://localhost:8080",
		logger,
	)

	return handler, db, oauthStateStore
}

func TestNewHandler(t *testing.T) {
	h, _, _ := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestRoutes(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := Routes(h)
	if router == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestStartAuth_RedirectsToGoogle(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()

	h.startAuth(rec, req)

	if rec.Code != http.StatusTemporaryRedirect && rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want redirect (307 or 303)", rec.Code)
	}

	location := rec.Header().Get("Location")
	if location == "" {
		t.Error("Location header should be set")
	}

	if rec.Code == http.StatusTemporaryRedirect {
		if !contains(location, "accounts.google.com") && !contains(location, "oauth") {
			t.Errorf("Location = %q, should contain Google OAuth URL or oauth", location)
		}
		if !contains(location, "state=") {
			t.Errorf("Location = %q, should carry a state parameter", location)
		}
	}
}

func TestCallback_InvalidState(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=invalid-state&code=test-code", nil)
	rec := httptest.NewRecorder()

	h.handleCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	location := rec.Header().Get("Location")
	if !contains(location, "error=oauth_failed") {
		t.Errorf("Location = %q, want to contain 'error=oauth_failed'", location)
	}
	if !contains(location, auth.LoginPath) {
		t.Errorf("Location = %q, want to contain %q", location, auth.LoginPath)
	}
}

func TestCallback_OAuthError(t *testing.T) {
	h, _, oauthStore := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state := "test-error-state-token"
	if err := oauthStore.Create(ctx, state); err != nil {
		t.Fatalf("failed to create state: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+state+"&error=access_denied", nil)
	rec := httptest.NewRecorder()

	h.handleCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	location := rec.Header().Get("Location")
	if !contains(location, "error=oauth_failed") {
		t.Errorf("Location = %q, want to contain 'error=oauth_failed'", location)
	}
}

func TestCallback_NoCode(t *testing.T) {
	h, _, oauthStore := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state := "test-valid-state-token"
	if err := oauthStore.Create(ctx, state); err != nil {
		t.Fatalf("failed to create state: %v", err)
	}

	// Token exchange fails without a code, so the callback should bail
	// out with an error redirect.
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+state, nil)
	rec := httptest.NewRecorder()

	h.handleCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestGenerateState(t *testing.T) {
	state1, err1 := generateState()
	if err1 != nil {
		t.Fatalf("generateState() error: %v", err1)
	}

	state2, err2 := generateState()
	if err2 != nil {
		t.Fatalf("generateState() error: %v", err2)
	}

	if state1 == state2 {
		t.Error("generateState() should produce unique values")
	}

	// base64 URL encoding of 32 bytes is 44 characters
	if len(state1) != 44 {
		t.Errorf("len(state) = %d, want 44", len(state1))
	}
}

func TestGoogleUserInfo(t *testing.T) {
	info := GoogleUserInfo{
		ID:            "123",
		Email:         "test@example.com",
		VerifiedEmail: true,
		Name:          "Test User",
		Picture:       "https://example.com/photo.jpg",
	}

	if info.ID != "123" {
		t.Errorf("ID = %q, want %q", info.ID, "123")
	}
	if info.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", info.Email, "test@example.com")
	}
	if !info.VerifiedEmail {
		t.Error("VerifiedEmail should be true")
	}
}

// contains is a helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsImpl(s, substr))
}

func containsImpl(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
