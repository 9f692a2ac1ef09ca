// internal/app/features/authgoogle/authgoogle.go
package authgoogle

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	errorsfeature "github.com/raiconsult/web/internal/app/features/errors"
	"github.com/raiconsult/web/internal/app/store/oauthstate"
	userstore "github.com/raiconsult/web/internal/app/store/users"
	"github.com/raiconsult/web/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler provides Google OAuth handlers for admin sign-in.
type Handler struct {
	userStore       *userstore.Store
	sessionMgr      *auth.SessionManager
	errLog          *errorsfeature.ErrorLogger
	oauthStateStore *oauthstate.Store
	oauthConfig     *oauth2.Config
	logger          *zap.Logger
}

// NewHandler creates a new Google OAuth Handler.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	oauthStateStore *oauthstate.Store,
	clientID string,
	clientSecret string,
	baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userStore:       userstore.New(db),
		sessionMgr:      sessionMgr,
		errLog:          errLog,
		oauthStateStore: oauthStateStore,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// Routes returns a chi.Router with Google OAuth routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.startAuth)
	r.Get("/callback", h.handleCallback)
	return r
}

// startAuth initiates the Google OAuth flow.
func (h *Handler) startAuth(w http.ResponseWriter, r *http.Request) {
	// Generate state token
	state, err := generateState()
	if err != nil {
		h.errLog.Log(r, "failed to generate state", err)
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Store state in database
	if err := h.oauthStateStore.Create(r.Context(), state); err != nil {
		h.errLog.Log(r, "failed to store state", err)
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Redirect to Google
	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// handleCallback processes the Google OAuth callback.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	// Verify state
	state := r.URL.Query().Get("state")
	if !h.oauthStateStore.Verify(r.Context(), state) {
		h.logger.Warn("invalid oauth state")
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Check for error from Google
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.logger.Warn("oauth error from google", zap.String("error", errMsg))
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Exchange code for token
	code := r.URL.Query().Get("code")
	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		h.errLog.Log(r, "failed to exchange code", err)
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Get user info from Google
	userInfo, err := h.getUserInfo(r.Context(), token)
	if err != nil {
		h.errLog.Log(r, "failed to get user info", err)
		http.Redirect(w, r, auth.LoginPath+"?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Google auth requires an existing admin account; accounts are
	// never auto-created from OAuth.
	user, err := h.userStore.GetByEmail(r.Context(), userInfo.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.logger.Info("google login for unregistered email", zap.String("email", userInfo.Email))
			http.Redirect(w, r, auth.LoginPath+"?error=not_registered", http.StatusSeeOther)
			return
		}
		h.errLog.Log(r, "failed to get user by email", err)
		http.Redirect(w, r, auth.LoginPath+"?error=service_unavailable", http.StatusSeeOther)
		return
	}

	// Check if user is active
	if user.Status != "active" {
		h.logger.Info("google login for disabled user", zap.String("user_id", user.ID.Hex()))
		http.Redirect(w, r, auth.LoginPath+"?error=account_disabled", http.StatusSeeOther)
		return
	}

	// Create session
	if err := h.createSession(w, r, user.ID, user.Role); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Redirect(w, r, auth.LoginPath+"?error=service_unavailable", http.StatusSeeOther)
		return
	}

	h.logger.Info("google login success", zap.String("user_id", user.ID.Hex()))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// GoogleUserInfo represents user info from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// getUserInfo fetches user info from Google.
func (h *Handler) getUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}

// generateState generates a random state token.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// createSession creates the cookie session for the user.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request, userID primitive.ObjectID, role string) error {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return err
	}
	return h.sessionMgr.CreateSession(w, r, userID, role, token)
}
