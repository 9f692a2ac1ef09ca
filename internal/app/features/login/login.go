// internal/app/features/login/login.go
package login

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

import (
	"net/http"

	errorsfeature "github.com/raiconsult/web/internal/app/features/errors"
	userstore "github.com/raiconsult/web/internal/app/store/users"
	"github.com/raiconsult/web/internal/app/system/auth"
	"github.com/raiconsult/web/internal/app/system/authutil"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides admin login handlers.
type Handler struct {
	userStore     *userstore.Store
	sessionMgr    *auth.SessionManager
	errLog        *errorsfeature.ErrorLogger
	googleEnabled bool
	logger        *zap.Logger
}

// NewHandler creates a new login Handler.
// Set googleEnabled when Google OAuth is configured so the login page
// shows the sign-in button.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userStore:     userstore.New(db),
		sessionMgr:    sessionMgr,
		errLog:        errLog,
		googleEnabled: googleEnabled,
		logger:        logger,
	}
}

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error         string
	LoginID       string
	ReturnURL     string
	GoogleEnabled bool
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)

	return r
}

// showLogin displays the login page.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in: go straight to the admin panel.
	if user, ok := auth.CurrentUser(r); ok && user.Role == "admin" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	// Map error codes to user-friendly messages
	errorCode := r.URL.Query().Get("error")
	errorMsg := ""
	switch errorCode {
	case "oauth_failed":
		errorMsg = "Google sign-in failed. Please try again."
	case "not_registered":
		errorMsg = "This Google account is not registered for admin access."
	case "account_disabled":
		errorMsg = "Account is disabled."
	case "service_unavailable":
		errorMsg = "Service temporarily unavailable. Please try again."
	case "":
		// No error
	default:
		errorMsg = errorCode
	}

	vm := LoginVM{
		BaseVM:        viewdata.New(r),
		ReturnURL:     query.Get(r, "return"),
		Error:         errorMsg,
		GoogleEnabled: h.googleEnabled,
	}
	vm.Title = "Admin Login"

	templates.Render(w, r, "login/index", vm)
}

// handleLogin processes a password login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	loginID := r.FormValue("login_id")
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	renderError := func(msg string) {
		vm := LoginVM{
			BaseVM:        viewdata.New(r),
			Error:         msg,
			LoginID:       loginID,
			ReturnURL:     returnURL,
			GoogleEnabled: h.googleEnabled,
		}
		vm.Title = "Admin Login"
		templates.Render(w, r, "login/index", vm)
	}

	if loginID == "" || password == "" {
		renderError("Please enter your Login ID and password")
		return
	}

	user, err := h.userStore.GetByLoginID(r.Context(), loginID)
	if err != nil {
		// Distinguish between "user not found" and database errors
		if err == mongo.ErrNoDocuments {
			h.logger.Info("login failed: user not found", zap.String("login_id", loginID))
			renderError("Invalid credentials")
			return
		}
		h.errLog.Log(r, "database error during login lookup", err)
		renderError("Service temporarily unavailable. Please try again.")
		return
	}

	if user.Status != "active" {
		h.logger.Info("login failed: user disabled", zap.String("user_id", user.ID.Hex()))
		renderError("Account is disabled")
		return
	}

	if user.AuthMethod == "google" {
		// Password form can't log in an OAuth-only account.
		renderError("This account signs in with Google")
		return
	}

	if user.PasswordHash == nil || !authutil.CheckPassword(password, *user.PasswordHash) {
		h.logger.Info("login failed: wrong password", zap.String("user_id", user.ID.Hex()))
		renderError("Invalid credentials")
		return
	}

	if err := h.createSession(w, r, user.ID, user.Role); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("login success", zap.String("user_id", user.ID.Hex()))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/admin"), http.StatusSeeOther)
}

// createSession creates the cookie session for the user.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request, userID primitive.ObjectID, role string) error {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return err
	}
	return h.sessionMgr.CreateSession(w, r, userID, role, token)
}
