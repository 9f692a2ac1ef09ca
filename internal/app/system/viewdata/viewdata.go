// internal/app/system/viewdata/viewdata.go
package viewdata

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

import (
	"context"
	"html/template"
	"net/http"

	settingsstore "github.com/raiconsult/web/internal/app/store/settings"
	"github.com/raiconsult/web/internal/app/system/auth"
	"github.com/raiconsult/web/internal/app/system/authz"
	"github.com/raiconsult/web/internal/app/system/htmlsanitize"
	"github.com/raiconsult/web/internal/app/system/timeouts"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/gorilla/csrf"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, db, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings (from database)
	SiteName   string
	Tagline    string
	LogoURL    string
	FooterHTML template.HTML

	// Contact details for the footer and contact page
	ContactAddress string
	ContactPhone   string
	ContactEmail   string
	ContactHours   string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserID     string
	LoginID    string // User's login identifier (for per-user tracking)
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

// storageProvider is set by Init and used to generate logo URLs.
var storageProvider storage.Store

// globalDB is set by Init and used by New() to load settings.
var globalDB *mongo.Database

// Init sets the storage provider and database for viewdata.
// Call this once at startup from bootstrap.
func Init(store storage.Store, db *mongo.Database) {
	storageProvider = store
	globalDB = db
}

// NewBaseVM creates a fully populated BaseVM for a page.
// This is the preferred way to create a BaseVM for embedding in view models.
//
// Parameters:
//   - r: the HTTP request
//   - db: database for loading site settings (can be nil for defaults)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, db *mongo.Database, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)

	// NewBaseVM callers may pass a db other than the one given to Init.
	if db != nil && db != globalDB {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if settings, err := settingsstore.New(db).Get(ctx); err == nil && settings != nil {
			vm.applySettings(settings)
		}
	}

	return vm
}

// New creates a BaseVM with site settings loaded from the database.
// This is the standard way to create a BaseVM for most handlers.
func New(r *http.Request) BaseVM {
	role, name, userID, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:       models.DefaultSiteName,
		Tagline:        models.DefaultTagline,
		ContactAddress: models.DefaultContactAddress,
		ContactPhone:   models.DefaultContactPhone,
		ContactEmail:   models.DefaultContactEmail,
		ContactHours:   models.DefaultContactHours,
		IsLoggedIn:     signedIn,
		UserID:         userID.Hex(),
		Role:           role,
		UserName:       name,
		CurrentPath:    httpnav.CurrentPath(r),
		CSRFToken:      csrf.Token(r),
	}

	// Get LoginID from session if logged in
	if signedIn {
		if user, ok := auth.CurrentUser(r); ok {
			vm.LoginID = user.LoginID
		}
	}

	// Load site settings if database is available
	if globalDB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if settings, err := settingsstore.New(globalDB).Get(ctx); err == nil && settings != nil {
			vm.applySettings(settings)
		}
	}

	return vm
}

// applySettings overlays stored site settings onto the defaults.
func (vm *BaseVM) applySettings(settings *models.SiteSettings) {
	if settings.SiteName != "" {
		vm.SiteName = settings.SiteName
	}
	if settings.Tagline != "" {
		vm.Tagline = settings.Tagline
	}
	footerHTML := settings.FooterHTML
	if footerHTML == "" {
		footerHTML = models.DefaultFooterHTML
	}
	vm.FooterHTML = htmlsanitize.SanitizeToHTML(footerHTML)
	if settings.ContactAddress != "" {
		vm.ContactAddress = settings.ContactAddress
	}
	if settings.ContactPhone != "" {
		vm.ContactPhone = settings.ContactPhone
	}
	if settings.ContactEmail != "" {
		vm.ContactEmail = settings.ContactEmail
	}
	if settings.ContactHours != "" {
		vm.ContactHours = settings.ContactHours
	}
	if settings.HasLogo() && storageProvider != nil {
		vm.LogoURL = storageProvider.URL(settings.LogoPath)
	}
}

// GetSiteName returns the site name from settings, or the default if not available.
func GetSiteName(ctx context.Context, db *mongo.Database) string {
	if db == nil {
		return models.DefaultSiteName
	}

	settings, err := settingsstore.New(db).Get(ctx)
	if err != nil || settings == nil {
		return models.DefaultSiteName
	}
	return settings.SiteName
}

// GetSettings returns the full site settings, or defaults if not available.
func GetSettings(ctx context.Context, db *mongo.Database) models.SiteSettings {
	if db == nil {
		return models.SiteSettings{SiteName: models.DefaultSiteName}
	}

	settings, err := settingsstore.New(db).Get(ctx)
	if err != nil || settings == nil {
		return models.SiteSettings{SiteName: models.DefaultSiteName}
	}
	return *settings
}
