// internal/app/features/admin/settings.go
package admin

import (
	"net/http"
	"strings"

	"github.com/raiconsult/web/internal/app/system/auth"
	"github.com/raiconsult/web/internal/app/system/htmlsanitize"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// MaxFooterLength is the maximum allowed length for footer HTML (10KB).
const MaxFooterLength = 10000

// SettingsVM is the view model for the site settings page.
type SettingsVM struct {
	viewdata.BaseVM
	Settings *models.SiteSettings
	LogoURL  string // resolved URL for the uploaded logo, "" when none
	Success  string
	Error    string
}

// showSettings displays the site settings editor.
func (h *Handler) showSettings(w http.ResponseWriter, r *http.Request) {
	vm, ok := h.settingsVM(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("success") == "1" {
		vm.Success = "Settings saved."
	}

	templates.Render(w, r, "admin/settings", vm)
}

// updateSettings saves the site settings, including an optional logo
// upload. Footer HTML is sanitized before it is stored.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderSettingsError(w, r, "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()

	rawFooter := r.FormValue("footer_html")
	if len(rawFooter) > MaxFooterLength {
		h.renderSettingsError(w, r, "Footer HTML is too long. Maximum length is 10,000 characters.")
		return
	}

	current, err := h.settingsStore.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load settings", err)
		h.renderSettingsError(w, r, err.Error())
		return
	}

	settings := models.SiteSettings{
		SiteName:       strings.TrimSpace(r.FormValue("site_name")),
		Tagline:        strings.TrimSpace(r.FormValue("tagline")),
		LogoPath:       current.LogoPath,
		LogoName:       current.LogoName,
		ContactAddress: strings.TrimSpace(r.FormValue("contact_address")),
		ContactPhone:   strings.TrimSpace(r.FormValue("contact_phone")),
		ContactEmail:   strings.TrimSpace(r.FormValue("contact_email")),
		ContactHours:   strings.TrimSpace(r.FormValue("contact_hours")),
		FooterHTML:     htmlsanitize.Sanitize(rawFooter),
	}

	if settings.SiteName == "" {
		settings.SiteName = models.DefaultSiteName
	}

	if r.FormValue("remove_logo") != "" && current.HasLogo() {
		if err := h.fileStorage.Delete(ctx, current.LogoPath); err != nil {
			h.logger.Warn("failed to delete old logo",
				zap.String("path", current.LogoPath), zap.Error(err))
		}
		settings.LogoPath = ""
		settings.LogoName = ""
	}

	file, header, fileErr := r.FormFile("logo")
	if fileErr == nil && header != nil && header.Size > 0 {
		file.Close()

		if current.HasLogo() {
			if err := h.fileStorage.Delete(ctx, current.LogoPath); err != nil {
				h.logger.Warn("failed to delete old logo",
					zap.String("path", current.LogoPath), zap.Error(err))
			}
		}

		upload, err := h.uploadImage(ctx, r, "logo", "logos")
		if err != nil {
			h.errLog.Log(r, "logo upload failed", err)
			h.renderSettingsError(w, r, err.Error())
			return
		}
		settings.LogoPath = upload.Path
		settings.LogoName = header.Filename
	}

	if user, ok := auth.CurrentUser(r); ok {
		id := user.UserID()
		settings.UpdatedByID = &id
		settings.UpdatedByName = user.Name
	}

	if err := h.settingsStore.Save(ctx, settings); err != nil {
		h.errLog.Log(r, "failed to save settings", err)
		h.renderSettingsError(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/settings?success=1", http.StatusSeeOther)
}

func (h *Handler) settingsVM(w http.ResponseWriter, r *http.Request) (SettingsVM, bool) {
	settings, err := h.settingsStore.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load settings", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return SettingsVM{}, false
	}

	vm := SettingsVM{
		BaseVM:   viewdata.New(r),
		Settings: settings,
	}
	vm.Title = "Site Settings"
	if settings.HasLogo() {
		vm.LogoURL = h.fileStorage.URL(settings.LogoPath)
	}
	return vm, true
}

func (h *Handler) renderSettingsError(w http.ResponseWriter, r *http.Request, errMsg string) {
	vm, ok := h.settingsVM(w, r)
	if !ok {
		return
	}
	vm.Error = errMsg
	templates.Render(w, r, "admin/settings", vm)
}
