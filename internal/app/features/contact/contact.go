// internal/app/features/contact/contact.go
package contact

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/raiconsult/web/internal/app/system/mailer"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler provides the public contact page and inquiry relay.
type Handler struct {
	sender    mailer.Sender
	contactTo string // staff address inquiries are delivered to
	logger    *zap.Logger
}

// NewHandler creates a new contact Handler. contactTo is the address
// inquiries are relayed to; when empty, submissions fail with the relay
// error shown on the form rather than silently dropping mail.
func NewHandler(sender mailer.Sender, contactTo string, logger *zap.Logger) *Handler {
	return &Handler{
		sender:    sender,
		contactTo: contactTo,
		logger:    logger,
	}
}

// FormVM carries the submitted values back to the form so a failed
// submission never loses the visitor's input.
type FormVM struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Service     string
	ProjectType string
	Message     string
}

// ContactVM is the view model for the contact page.
type ContactVM struct {
	viewdata.BaseVM
	Form           FormVM
	ServiceOptions []string
	ProjectTypes   []string
	Error          string
	Success        bool
	ReferenceID    string // shown on the success panel
}

// Routes returns a chi.Router with contact routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showForm)
	r.Post("/", h.handleSubmit)
	return r
}

func (h *Handler) newVM(r *http.Request) ContactVM {
	vm := ContactVM{
		BaseVM:         viewdata.New(r),
		ServiceOptions: models.ContactServiceOptions,
		ProjectTypes:   models.ContactProjectTypes,
	}
	vm.Title = "Contact Us"
	return vm
}

// showForm renders the empty contact form.
func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "contact/index", h.newVM(r))
}

// handleSubmit validates the inquiry and relays it by email. Validation
// happens before any delivery attempt.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := FormVM{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Company:     strings.TrimSpace(r.FormValue("company")),
		Service:     strings.TrimSpace(r.FormValue("service")),
		ProjectType: strings.TrimSpace(r.FormValue("project_type")),
		Message:     strings.TrimSpace(r.FormValue("message")),
	}

	renderError := func(msg string) {
		vm := h.newVM(r)
		vm.Form = form
		vm.Error = msg
		templates.Render(w, r, "contact/index", vm)
	}

	if msg := validate(form); msg != "" {
		renderError(msg)
		return
	}

	referenceID := shortReference()
	vm := h.newVM(r)

	textBody, htmlBody := mailer.ContactInquiryEmail(mailer.ContactInquiryData{
		SiteName:    vm.SiteName,
		ReferenceID: referenceID,
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		Company:     form.Company,
		Service:     form.Service,
		ProjectType: form.ProjectType,
		Message:     form.Message,
		SubmittedAt: time.Now().UTC(),
	})

	err := h.sender.Send(mailer.Email{
		To:       h.contactTo,
		ReplyTo:  form.Email,
		Subject:  "New inquiry from " + form.Name + " [" + referenceID + "]",
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		h.logger.Error("failed to relay contact inquiry",
			zap.String("reference_id", referenceID),
			zap.Error(err))
		renderError(err.Error())
		return
	}

	h.logger.Info("contact inquiry relayed", zap.String("reference_id", referenceID))

	// Success clears the form.
	vm.Success = true
	vm.ReferenceID = referenceID
	templates.Render(w, r, "contact/index", vm)
}

// validate returns an error message, or "" when the inquiry is acceptable.
// Name, email, and message are required; email must parse as an address.
func validate(form FormVM) string {
	if form.Name == "" {
		return "Please tell us your name."
	}
	if form.Email == "" {
		return "Please provide an email address so we can reply."
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		return "That email address doesn't look right."
	}
	if form.Message == "" {
		return "Please include a message about your project."
	}
	return ""
}

// shortReference generates the inquiry reference quoted in replies.
func shortReference() string {
	id := uuid.NewString()
	return "RCS-" + strings.ToUpper(id[:8])
}
