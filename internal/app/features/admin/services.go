// internal/app/features/admin/services.go
package admin

import (
	"net/http"
	"strings"

	servicestore "github.com/raiconsult/web/internal/app/store/service"
	"github.com/raiconsult/web/internal/app/system/formutil"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServiceListVM is the view model for the service management list.
type ServiceListVM struct {
	viewdata.BaseVM
	Services []models.Service
	Success  string
}

// ServiceFormVM carries a service form, for both create and edit.
// Features is the textarea presentation, one entry per line.
type ServiceFormVM struct {
	formutil.Base
	IsEdit       bool
	ServiceID    string
	ServiceTitle string
	Description  string
	Features     string
	Benefits     string
	Image        string // current image URL on edit
}

// listServices shows all services, newest first.
func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list services", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ServiceListVM{
		BaseVM:   viewdata.New(r),
		Services: services,
	}
	vm.Title = "Services"
	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Service created."
	case "updated":
		vm.Success = "Service updated."
	case "deleted":
		vm.Success = "Service deleted."
	}

	templates.Render(w, r, "admin/service_list", vm)
}

// newServiceForm shows the empty create form.
func (h *Handler) newServiceForm(w http.ResponseWriter, r *http.Request) {
	vm := ServiceFormVM{
		Base: formutil.NewBase(r, nil, "New Service", "/admin/services"),
	}
	templates.Render(w, r, "admin/service_form", vm)
}

func serviceFormFromRequest(r *http.Request) ServiceFormVM {
	return ServiceFormVM{
		ServiceTitle: strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Features:     r.FormValue("features"),
		Benefits:     strings.TrimSpace(r.FormValue("benefits")),
	}
}

func validateServiceForm(form ServiceFormVM) string {
	if form.ServiceTitle == "" {
		return "Title is required."
	}
	if form.Description == "" {
		return "Description is required."
	}
	return ""
}

// createService handles the create form.
func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderServiceForm(w, r, serviceFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := serviceFormFromRequest(r)

	if msg := validateServiceForm(form); msg != "" {
		h.renderServiceForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "image", serviceImagePrefix)
	if err != nil {
		h.errLog.Log(r, "service image upload failed", err)
		h.renderServiceForm(w, r, form, err.Error())
		return
	}

	_, err = h.serviceStore.Create(ctx, servicestore.CreateInput{
		Title:       form.ServiceTitle,
		Description: form.Description,
		Image:       imageOr(upload, models.PlaceholderServiceImage),
		Features:    formutil.SplitLines(form.Features),
		Benefits:    form.Benefits,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to create service", err)
		h.renderServiceForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/services?success=created", http.StatusSeeOther)
}

// editServiceForm loads the service into the form.
func (h *Handler) editServiceForm(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.serviceByID(w, r)
	if !ok {
		return
	}

	vm := ServiceFormVM{
		Base:         formutil.NewBase(r, nil, "Edit Service", "/admin/services"),
		IsEdit:       true,
		ServiceID:    svc.ID.Hex(),
		ServiceTitle: svc.Title,
		Description:  svc.Description,
		Features:     formutil.JoinLines(svc.Features),
		Benefits:     svc.Benefits,
		Image:        svc.Image,
	}
	templates.Render(w, r, "admin/service_form", vm)
}

// updateService overwrites the service, keeping the stored image URL
// unless a new file was uploaded.
func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.serviceByID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderServiceForm(w, r, serviceFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := serviceFormFromRequest(r)
	form.IsEdit = true
	form.ServiceID = svc.ID.Hex()
	form.Image = svc.Image

	if msg := validateServiceForm(form); msg != "" {
		h.renderServiceForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "image", serviceImagePrefix)
	if err != nil {
		h.errLog.Log(r, "service image upload failed", err)
		h.renderServiceForm(w, r, form, err.Error())
		return
	}

	err = h.serviceStore.Update(ctx, svc.ID, servicestore.UpdateInput{
		Title:       form.ServiceTitle,
		Description: form.Description,
		Image:       imageOr(upload, svc.Image),
		Features:    formutil.SplitLines(form.Features),
		Benefits:    form.Benefits,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to update service", err)
		h.renderServiceForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/services?success=updated", http.StatusSeeOther)
}

// deleteService removes the service.
func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.serviceByID(w, r)
	if !ok {
		return
	}

	if err := h.serviceStore.Delete(r.Context(), svc.ID); err != nil && err != mongo.ErrNoDocuments {
		h.errLog.Log(r, "failed to delete service", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("service deleted", zap.String("service_id", svc.ID.Hex()))
	http.Redirect(w, r, "/admin/services?success=deleted", http.StatusSeeOther)
}

func (h *Handler) renderServiceForm(w http.ResponseWriter, r *http.Request, form ServiceFormVM, errMsg string) {
	title := "New Service"
	if form.IsEdit {
		title = "Edit Service"
	}
	form.Base = formutil.NewBase(r, nil, title, "/admin/services")
	form.SetError(errMsg)
	templates.Render(w, r, "admin/service_form", form)
}

func (h *Handler) serviceByID(w http.ResponseWriter, r *http.Request) (*models.Service, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	svc, err := h.serviceStore.GetByID(r.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.NotFound(w, r)
		} else {
			h.errLog.Log(r, "failed to load service", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return svc, true
}
