// internal/app/features/admin/projects.go
package admin

import (
	"net/http"
	"strings"

	projectstore "github.com/raiconsult/web/internal/app/store/project"
	"github.com/raiconsult/web/internal/app/system/formutil"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ProjectListVM is the view model for the project management list.
type ProjectListVM struct {
	viewdata.BaseVM
	Projects []models.Project
	Success  string
}

// ProjectFormVM carries a project form. Services uses the textarea
// presentation, one entry per line.
type ProjectFormVM struct {
	formutil.Base
	IsEdit       bool
	ProjectID    string
	ProjectTitle string
	Description  string
	Category     string
	Categories   []string
	Location     string
	Year         string
	Client       string
	Services     string
	Details      string
	Image        string // current image URL on edit
}

// listProjects shows all projects, newest first.
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list projects", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ProjectListVM{
		BaseVM:   viewdata.New(r),
		Projects: projects,
	}
	vm.Title = "Projects"
	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Project created."
	case "updated":
		vm.Success = "Project updated."
	case "deleted":
		vm.Success = "Project deleted."
	}

	templates.Render(w, r, "admin/project_list", vm)
}

// newProjectForm shows the empty create form.
func (h *Handler) newProjectForm(w http.ResponseWriter, r *http.Request) {
	vm := ProjectFormVM{
		Base:       formutil.NewBase(r, nil, "New Project", "/admin/projects"),
		Categories: models.ProjectCategories,
	}
	templates.Render(w, r, "admin/project_form", vm)
}

func projectFormFromRequest(r *http.Request) ProjectFormVM {
	return ProjectFormVM{
		ProjectTitle: strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		Location:     strings.TrimSpace(r.FormValue("location")),
		Year:         strings.TrimSpace(r.FormValue("year")),
		Client:       strings.TrimSpace(r.FormValue("client")),
		Services:     r.FormValue("services"),
		Details:      strings.TrimSpace(r.FormValue("details")),
	}
}

func validateProjectForm(form ProjectFormVM) string {
	if form.ProjectTitle == "" {
		return "Title is required."
	}
	if form.Description == "" {
		return "Description is required."
	}
	return ""
}

// createProject handles the create form.
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderProjectForm(w, r, projectFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := projectFormFromRequest(r)

	if msg := validateProjectForm(form); msg != "" {
		h.renderProjectForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "image", projectImagePrefix)
	if err != nil {
		h.errLog.Log(r, "project image upload failed", err)
		h.renderProjectForm(w, r, form, err.Error())
		return
	}

	_, err = h.projectStore.Create(ctx, projectstore.CreateInput{
		Title:       form.ProjectTitle,
		Description: form.Description,
		Image:       imageOr(upload, models.PlaceholderProjectImage),
		Category:    form.Category,
		Location:    form.Location,
		Year:        form.Year,
		Client:      form.Client,
		Services:    formutil.SplitLines(form.Services),
		Details:     form.Details,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to create project", err)
		h.renderProjectForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/projects?success=created", http.StatusSeeOther)
}

// editProjectForm loads the project into the form.
func (h *Handler) editProjectForm(w http.ResponseWriter, r *http.Request) {
	project, ok := h.projectByID(w, r)
	if !ok {
		return
	}

	vm := ProjectFormVM{
		Base:         formutil.NewBase(r, nil, "Edit Project", "/admin/projects"),
		IsEdit:       true,
		ProjectID:    project.ID.Hex(),
		ProjectTitle: project.Title,
		Description:  project.Description,
		Category:     project.Category,
		Categories:   models.ProjectCategories,
		Location:     project.Location,
		Year:         project.Year,
		Client:       project.Client,
		Services:     formutil.JoinLines(project.Services),
		Details:      project.Details,
		Image:        project.Image,
	}
	templates.Render(w, r, "admin/project_form", vm)
}

// updateProject overwrites the project, keeping the stored image URL
// unless a new file was uploaded.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.projectByID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderProjectForm(w, r, projectFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := projectFormFromRequest(r)
	form.IsEdit = true
	form.ProjectID = project.ID.Hex()
	form.Image = project.Image

	if msg := validateProjectForm(form); msg != "" {
		h.renderProjectForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "image", projectImagePrefix)
	if err != nil {
		h.errLog.Log(r, "project image upload failed", err)
		h.renderProjectForm(w, r, form, err.Error())
		return
	}

	err = h.projectStore.Update(ctx, project.ID, projectstore.UpdateInput{
		Title:       form.ProjectTitle,
		Description: form.Description,
		Image:       imageOr(upload, project.Image),
		Category:    form.Category,
		Location:    form.Location,
		Year:        form.Year,
		Client:      form.Client,
		Services:    formutil.SplitLines(form.Services),
		Details:     form.Details,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to update project", err)
		h.renderProjectForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/projects?success=updated", http.StatusSeeOther)
}

// deleteProject removes the project.
func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.projectByID(w, r)
	if !ok {
		return
	}

	if err := h.projectStore.Delete(r.Context(), project.ID); err != nil && err != mongo.ErrNoDocuments {
		h.errLog.Log(r, "failed to delete project", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("project deleted", zap.String("project_id", project.ID.Hex()))
	http.Redirect(w, r, "/admin/projects?success=deleted", http.StatusSeeOther)
}

func (h *Handler) renderProjectForm(w http.ResponseWriter, r *http.Request, form ProjectFormVM, errMsg string) {
	title := "New Project"
	if form.IsEdit {
		title = "Edit Project"
	}
	form.Base = formutil.NewBase(r, nil, title, "/admin/projects")
	form.Categories = models.ProjectCategories
	form.SetError(errMsg)
	templates.Render(w, r, "admin/project_form", form)
}

func (h *Handler) projectByID(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	project, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.NotFound(w, r)
		} else {
			h.errLog.Log(r, "failed to load project", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return project, true
}
