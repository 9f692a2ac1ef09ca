// internal/app/features/admin/admin.go
//
// Package admin implements the management panel: a dashboard plus CRUD
// screens for blog posts, services, and projects, and the site settings
// editor. Every route here is mounted behind the session auth middleware.
package admin

import (
	"net/http"

	errorsfeature "github.com/raiconsult/web/internal/app/features/errors"
	blogstore "github.com/raiconsult/web/internal/app/store/blog"
	projectstore "github.com/raiconsult/web/internal/app/store/project"
	servicestore "github.com/raiconsult/web/internal/app/store/service"
	settingsstore "github.com/raiconsult/web/internal/app/store/settings"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/app/system/youtube"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the admin panel handlers.
type Handler struct {
	blogStore     *blogstore.Store
	serviceStore  *servicestore.Store
	projectStore  *projectstore.Store
	settingsStore *settingsstore.Store
	fileStorage   storage.Store
	ytClient      *youtube.Client
	errLog        *errorsfeature.ErrorLogger
	logger        *zap.Logger
}

// NewHandler creates a new admin Handler. ytClient may be nil when no API
// key is configured; the lookup endpoint then reports the feature as
// unavailable.
func NewHandler(
	db *mongo.Database,
	fileStorage storage.Store,
	ytClient *youtube.Client,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		blogStore:     blogstore.New(db),
		serviceStore:  servicestore.New(db),
		projectStore:  projectstore.New(db),
		settingsStore: settingsstore.New(db),
		fileStorage:   fileStorage,
		ytClient:      ytClient,
		errLog:        errLog,
		logger:        logger,
	}
}

// Routes returns a chi.Router with all admin panel routes mounted. The
// caller wraps it in the auth middleware.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.dashboard)

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.listBlogs)
		r.Get("/new", h.newBlogForm)
		r.Post("/", h.createBlog)
		r.Post("/youtube/lookup", h.lookupVideo)
		r.Get("/{id}/edit", h.editBlogForm)
		r.Post("/{id}", h.updateBlog)
		r.Post("/{id}/delete", h.deleteBlog)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.listServices)
		r.Get("/new", h.newServiceForm)
		r.Post("/", h.createService)
		r.Get("/{id}/edit", h.editServiceForm)
		r.Post("/{id}", h.updateService)
		r.Post("/{id}/delete", h.deleteService)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.listProjects)
		r.Get("/new", h.newProjectForm)
		r.Post("/", h.createProject)
		r.Get("/{id}/edit", h.editProjectForm)
		r.Post("/{id}", h.updateProject)
		r.Post("/{id}/delete", h.deleteProject)
	})

	r.Get("/settings", h.showSettings)
	r.Post("/settings", h.updateSettings)

	return r
}

// DashboardVM is the view model for the admin dashboard.
type DashboardVM struct {
	viewdata.BaseVM
	BlogCount    int64
	ServiceCount int64
	ProjectCount int64
}

// dashboard shows the record counts and links into each management tab.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := DashboardVM{BaseVM: viewdata.New(r)}
	vm.Title = "Dashboard"

	var err error
	if vm.BlogCount, err = h.blogStore.Count(ctx); err != nil {
		h.errLog.Log(r, "failed to count blog posts", err)
	}
	if vm.ServiceCount, err = h.serviceStore.Count(ctx); err != nil {
		h.errLog.Log(r, "failed to count services", err)
	}
	if vm.ProjectCount, err = h.projectStore.Count(ctx); err != nil {
		h.errLog.Log(r, "failed to count projects", err)
	}

	templates.Render(w, r, "admin/dashboard", vm)
}
