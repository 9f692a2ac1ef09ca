// internal/app/features/projects/projects.go
package projects

import (
	"net/http"

	projectstore "github.com/raiconsult/web/internal/app/store/project"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public projects page.
type Handler struct {
	projectStore *projectstore.Store
	logger       *zap.Logger
}

// NewHandler creates a new projects Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		projectStore: projectstore.New(db),
		logger:       logger,
	}
}

// ProjectsVM is the view model for the projects page.
type ProjectsVM struct {
	viewdata.BaseVM
	Projects   []models.Project
	Categories []string
}

// Routes returns a chi.Router with projects routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the portfolio page, newest projects first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := ProjectsVM{
		BaseVM:     viewdata.New(r),
		Categories: models.ProjectCategories,
	}
	vm.Title = "Projects"

	records, err := h.projectStore.List(r.Context())
	if err != nil {
		h.logger.Warn("failed to list projects", zap.Error(err))
		records = []models.Project{}
	}
	vm.Projects = records

	templates.Render(w, r, "projects/index", vm)
}
