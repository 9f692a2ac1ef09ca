// internal/app/features/home/home.go
package home

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

// featuredProjectCount is how many recent projects the landing page shows.
const featuredProjectCount = 3

// Handler provides the landing page.
type Handler struct {
	projectStore *projectstore.Store
	logger       *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		projectStore: projectstore.New(db),
		logger:       logger,
	}
}

// HomeVM is the view model for the landing page.
type HomeVM struct {
	viewdata.BaseVM
	CoreServices     []models.CoreService
	FeaturedProjects []models.Project
	Testimonials     []models.Testimonial
	LatestPosts      []models.StaticPost
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the landing page: hero, about, vision, service grid,
// recent projects, testimonials, and the latest-articles strip.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := HomeVM{
		BaseVM:       viewdata.New(r),
		CoreServices: models.CoreServices,
		Testimonials: models.Testimonials,
		LatestPosts:  models.StaticBlogPosts,
	}
	vm.Title = "Home"

	projects, err := h.projectStore.ListRecent(r.Context(), featuredProjectCount)
	if err != nil {
		// The landing page still renders without the portfolio strip.
		h.logger.Warn("failed to load featured projects", zap.Error(err))
		projects = []models.Project{}
	}
	vm.FeaturedProjects = projects

	templates.Render(w, r, "home/index", vm)
}
