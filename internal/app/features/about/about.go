// internal/app/features/about/about.go
package about

import (
	"net/http"

	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides the about page.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new about Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// AboutVM is the view model for the about page.
type AboutVM struct {
	viewdata.BaseVM
	CoreServices []models.CoreService
	Testimonials []models.Testimonial
}

// Routes returns a chi.Router with about routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the about page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := AboutVM{
		BaseVM:       viewdata.New(r),
		CoreServices: models.CoreServices,
		Testimonials: models.Testimonials,
	}
	vm.Title = "About Us"

	templates.Render(w, r, "about/index", vm)
}
