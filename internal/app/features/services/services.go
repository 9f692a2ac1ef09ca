// internal/app/features/services/services.go
package services

import (
	"net/http"

	servicestore "github.com/raiconsult/web/internal/app/store/service"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public services page.
type Handler struct {
	serviceStore *servicestore.Store
	logger       *zap.Logger
}

// NewHandler creates a new services Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		serviceStore: servicestore.New(db),
		logger:       logger,
	}
}

// ServicesVM is the view model for the services page. CoreServices is the
// curated grid; Services are the admin-managed records shown after it,
// newest first.
type ServicesVM struct {
	viewdata.BaseVM
	CoreServices []models.CoreService
	Services     []models.Service
}

// Routes returns a chi.Router with services routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the services page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := ServicesVM{
		BaseVM:       viewdata.New(r),
		CoreServices: models.CoreServices,
	}
	vm.Title = "Services"

	records, err := h.serviceStore.List(r.Context())
	if err != nil {
		h.logger.Warn("failed to list services", zap.Error(err))
		records = []models.Service{}
	}
	vm.Services = records

	templates.Render(w, r, "services/index", vm)
}
