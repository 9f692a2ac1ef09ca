// internal/app/features/blog/blog.go
package blog

import (
	"html/template"
	"net/http"
	"time"

	blogstore "github.com/raiconsult/web/internal/app/store/blog"
	"github.com/raiconsult/web/internal/app/system/markdown"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/app/system/youtube"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public blog page.
type Handler struct {
	blogStore *blogstore.Store
	logger    *zap.Logger
}

// NewHandler creates a new blog Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		blogStore: blogstore.New(db),
		logger:    logger,
	}
}

// PostVM is a store-backed post prepared for rendering. Manual posts carry
// ContentHTML; external-video posts carry EmbedURL instead.
type PostVM struct {
	Title       string
	Description string
	Thumbnail   string
	Kind        string
	ContentHTML template.HTML
	EmbedURL    string
	CreatedAt   time.Time
}

// IsVideo reports whether the post embeds a video player.
func (p PostVM) IsVideo() bool {
	return p.Kind == models.BlogKindExternalVideo
}

// BlogVM is the view model for the blog page. StaticPosts are the built-in
// editorial articles shown ahead of the admin-created Posts.
type BlogVM struct {
	viewdata.BaseVM
	StaticPosts []models.StaticPost
	Posts       []PostVM
}

// Routes returns a chi.Router with blog routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the blog page. Store-backed posts are listed newest first
// after the built-in articles.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := BlogVM{
		BaseVM:      viewdata.New(r),
		StaticPosts: models.StaticBlogPosts,
	}
	vm.Title = "Blog"

	records, err := h.blogStore.List(r.Context())
	if err != nil {
		h.logger.Warn("failed to list blog posts", zap.Error(err))
		records = []models.BlogPost{}
	}

	vm.Posts = make([]PostVM, 0, len(records))
	for _, post := range records {
		vm.Posts = append(vm.Posts, preparePost(post))
	}

	templates.Render(w, r, "blog/index", vm)
}

// preparePost converts a stored post into its render-ready form.
func preparePost(post models.BlogPost) PostVM {
	p := PostVM{
		Title:       post.Title,
		Description: post.Description,
		Thumbnail:   post.Thumbnail,
		Kind:        post.Kind,
		CreatedAt:   post.CreatedAt,
	}

	switch post.Kind {
	case models.BlogKindExternalVideo:
		if videoID, err := youtube.ExtractVideoID(post.VideoURL); err == nil {
			p.EmbedURL = youtube.EmbedURL(videoID)
		}
	default:
		p.ContentHTML = markdown.RenderOrEscape(post.Content)
	}

	return p
}
