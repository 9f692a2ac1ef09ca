// internal/app/features/admin/blogs.go
package admin

import (
	"net/http"
	"strconv"
	"strings"

	blogstore "github.com/raiconsult/web/internal/app/store/blog"
	"github.com/raiconsult/web/internal/app/system/formutil"
	"github.com/raiconsult/web/internal/app/system/jsonutil"
	"github.com/raiconsult/web/internal/app/system/viewdata"
	"github.com/raiconsult/web/internal/app/system/youtube"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// blogPageSize is how many posts the management list shows per page.
const blogPageSize = 20

// BlogListVM is the view model for the blog management list.
type BlogListVM struct {
	viewdata.BaseVM
	Posts   []models.BlogPost
	Success string
	Page     int64
	PrevPage int64 // 0 when on the first page
	NextPage int64 // 0 when the current page is not full
}

// BlogFormVM carries a post form, for both create and edit.
type BlogFormVM struct {
	formutil.Base
	IsEdit      bool
	PostID      string
	PostTitle   string
	Description string
	Kind        string
	Content     string
	VideoURL    string
	Thumbnail   string // current thumbnail URL on edit
}

// listBlogs shows one page of posts, newest first.
func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	posts, err := h.blogStore.ListPage(r.Context(), blogPageSize, page)
	if err != nil {
		h.errLog.Log(r, "failed to list blog posts", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := BlogListVM{
		BaseVM: viewdata.New(r),
		Posts:  posts,
		Page:   page,
	}
	if page > 1 {
		vm.PrevPage = page - 1
	}
	if int64(len(posts)) == blogPageSize {
		vm.NextPage = page + 1
	}
	vm.Title = "Blog Posts"
	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Post created."
	case "updated":
		vm.Success = "Post updated."
	case "deleted":
		vm.Success = "Post deleted."
	}

	templates.Render(w, r, "admin/blog_list", vm)
}

// newBlogForm shows the empty create form.
func (h *Handler) newBlogForm(w http.ResponseWriter, r *http.Request) {
	vm := BlogFormVM{
		Base: formutil.NewBase(r, nil, "New Blog Post", "/admin/blogs"),
		Kind: models.BlogKindManual,
	}
	templates.Render(w, r, "admin/blog_form", vm)
}

// blogFormFromRequest reads the submitted post fields.
func blogFormFromRequest(r *http.Request) BlogFormVM {
	kind := r.FormValue("kind")
	if !models.IsValidBlogKind(kind) {
		kind = models.BlogKindManual
	}
	return BlogFormVM{
		PostTitle:   strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Kind:        kind,
		Content:     r.FormValue("content"),
		VideoURL:    strings.TrimSpace(r.FormValue("video_url")),
	}
}

// validateBlogForm returns an error message or "".
func validateBlogForm(form BlogFormVM) string {
	if form.PostTitle == "" {
		return "Title is required."
	}
	if form.Description == "" {
		return "Description is required."
	}
	if form.Kind == models.BlogKindExternalVideo {
		if _, err := youtube.ExtractVideoID(form.VideoURL); err != nil {
			return "Could not extract a video ID from that URL."
		}
	}
	return ""
}

// createBlog handles the create form: optional thumbnail upload, then the
// insert. A failed insert after a successful upload removes the blob.
func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderBlogForm(w, r, blogFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := blogFormFromRequest(r)

	if msg := validateBlogForm(form); msg != "" {
		h.renderBlogForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "thumbnail", blogThumbnailPrefix)
	if err != nil {
		h.errLog.Log(r, "thumbnail upload failed", err)
		h.renderBlogForm(w, r, form, err.Error())
		return
	}

	_, err = h.blogStore.Create(ctx, blogstore.CreateInput{
		Title:       form.PostTitle,
		Description: form.Description,
		Thumbnail:   imageOr(upload, models.PlaceholderBlogThumbnail),
		Content:     form.Content,
		Kind:        form.Kind,
		VideoURL:    form.VideoURL,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to create blog post", err)
		h.renderBlogForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=created", http.StatusSeeOther)
}

// editBlogForm loads the post into the form.
func (h *Handler) editBlogForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.blogByID(w, r)
	if !ok {
		return
	}

	vm := BlogFormVM{
		Base:        formutil.NewBase(r, nil, "Edit Blog Post", "/admin/blogs"),
		IsEdit:      true,
		PostID:      post.ID.Hex(),
		PostTitle:   post.Title,
		Description: post.Description,
		Kind:        post.Kind,
		Content:     post.Content,
		VideoURL:    post.VideoURL,
		Thumbnail:   post.Thumbnail,
	}
	templates.Render(w, r, "admin/blog_form", vm)
}

// updateBlog overwrites the post. The stored thumbnail URL is kept unless
// a new file was uploaded.
func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	post, ok := h.blogByID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderBlogForm(w, r, blogFormFromRequest(r), "Upload is too large (max 10MB).")
		return
	}

	ctx := r.Context()
	form := blogFormFromRequest(r)
	form.IsEdit = true
	form.PostID = post.ID.Hex()
	form.Thumbnail = post.Thumbnail

	if msg := validateBlogForm(form); msg != "" {
		h.renderBlogForm(w, r, form, msg)
		return
	}

	upload, err := h.uploadImage(ctx, r, "thumbnail", blogThumbnailPrefix)
	if err != nil {
		h.errLog.Log(r, "thumbnail upload failed", err)
		h.renderBlogForm(w, r, form, err.Error())
		return
	}

	err = h.blogStore.Update(ctx, post.ID, blogstore.UpdateInput{
		Title:       form.PostTitle,
		Description: form.Description,
		Thumbnail:   imageOr(upload, post.Thumbnail),
		Content:     form.Content,
		Kind:        form.Kind,
		VideoURL:    form.VideoURL,
	})
	if err != nil {
		h.discardUpload(ctx, upload)
		h.errLog.Log(r, "failed to update blog post", err)
		h.renderBlogForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=updated", http.StatusSeeOther)
}

// deleteBlog removes the post.
func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	post, ok := h.blogByID(w, r)
	if !ok {
		return
	}

	if err := h.blogStore.Delete(r.Context(), post.ID); err != nil && err != mongo.ErrNoDocuments {
		h.errLog.Log(r, "failed to delete blog post", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("blog post deleted", zap.String("post_id", post.ID.Hex()))
	http.Redirect(w, r, "/admin/blogs?success=deleted", http.StatusSeeOther)
}

// lookupVideo resolves a pasted YouTube URL to its title and thumbnail.
// Responds with JSON for the admin form's fetch call.
func (h *Handler) lookupVideo(w http.ResponseWriter, r *http.Request) {
	if h.ytClient == nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "Video lookup is not configured.")
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "Invalid request body.")
		return
	}

	info, err := h.ytClient.Lookup(r.Context(), req.URL)
	if err != nil {
		switch err {
		case youtube.ErrInvalidURL:
			jsonutil.BadRequest(w, "Could not extract a video ID from that URL.")
		case youtube.ErrNotFound:
			jsonutil.NotFound(w, "Video not found.")
		default:
			h.errLog.Log(r, "video lookup failed", err)
			jsonutil.Error(w, http.StatusBadGateway, "Video lookup failed.")
		}
		return
	}

	jsonutil.OK(w, info)
}

// renderBlogForm re-renders the form with an error and the submitted values.
func (h *Handler) renderBlogForm(w http.ResponseWriter, r *http.Request, form BlogFormVM, errMsg string) {
	title := "New Blog Post"
	if form.IsEdit {
		title = "Edit Blog Post"
	}
	form.Base = formutil.NewBase(r, nil, title, "/admin/blogs")
	form.SetError(errMsg)
	templates.Render(w, r, "admin/blog_form", form)
}

// blogByID resolves the {id} route parameter to a post, writing the
// response itself when the ID is bad or unknown.
func (h *Handler) blogByID(w http.ResponseWriter, r *http.Request) (*models.BlogPost, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	post, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.NotFound(w, r)
		} else {
			h.errLog.Log(r, "failed to load blog post", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return post, true
}
