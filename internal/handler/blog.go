package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
)

type BlogHandler struct {
	contentService *service.ContentService
}

func NewBlogHandler(contentService *service.ContentService) *BlogHandler {
	return &BlogHandler{
		contentService: contentService,
	}
}

func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.contentService.Blogs(r.Context())
	if err != nil {
		slog.Error("failed to load blogs", "error", err)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.BlogList(nil, true))
		return
	}

	ui.Render(w, r, pages.BlogList(blogs, false))
}

// ShowBlog treats a blog without title or content like a failed fetch.
func (h *BlogHandler) ShowBlog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	blog, err := h.contentService.Blog(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBlog) {
			slog.Warn("blog incomplete", "id", id)
		} else {
			slog.Error("failed to load blog", "id", id, "error", err)
		}
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.LoadFailed("Blog", pages.MsgBlogFailed))
		return
	}

	ui.Render(w, r, pages.BlogPost(blog))
}
