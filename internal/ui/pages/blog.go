package pages

import (
	"net/url"

	"github.com/pathway-edu/website/internal/model"
)

const (
	MsgBlogsFailed = "Failed to load blogs. Please try again later."
	MsgBlogFailed  = "Failed to load blog. Please try again later."
	msgNoBlogs     = "No blogs found. Check back later for new insights!"
)

func publishedOn(b *model.Blog) string {
	if b.CreatedAt.IsZero() {
		return ""
	}
	return b.CreatedAt.Format("January 2, 2006")
}

func blogHref(b *model.Blog) string {
	return "/blogs/" + url.PathEscape(b.ID)
}
