package blocks

import (
	"context"
	"strings"

	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/ui"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{"Home", "/"},
	{"About", "/about"},
	{"Services", "/services"},
	{"Coverage", "/coverage"},
	{"Programmes", "/programmes"},
	{"Blogs", "/blogs"},
}

func appName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		return cfg.AppName
	}
	return "Pathway Education"
}

// isActive matches the link for the current section, so /blogs/x keeps Blogs lit.
func isActive(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

func navLinkClass(active bool) string {
	base := "text-sm text-gray-600 hover:text-blue-900"
	if active {
		return ui.Class(base, "font-semibold text-blue-900")
	}
	return base
}
