package pages

import (
	"context"

	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/ui"
)

func pageTitle(ctx context.Context, title string) string {
	name := "Pathway Education"
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		name = cfg.AppName
	}
	if title == "" {
		return name
	}
	return title + " | " + name
}

func containerClass(class string) string {
	return ui.Class("mx-auto max-w-7xl px-4", class)
}
