package blocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pathway-edu/website/internal/ctxkeys"
)

type footerColumn struct {
	Title string
	Links []navLink
}

var footerColumns = []footerColumn{
	{
		Title: "Explore",
		Links: []navLink{
			{"About Us", "/about"},
			{"Our Services", "/services"},
			{"Study Destinations", "/coverage"},
			{"Programmes", "/programmes"},
			{"Blogs", "/blogs"},
		},
	},
	{
		Title: "Legal",
		Links: []navLink{
			{"Privacy Policy", "/privacy-policy"},
			{"Terms of Use", "/terms-of-use"},
			{"Cookie Policy", "/cookie-policy"},
		},
	},
}

func tagline(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.AppTagline
	}
	return ""
}

func supportEmail(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.SupportEmail
	}
	return ""
}

func copyright(ctx context.Context) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), appName(ctx))
}
