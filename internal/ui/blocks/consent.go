package blocks

import (
	"context"

	"github.com/pathway-edu/website/internal/ctxkeys"
)

// googleAnalyticsID is the measurement ID to load, empty until the visitor
// accepted cookies.
func googleAnalyticsID(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil || ctxkeys.Consent(ctx) != ctxkeys.ConsentAccepted {
		return ""
	}
	return cfg.GoogleAnalyticsID
}

func plausibleDomain(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil || ctxkeys.Consent(ctx) != ctxkeys.ConsentAccepted {
		return ""
	}
	return cfg.PlausibleDomain
}

func plausibleScript(ctx context.Context) string {
	return "https://" + ctxkeys.Config(ctx).PlausibleHost + "/js/script.js"
}
