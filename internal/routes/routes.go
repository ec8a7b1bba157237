package routes

import (
	"io/fs"
	"net/http"

	"github.com/pathway-edu/website/assets"
	"github.com/pathway-edu/website/internal/app"
	"github.com/pathway-edu/website/internal/handler"
	"github.com/pathway-edu/website/internal/middleware"
	"github.com/rs/cors"
)

// maxFormBodyBytes bounds a page form post: the largest allowed upload (a
// 10MB PDF) plus the other fields of its section.
const maxFormBodyBytes = 16 << 20

func SetupRoutes(app *app.App) http.Handler {
	cfg := app.Cfg

	// Handlers
	home := handler.NewHomeHandler(app.ContentService, app.MarketService)
	blog := handler.NewBlogHandler(app.ContentService)
	programme := handler.NewProgrammeHandler(app.ContentService, app.ApplicationService, app.FileService)
	eligibility := handler.NewEligibilityHandler(app.ContentService, app.ApplicationService, app.FileService)
	coverage := handler.NewCoverageHandler(app.MarketService)
	legal := handler.NewLegalHandler(app.LegalService)
	newsletter := handler.NewNewsletterHandler(app.EmailService)
	consent := handler.NewConsentHandler(cfg.IsProduction())
	proxy := handler.NewProxyHandler(app.Upstream)

	mux := http.NewServeMux()

	// ============================================================================
	// PAGES
	// ============================================================================

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Marketing
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /about", home.AboutPage)
	mux.HandleFunc("GET /services", home.ServicesPage)
	mux.HandleFunc("GET /coverage", coverage.CoveragePage)
	mux.HandleFunc("GET /coverage/{country}", coverage.CountryPage)

	// Content
	mux.HandleFunc("GET /blogs", blog.ListBlogs)
	mux.HandleFunc("GET /blogs/{id}", blog.ShowBlog)
	mux.HandleFunc("GET /programmes", programme.ListProgrammes)
	mux.HandleFunc("GET /programmes/{id}", programme.ShowProgramme)

	// Applications
	mux.HandleFunc("GET /programmes/{id}/apply", programme.ApplyPage)
	mux.HandleFunc("POST /programmes/{id}/apply", programme.Apply)
	mux.HandleFunc("GET /apply-for-eligibility", eligibility.EligibilityPage)
	mux.HandleFunc("POST /apply-for-eligibility", eligibility.Submit)

	// Legal
	mux.HandleFunc("GET /privacy-policy", legal.Page("privacy-policy"))
	mux.HandleFunc("GET /terms-of-use", legal.Page("terms-of-use"))
	mux.HandleFunc("GET /cookie-policy", legal.Page("cookie-policy"))

	// Forms
	mux.HandleFunc("POST /newsletter/subscribe", newsletter.Subscribe)
	mux.HandleFunc("POST /cookie-consent", consent.Save)

	// ============================================================================
	// PROXY API (/api/proxy-*)
	// ============================================================================

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{cfg.AppURL}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           300,
	})
	postLimit := middleware.RateLimit(cfg.ProxyRateLimit, cfg.ProxyRateWindow)

	mux.Handle("GET /api/proxy-blogs", c.Handler(http.HandlerFunc(proxy.Blogs)))
	mux.Handle("GET /api/proxy-blogs/{id}", c.Handler(http.HandlerFunc(proxy.Blog)))
	mux.Handle("GET /api/proxy-programme", c.Handler(http.HandlerFunc(proxy.Programmes)))
	mux.Handle("GET /api/proxy-programme/{id}", c.Handler(http.HandlerFunc(proxy.Programme)))
	mux.Handle("GET /api/proxy-eligibility-form", c.Handler(http.HandlerFunc(proxy.EligibilityForm)))
	mux.Handle("POST /api/proxy-application", c.Handler(postLimit(proxy.Application)))
	mux.Handle("POST /api/proxy-eligibility-application", c.Handler(postLimit(proxy.EligibilityApplication)))

	// Preflight
	mux.Handle("OPTIONS /api/", c.Handler(http.NotFoundHandler()))

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", app.Metrics.Handler())

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(cfg),     // Config must be first (needed by SecurityHeaders for analytics and S3 hosts)
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders, // Security headers for all responses (XSS, clickjacking, etc.)
		middleware.RequestLogging,
		middleware.MaxFormBody(maxFormBodyBytes), // Must wrap the body before CSRFProtection parses the form
		middleware.CSRFProtection, // CSRF protection for form posts; /api/ relies on CORS instead
		middleware.CookieConsent,
		middleware.WithURLPath,
		middleware.Metrics(app.Metrics), // innermost so r.Pattern is set by the mux
	)

	return handler
}
