package routes

import (
	"net/http"

	"github.com/fardannozami/portfolio/internal/app"
	"github.com/fardannozami/portfolio/internal/handler"
	"github.com/fardannozami/portfolio/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(a.ProfileService)
	blog := handler.NewBlogHandler(a.ContentService)
	seo := handler.NewSEOHandler(a.SitemapService)
	contact := handler.NewContactHandler(a.EmailService)
	newsletter := handler.NewNewsletterHandler(a.EmailService)
	webhook := handler.NewWebhookHandler(a.Cfg.WebhookSecret, a.ContentService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Portfolio home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Blog: listing, canonical post path, and legacy redirects
	mux.HandleFunc("GET /blog", blog.ListPosts)
	mux.HandleFunc("GET /blog/{slug}", blog.RedirectLegacy)
	mux.HandleFunc("GET /{slug}", blog.ShowPost)

	// Contact & newsletter
	mux.HandleFunc("POST /contact", contact.Send)
	mux.HandleFunc("POST /newsletter/subscribe", newsletter.Subscribe)

	// Webhooks
	mux.HandleFunc("POST /webhooks/hashnode", webhook.Handle)

	// Fallback
	mux.HandleFunc("/{path...}", home.NotFound)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Recover,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
	)
}
