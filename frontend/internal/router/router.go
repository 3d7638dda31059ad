package router

import (
	"net/http"

	"github.com/coursehub/forumtree/frontend/internal/middleware"
	"github.com/coursehub/forumtree/frontend/internal/setup"
	"github.com/coursehub/forumtree/frontend/web"
	mw "github.com/coursehub/forumtree/shared/middleware"
	"github.com/coursehub/forumtree/shared/middleware/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	h := deps.Handler

	r.Use(mw.RequestId)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Public.SecureCookies, mw.FrontendCSP))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// Fragment is fetched cross-origin by LMS pages that embed a forum
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Public.CorsAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", mw.RequestIdHeader},
			ExposedHeaders:   []string{"X-Forum-Warning", mw.RequestIdHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(deps.Auth.OptionalAuth())
		r.Get("/forums/{forumId}/fragment", h.ForumFragmentHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))
		r.Use(deps.Auth.OptionalAuth())
		r.Get("/courses", h.CoursesGetHandler)
		r.Get("/courses/{courseId}/forums", h.ForumsGetHandler)
		r.Get("/forums/{forumId}", h.ForumGetHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.NeedAuth())
		r.Use(middleware.ValidateCSRFToken())
		r.Post("/forums/{forumId}/threads", h.ThreadPostHandler)
		r.Post("/courses/{courseId}/forums", h.ForumPostHandler)
	})

	return r
}
