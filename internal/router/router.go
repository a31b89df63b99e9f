package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coding-gurus/forum/internal/config"
	"github.com/coding-gurus/forum/internal/handler"
	mw "github.com/coding-gurus/forum/internal/middleware"
	"github.com/coding-gurus/forum/internal/middleware/metrics"
)

func New(h *handler.Handler, cfg config.Public) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.RequestLogger)
	r.Use(mw.Recoverer)
	r.Use(metrics.Middleware)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		}))
	}
	// Must run before routing so PUT/DELETE forms match their routes.
	r.Use(mw.MethodOverride)

	r.Get("/", h.Home)

	r.Get("/threads", h.ListThreads)
	r.Get("/threads/new", h.NewThreadForm)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{id}", h.ShowThread)
	r.Get("/threads/{id}/edit", h.EditThreadForm)
	r.Put("/threads/{id}", h.UpdateThread)
	r.Delete("/threads/{id}", h.DeleteThread)

	r.Post("/threads/{id}/replies", h.CreateReply)
	r.Get("/threads/{id}/replies/{replyId}/edit", h.EditReplyForm)
	r.Put("/threads/{id}/replies/{replyId}", h.UpdateReply)
	r.Delete("/threads/{id}/replies/{replyId}", h.DeleteReply)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Anything unmatched, any verb, is the fixed 404 page.
	r.NotFound(h.NotFoundPage)
	r.MethodNotAllowed(h.NotFoundPage)

	return r
}
