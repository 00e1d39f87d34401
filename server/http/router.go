package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"replenish-service/internal/config"
	"replenish-service/internal/middleware"
	repHnd "replenish-service/internal/replenish/handler"
	"replenish-service/internal/replenish/session"
	"replenish-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, store *session.Store) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", repHnd.CreateSession(store, logger))

		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", repHnd.DeleteSession(store, logger))
			r.Put("/config", repHnd.UpdateConfig(store, logger))

			r.Post("/catalog", repHnd.UploadCatalog(store, logger))
			r.Get("/catalog/search", repHnd.SearchCatalog(store, logger))
			r.Post("/catalog/refs", repHnd.BatchRefs(store, logger))

			r.Post("/import", repHnd.ImportFile(store, logger))

			r.Get("/cart", repHnd.GetCart(store, logger))
			r.Post("/cart/items", repHnd.AddManualItem(store, logger))
			r.Put("/cart/items/{identifier}", repHnd.SetItemQuantity(store, logger))
			r.Delete("/cart/items/{identifier}", repHnd.RemoveItem(store, logger))

			r.Get("/export", repHnd.Export(store, logger))

			r.Get("/state", repHnd.GetState(store, logger))
			r.Put("/state", repHnd.PutState(store, logger))
		})
	})

	return r
}
