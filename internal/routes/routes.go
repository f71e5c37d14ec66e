package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/grvbrk/tubelink-server/internal/app"
	"github.com/grvbrk/tubelink-server/internal/handlers"
	"github.com/grvbrk/tubelink-server/internal/utils"
)

func SetupRoutes(app *app.Application) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httprate.LimitAll(app.Config.RateLimitMax, app.Config.RateLimitWindow))
	r.Use(app.MiddlewareHandler.RequestLogger)
	r.Use(app.MiddlewareHandler.Security)

	r.Get("/health", handlers.HandlerHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(app.MiddlewareHandler.Cors)

		r.Post("/parse-video", app.VideoHandler.HandlerParseVideo)
		r.Get("/get-videos", app.VideoHandler.HandlerGetVideos)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, utils.Envelope{
			"success": false,
			"status":  http.StatusNotFound,
			"message": "Route not found",
			"code":    "ROUTE_NOT_FOUND",
		})
	})

	return r
}
