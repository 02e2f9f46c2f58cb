package router // package router defines how HTTP routes are registered for both services

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-cafe-services/internal/handler"
	"github.com/iliyamo/movie-cafe-services/internal/middleware"
)

// RegisterMovieRoutes wires the movie site's endpoints onto the provided
// Echo instance.  The add flow is split across three routes: the search form,
// the candidate list and the import by provider id.
func RegisterMovieRoutes(e *echo.Echo, h *handler.MovieHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)
	e.GET("/edit/:id", h.EditForm)
	e.POST("/edit/:id", h.EditSubmit)
	e.GET("/delete/:id", h.Delete)
	e.GET("/add", h.AddForm)
	e.POST("/add", h.AddSearch)
	e.GET("/addmovie/:id", h.Import)
}

// RegisterCafeRoutes wires the cafe API's endpoints.  Only the delete route
// is key-gated; every other route is public, reads included.
func RegisterCafeRoutes(e *echo.Echo, h *handler.CafeHandler, apiKey string) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Index)
	e.GET("/random", h.Random)
	e.GET("/all", h.All)
	e.GET("/search", h.Search)
	e.GET("/search_id", h.SearchByID)
	e.POST("/add", h.Add)
	e.PATCH("/update-price/:id", h.UpdatePrice)
	e.DELETE("/delete/:id", h.Delete, middleware.RequireAPIKey(apiKey))
}
