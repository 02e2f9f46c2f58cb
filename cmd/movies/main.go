package main // Entry point of the movie-ranking site

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-cafe-services/internal/config"
	"github.com/iliyamo/movie-cafe-services/internal/database"
	"github.com/iliyamo/movie-cafe-services/internal/handler"
	"github.com/iliyamo/movie-cafe-services/internal/repository"
	"github.com/iliyamo/movie-cafe-services/internal/router"
	"github.com/iliyamo/movie-cafe-services/internal/tmdb"
	"github.com/iliyamo/movie-cafe-services/internal/view"
)

func main() {
	cfg := config.LoadMovies()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.EnsureMovieSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.Renderer = view.New()
	h := handler.NewMovieHandler(repository.NewMovieRepo(db), tmdb.NewClient(cfg.TMDBToken))
	router.RegisterMovieRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("movies listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
