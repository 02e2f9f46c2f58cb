package main // Entry point of the cafe directory API

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-cafe-services/internal/config"
	"github.com/iliyamo/movie-cafe-services/internal/database"
	"github.com/iliyamo/movie-cafe-services/internal/handler"
	"github.com/iliyamo/movie-cafe-services/internal/repository"
	"github.com/iliyamo/movie-cafe-services/internal/router"
)

func main() {
	cfg := config.LoadCafes()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.EnsureCafeSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	h := handler.NewCafeHandler(repository.NewCafeRepo(db))
	router.RegisterCafeRoutes(e, h, cfg.APIKey)

	addr := ":" + cfg.Port
	log.Printf("cafes listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
