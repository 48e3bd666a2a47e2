package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/event-ticketing/internal/booking"
	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/middleware"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/router"
	"github.com/iliyamo/event-ticketing/internal/storage"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Durable storage for bookings: a Redis key when Redis is
	// reachable, a JSON file otherwise.  Events are seeded in memory
	// and never persisted.
	rdb := config.NewRedisClient()
	var store storage.Store
	if rdb != nil {
		store = storage.NewRedisStore(rdb, cfg.BookingsKey)
		log.Printf("bookings: using redis key %q", cfg.BookingsKey)
	} else {
		store = storage.NewFileStore(cfg.BookingsFile)
		log.Printf("bookings: using file %s", cfg.BookingsFile)
	}

	// The initial data load completes here, before the first request
	// can be served.
	events := repository.NewEventRepo(repository.SeedEvents())
	bookings := repository.NewBookingRepo(events, store)
	wizard := booking.NewManager(events, bookings, cfg.SettleDelay)

	renderer, err := handler.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewPageCache(config.LoadCacheConfig(), rdb))

	h := handler.NewPageHandler(events, bookings, wizard)
	router.RegisterRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
