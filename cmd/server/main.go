package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"showbill/internal/artists"
	"showbill/internal/artists/artist_api"
	artistdb "showbill/internal/artists/db"
	"showbill/internal/config"
	"showbill/internal/database/migrations"
	"showbill/internal/logger"
	"showbill/internal/shows"
	showdb "showbill/internal/shows/db"
	"showbill/internal/shows/show_api"
	"showbill/internal/venues"
	venuedb "showbill/internal/venues/db"
	"showbill/internal/venues/venue_api"
	"showbill/internal/web"
)

func connectDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment variables from .env file")
	}

	cfg := config.Load()

	log := logger.New(cfg.Development())
	defer log.Close()

	log.Info("APP", "Starting showbill initialization")

	bunDB := connectDatabase(cfg, log)
	defer bunDB.Close()

	if cfg.Database.AutoMigrate {
		runner := migrations.NewRunner(bunDB, migrations.Options{
			MigrationsDir: cfg.Database.MigrationsDir,
			AutoMigrate:   true,
		})
		if err := runner.MigrateUp(); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
		}
		if version, err := runner.Version(); err == nil {
			log.Info("DATABASE", fmt.Sprintf("Schema at version %d", version))
		}
	}

	flash := web.NewFlash(cfg.Session.Secret)
	renderer, err := web.NewRenderer(flash, log)
	if err != nil {
		log.Fatal("RENDER", fmt.Sprintf("Failed to build renderer: %v", err))
	}

	venueService := venues.NewVenueService(&venuedb.DB{Bun: bunDB})
	artistService := artists.NewArtistService(&artistdb.DB{Bun: bunDB})
	showService := shows.NewShowService(&showdb.DB{Bun: bunDB})

	venueHandler := venue_api.NewHandler(venueService, renderer, flash, log)
	artistHandler := artist_api.NewHandler(artistService, renderer, flash, log)
	showHandler := show_api.NewHandler(showService, renderer, flash, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(web.RequestLogger(log))

	r.Get("/", renderer.Home)
	r.NotFound(renderer.NotFound)

	venueHandler.RegisterRoutes(r)
	log.Info("ROUTER", "Venue routes registered under /venues")
	artistHandler.RegisterRoutes(r)
	log.Info("ROUTER", "Artist routes registered under /artists")
	showHandler.RegisterRoutes(r)
	log.Info("ROUTER", "Show routes registered under /shows")

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("showbill running on %s", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "showbill shutdown complete")
	}
}
