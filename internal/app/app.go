package app

import (
	"database/sql"
	"log"
	"os"

	"github.com/grvbrk/tubelink-server/internal/config"
	"github.com/grvbrk/tubelink-server/internal/handlers"
	"github.com/grvbrk/tubelink-server/internal/middlewares"
	"github.com/grvbrk/tubelink-server/internal/store"
	"github.com/grvbrk/tubelink-server/internal/youtube"
	"github.com/grvbrk/tubelink-server/migrations"
)

type Application struct {
	Logger            *log.Logger
	Config            *config.Config
	db                *sql.DB
	MiddlewareHandler *middlewares.MiddlewareHandler
	VideoHandler      *handlers.VideoHandler
}

func NewApplication() (*Application, error) {
	logger := log.New(os.Stdout, "LOGGING: ", log.Ldate|log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		logger.Println("Error loading configuration")
		return nil, err
	}

	pgDB, err := store.ConnectPGDB(cfg.DBUrl)
	if err != nil {
		logger.Println("Error connecting to db")
		return nil, err
	}

	err = store.MigrateFS(pgDB, migrations.FS, "db")
	if err != nil {
		logger.Println("PANIC: Postgresql migration failed, exiting...")
		return nil, err
	}

	logger.Println("Database migrated...")

	videoStore := store.NewPostgresVideoStore(pgDB)

	ytService, err := youtube.NewService(cfg.YoutubeAPIKey, logger)
	if err != nil {
		logger.Println("Error creating youtube service")
		return nil, err
	}

	videoHandler := handlers.NewVideoHandler(videoStore, ytService, logger, cfg.Env)
	middlewareHandler := middlewares.NewMiddlewareHandler(logger, cfg.AllowedOrigins)

	app := &Application{
		Logger:            logger,
		Config:            cfg,
		db:                pgDB,
		MiddlewareHandler: middlewareHandler,
		VideoHandler:      videoHandler,
	}

	return app, nil
}
