package main

import (
	"context"
	"database/sql"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/abhishek622/moodjournal/internal/classifier"
	"github.com/abhishek622/moodjournal/internal/config"
	"github.com/abhishek622/moodjournal/internal/database"
	"github.com/abhishek622/moodjournal/internal/handler"
	"github.com/abhishek622/moodjournal/internal/logger"
	"github.com/abhishek622/moodjournal/internal/repository"
	"github.com/abhishek622/moodjournal/internal/service"
)

type application struct {
	DB         *sql.DB
	Classifier *classifier.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Application
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	// the app is unusable without its store; any setup failure aborts
	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatalf("database setup failed: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		sugar.Fatalf("schema setup failed: %v", err)
	}

	classifierClient := classifier.NewClient(cfg.Classifier)
	repo := repository.NewRepository(db)
	journal := service.NewJournal(classifierClient, repo.Journal, log)

	handlerApp := &handler.Application{
		Logger:  log,
		Journal: journal,
	}

	app := &application{
		DB:         db,
		Classifier: classifierClient,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
