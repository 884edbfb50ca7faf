package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/logger"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/platform/ocr"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/server"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kitchen-buddy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	engine, err := newOCREngine(ctx, cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to create OCR engine: %w", err)
	}
	if closer, ok := engine.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	recipeLog, err := service.NewRecipeLogService(cfg.Storage.RecipeLogDir)
	if err != nil {
		return fmt.Errorf("failed to open recipe log: %w", err)
	}

	images, err := service.NewImageStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to create image store: %w", err)
	}

	srv := server.New(cfg, db, server.Deps{
		RecipeLog:  recipeLog,
		Extraction: service.NewExtractionService(engine, log),
		Images:     images,
	}, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newOCREngine(ctx context.Context, cfg config.OCRConfig) (ocr.Engine, error) {
	switch cfg.Engine {
	case "gemini":
		return ocr.NewGeminiEngine(ctx, cfg.GeminiAPIKey)
	default:
		return ocr.NewTesseractEngine(cfg.TesseractPath, cfg.Timeout)
	}
}
