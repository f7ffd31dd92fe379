package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/bookshelf-server/internal/api/http/context"
	"github.com/dtroode/bookshelf-server/internal/api/http/router"
	httpServer "github.com/dtroode/bookshelf-server/internal/api/http/server"
	"github.com/dtroode/bookshelf-server/internal/catalog/googlebooks"
	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/repository/postgres"
	"github.com/dtroode/bookshelf-server/internal/server"
	"github.com/dtroode/bookshelf-server/internal/service"
	storage "github.com/dtroode/bookshelf-server/internal/storage/minio"
	"github.com/dtroode/bookshelf-server/internal/token"

	"github.com/dtroode/bookshelf-server/database"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("failed to apply migrations", "error", err)
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	grantRepo := postgres.NewGrantRepository(db)
	tokenGenerator := token.NewOpaque()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	catalogClient := googlebooks.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	authService := service.NewAuth(userRepo, tokenGenerator, logger)
	accessService := service.NewAccess(grantRepo, userRepo, logger)
	bookService := service.NewBook(bookRepo, accessService, storageClient, logger)
	userService := service.NewUser(userRepo, logger)
	catalogService := service.NewCatalog(catalogClient, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, bookService, userService, accessService, catalogService, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
