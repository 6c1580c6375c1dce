// cmd/soundhub/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"soundhub/config"
	"soundhub/internal/api/handlers/artists"
	"soundhub/internal/api/handlers/home"
	"soundhub/internal/api/handlers/news"
	"soundhub/internal/api/handlers/songs"
	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/service"
	"soundhub/internal/storage/postgres"
	_ "soundhub/swagger" // Import generated swagger docs

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
)

// @title Soundhub Content API
// @version 1.0
// @description Slug-resolved song pages, artist aggregation and homepage feeds for a music streaming and news site.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Soundhub Content API")

	godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Logger.Fatal("Config load failed", zap.Error(err))
		return
	}
	utils.Logger.Debug("Configuration loaded", zap.Any("config", cfg))

	conn, err := pgx.Connect(context.Background(), cfg.DBURL)
	if err != nil {
		utils.Logger.Fatal("Database connection failed", zap.Error(err))
		return
	}
	defer conn.Close(context.Background())
	utils.Logger.Info("Database connected")

	if err := runMigrations(cfg.DBURL); err != nil {
		utils.Logger.Fatal("Database migration failed", zap.Error(err))
		return
	}
	utils.Logger.Info("Database migrations completed successfully")

	pgStorage := postgres.NewPgStorage(conn)

	resolver := service.NewResolverService(pgStorage)
	aggregator := service.NewAggregatorService(pgStorage)
	related := service.NewRelatedService(pgStorage, cfg.RelatedFetchLimit)
	songService := service.NewSongService(pgStorage)
	newsService := service.NewNewsService(pgStorage)
	commentService := service.NewCommentService(pgStorage, pgStorage)
	artistService := service.NewArtistService(pgStorage, pgStorage)
	homepageService := service.NewHomepageService(pgStorage, pgStorage, service.HomepageOptions{
		ChartSize:       cfg.ChartSize,
		TrendingWindow:  time.Duration(cfg.TrendingWindowDays) * 24 * time.Hour,
		NewReleaseCount: cfg.NewReleaseCount,
		NewsPerCategory: cfg.NewsPerCategory,
		TickerSize:      cfg.TickerSize,
	})

	songHandlers := songs.NewSongHandlers(resolver, aggregator, related, songService, commentService, songs.PageLimits{
		RelatedShown:       cfg.RelatedShown,
		RelatedShownMobile: cfg.RelatedShownMobile,
		AlsoLikeCount:      cfg.AlsoLikeCount,
	})
	artistHandlers := artists.NewArtistHandlers(artistService)
	newsHandlers := news.NewNewsHandlers(newsService)
	homeHandlers := home.NewHomeHandlers(homepageService)

	router := mux.NewRouter()

	router.HandleFunc("/health", homeHandlers.HealthCheckHandler).Methods("GET")
	router.HandleFunc("/", homeHandlers.GetHomepageHandler).Methods("GET")
	router.HandleFunc("/songs/{slug}", songHandlers.GetSongPageHandler).Methods("GET")
	router.HandleFunc("/artists/{name}", artistHandlers.GetProfileHandler).Methods("GET")
	router.HandleFunc("/news/{slug}", newsHandlers.GetArticleHandler).Methods("GET")

	router.HandleFunc("/api/songs/{id}", songHandlers.GetSongDataHandler).Methods("GET")
	router.HandleFunc("/api/songs/{id}", songHandlers.DeleteSongHandler).Methods("DELETE")
	router.HandleFunc("/api/songs/{id}/play", songHandlers.UpdatePlayCountHandler).Methods("POST")
	router.HandleFunc("/api/songs/{id}/download", songHandlers.DownloadHandler).Methods("GET")
	router.HandleFunc("/api/comments", songHandlers.ListCommentsHandler).Methods("GET")
	router.HandleFunc("/api/comments", songHandlers.PostCommentHandler).Methods("POST")
	router.HandleFunc("/api/artists/{id}/status", artistHandlers.UpdateStatusHandler).Methods("POST")

	// Swagger documentation
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	serverAddr := fmt.Sprintf(":%d", cfg.ServerPort)
	utils.Logger.Info("Server starting", zap.String("address", serverAddr))
	log.Fatal(http.ListenAndServe(serverAddr, router))
}

func runMigrations(dbURL string) error {
	migrationSourceURL := "file://internal/migrations"
	m, err := migrate.New(migrationSourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migration: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
