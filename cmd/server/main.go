package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proofit/internal/activity"
	"proofit/internal/api"
	"proofit/internal/config"
	"proofit/internal/repository/mongo"
	"proofit/internal/service"
	"proofit/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("Starting ProofIt server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureProfileIndexes(ctx, appDB.Collection("profiles"))
		mongo.EnsurePostIndexes(ctx, appDB.Collection("posts"))
		mongo.EnsureLikeIndexes(ctx, appDB.Collection("likes"))
		mongo.EnsureFollowIndexes(ctx, appDB.Collection("follows"))
		mongo.EnsureCommentIndexes(ctx, appDB.Collection("comments"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing media storage service...")
	mediaStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)
	likeRepo := mongo.NewMongoLikeRepository(appDB)
	followRepo := mongo.NewMongoFollowRepository(appDB)
	commentRepo := mongo.NewMongoCommentRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	session := activity.NewSession()
	authService := service.NewAuthService(profileRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(profileRepo, postRepo, followRepo, mediaStorage)
	feedService := service.NewFeedService(session, postRepo, likeRepo, profileRepo, cfg.Feed.PageSize)
	publishService := service.NewPublishService(session, mediaStorage, postRepo)
	socialService := service.NewSocialService(postRepo, likeRepo, followRepo, commentRepo, profileRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, profileService, feedService, publishService, socialService, postRepo)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
