package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nownpp/wonder-science-hub/internal/config"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/dynamo"
	jwtinfra "github.com/nownpp/wonder-science-hub/internal/infrastructure/jwt"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/mail"
	s3infra "github.com/nownpp/wonder-science-hub/internal/infrastructure/s3"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/sns"
	transporthttp "github.com/nownpp/wonder-science-hub/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT verifier (optional — authenticated routes stay open without it,
	// which only makes sense for local development).
	var jwtVerifier *jwtinfra.Verifier
	if v, err := jwtinfra.NewVerifier(cfg.AuthJWTSecret); err == nil {
		jwtVerifier = v
	} else {
		log.Printf("WARN: JWT verifier not available: %v", err)
	}

	// S3 store for thumbnails and study material.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer for verification codes.
	mailer, err := mail.NewMailer(cfg)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}

	// SNS announcement broadcaster (optional).
	var announcer sns.Announcer
	if cfg.SNSTopicARN != "" {
		a, err := sns.NewAnnouncer(cfg)
		if err != nil {
			log.Printf("WARN: SNS announcer not available: %v", err)
		} else {
			announcer = a
		}
	}

	deps := &transporthttp.Deps{
		VerificationRepo: dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.VerificationCodes),
		VideoRepo:        dynamo.NewVideoRepo(dynamoClient, cfg.DynamoTables.Videos),
		SimulationRepo:   dynamo.NewSimulationRepo(dynamoClient, cfg.DynamoTables.Simulations),
		StudyFileRepo:    dynamo.NewStudyFileRepo(dynamoClient, cfg.DynamoTables.Files),
		NotificationRepo: dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		VoteRepo:         dynamo.NewVoteRepo(dynamoClient, cfg.DynamoTables.NotificationVotes),
		ProgressRepo:     dynamo.NewProgressRepo(dynamoClient, cfg.DynamoTables.StudentProgress),
		S3Store:          s3Store,
		Mailer:           mailer,
		Announcer:        announcer,
		JWTVerifier:      jwtVerifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
