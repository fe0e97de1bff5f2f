package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	authservice "giveaway-platform/users-service/internal/auth/service"
	"giveaway-platform/users-service/internal/config"
	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/events"
	"giveaway-platform/users-service/internal/mail"
	"giveaway-platform/users-service/internal/observability"
	"giveaway-platform/users-service/internal/security"
	"giveaway-platform/users-service/internal/server"
	"giveaway-platform/users-service/internal/server/interceptors"
	"giveaway-platform/users-service/internal/session"
	"giveaway-platform/users-service/internal/store"
	userservice "giveaway-platform/users-service/internal/user/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	providers, err := observability.NewProviders(ctx, cfg.OTLPEndpoint, "users-service", false)
	if err != nil {
		log.Fatalf("observability: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("observability: shutdown: %v", err)
		}
	}()

	if cfg.DatabaseURL == "" {
		log.Fatal("server: DATABASE_URL is required")
	}
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer database.Close()

	redisClient, err := session.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()
	sessions := session.New(redisClient)

	var publisher userservice.Publisher
	if brokers := cfg.KafkaBrokersList(); len(brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(brokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		log.Println("server: KAFKA_BROKERS not set; user events are not published")
	}

	var mailer authservice.Mailer
	if cfg.MailjetAPIKey != "" && cfg.MailjetSecretKey != "" {
		mailer = mail.NewMailjetClient(cfg.MailjetAPIKey, cfg.MailjetSecretKey, cfg.MailFrom, cfg.MailFromName)
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	st := store.NewPostgres(database)

	authSvc := authservice.NewAuthService(st, sessions, mailer, hasher, cfg.ConfirmationBaseURL, cfg.IsProduction())
	userSvc := userservice.NewService(st, hasher, publisher)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingUnary(nil),
			interceptors.AuthUnary(sessions, server.PublicMethods()),
		),
	)
	server.RegisterServices(s, server.Deps{
		Auth:  authSvc,
		Users: userSvc,
	})

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	s.GracefulStop()
	log.Println("gRPC server stopped")
}
