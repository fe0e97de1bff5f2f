// Consumer applies category events from Kafka to stored user favorite
// categories. Set KAFKA_BROKERS, KAFKA_GROUP_ID, and DATABASE_URL. GRPC_ADDR
// is required by config but unused (e.g. set to :0).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"giveaway-platform/users-service/internal/config"
	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/events"
	"giveaway-platform/users-service/internal/security"
	"giveaway-platform/users-service/internal/store"
	userservice "giveaway-platform/users-service/internal/user/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("consumer: KAFKA_BROKERS is required")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("consumer: DATABASE_URL is required")
	}

	groupID := cfg.KafkaGroupID
	if groupID == "" {
		groupID = "users-service-categories"
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer database.Close()

	st := store.NewPostgres(database)
	users := userservice.NewService(st, security.NewHasher(cfg.BcryptCost), nil)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupTopics: []string{
			events.TopicCategoryUpdated,
			events.TopicCategoryDeleted,
		},
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("consumer: shutting down...")
		cancel()
	}()

	log.Printf("consumer: consuming category events (group %s)", groupID)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("consumer: stopped")
				return
			}
			log.Printf("consumer: kafka read error: %v", err)
			continue
		}

		event, err := events.DecodeCategoryEvent(msg.Topic, msg.Value)
		if err != nil {
			log.Printf("consumer: skipping message on %s: %v", msg.Topic, err)
			continue
		}

		applyCtx, applyCancel := context.WithTimeout(ctx, 10*time.Second)
		switch msg.Topic {
		case events.TopicCategoryUpdated:
			if _, n, err := users.UpdateUsersFavoriteCategories(applyCtx, event); err != nil {
				log.Printf("consumer: update category %s failed: %v", event.GUID, err)
			} else {
				log.Printf("consumer: category %s updated for %d users", event.GUID, n)
			}
		case events.TopicCategoryDeleted:
			if _, n, err := users.DeleteUsersFavoriteCategories(applyCtx, event); err != nil {
				log.Printf("consumer: delete category %s failed: %v", event.GUID, err)
			} else {
				log.Printf("consumer: category %s removed for %d users", event.GUID, n)
			}
		}
		applyCancel()
	}
}
