package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"qrfood-backend/internal/config"
	"qrfood-backend/internal/infrastructure/database"
	"qrfood-backend/pkg/logger"
)

// Connectivity checker: verifies the store is reachable and reports
// basic statistics. Exits non-zero when the check fails.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	logger.Init(getEnv("APP_ENV", "development"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Println("Checking MongoDB connection...")

	db, err := database.Connect(ctx, &database.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		PingTimeout:    cfg.Mongo.PingTimeout,
	})
	if err != nil {
		fmt.Printf("Failed to connect to MongoDB: %v\n", err)
		fmt.Println("\nTroubleshooting tips:")
		fmt.Println("  - Make sure MongoDB is installed and running")
		fmt.Println("  - Verify MONGO_URI in your environment or .env file")
		fmt.Printf("  - Current URI: %s\n", cfg.Mongo.URI)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	fmt.Printf("Connected to MongoDB: %s\n", cfg.Mongo.Database)

	if err := db.HealthCheck(ctx); err != nil {
		fmt.Printf("Database ping failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database ping successful")

	collections, err := db.Database().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		fmt.Printf("Failed to list collections: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d collections: %v\n", len(collections), collections)

	usersCount, err := db.Count(ctx, database.UsersCollection)
	if err != nil {
		fmt.Printf("Failed to count users: %v\n", err)
		os.Exit(1)
	}
	postsCount, err := db.Count(ctx, database.PostsCollection)
	if err != nil {
		fmt.Printf("Failed to count posts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database statistics:\n")
	fmt.Printf("  Users: %d\n", usersCount)
	fmt.Printf("  Posts: %d\n", postsCount)

	if usersCount == 0 && postsCount == 0 {
		fmt.Println("\nDatabase is empty. Run 'go run ./cmd/seed' to add sample data.")
	}

	fmt.Println("\nMongoDB is working correctly.")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
