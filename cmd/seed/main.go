package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"qrfood-backend/internal/config"
	"qrfood-backend/internal/domains/post"
	postRepo "qrfood-backend/internal/domains/post/repository"
	postService "qrfood-backend/internal/domains/post/service"
	"qrfood-backend/internal/domains/user"
	userRepo "qrfood-backend/internal/domains/user/repository"
	userService "qrfood-backend/internal/domains/user/service"
	"qrfood-backend/internal/infrastructure/database"
	"qrfood-backend/pkg/logger"
)

// Seeder for local development: resets both collections and creates
// sample data through the entity services, the same path the API uses.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	logger.Init(getEnv("APP_ENV", "development"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, &database.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		PingTimeout:    cfg.Mongo.PingTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(context.Background())

	log.Println("Clearing existing data...")
	if _, err := db.Collection(database.UsersCollection).DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	if _, err := db.Collection(database.PostsCollection).DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear posts: %v", err)
	}

	users := userService.NewUserService(userRepo.NewMongoRepository(db))
	posts := postService.NewPostService(postRepo.NewMongoRepository(db), userRepo.NewMongoRepository(db))

	log.Println("Creating sample users...")
	userIDs := make([]string, 0, 3)
	for _, req := range []user.CreateUserRequest{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Smith", Email: "jane@example.com"},
		{Name: "Alice Johnson", Email: "alice@example.com"},
	} {
		created, err := users.Create(ctx, &req)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", req.Email, err)
		}
		userIDs = append(userIDs, created.ID)
	}
	log.Printf("Created %d users", len(userIDs))

	log.Println("Creating sample posts...")
	postReqs := []post.CreatePostRequest{
		{
			Title:    "Welcome to QR Food",
			Content:  "This is our first post about the QR Food platform. We're excited to share this journey with you!",
			AuthorID: userIDs[0],
		},
		{
			Title:    "How to Use QR Codes for Food Ordering",
			Content:  "QR codes make food ordering quick and contactless. Simply scan the code at your table and browse the menu!",
			AuthorID: userIDs[1],
		},
		{
			Title:    "Menu Management Tips",
			Content:  "Keep your digital menu updated with seasonal items and pricing. Customer satisfaction depends on accurate information.",
			AuthorID: userIDs[0],
		},
		{
			Title:    "Customer Feedback Integration",
			Content:  "We've added new features for collecting and managing customer feedback through our platform.",
			AuthorID: userIDs[2],
		},
	}
	for _, req := range postReqs {
		if _, err := posts.Create(ctx, &req); err != nil {
			log.Fatalf("Failed to create post %q: %v", req.Title, err)
		}
	}
	log.Printf("Created %d posts", len(postReqs))

	// Verify
	usersCount, err := db.Count(ctx, database.UsersCollection)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	postsCount, err := db.Count(ctx, database.PostsCollection)
	if err != nil {
		log.Fatalf("Failed to count posts: %v", err)
	}

	log.Printf("Seeding complete: %d users, %d posts", usersCount, postsCount)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
