// Command preflight checks that the services configured in .env are
// reachable before the API is started.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/durvibangera/sorte/internal/config"
	"github.com/durvibangera/sorte/internal/database"
	"github.com/durvibangera/sorte/internal/features/auth"
	"github.com/durvibangera/sorte/internal/pkg/cloudinary"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Println("Testing MongoDB connection...")
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	defer db.Disconnect(context.Background())

	if err := db.Ping(ctx); err != nil {
		log.Fatal("MongoDB ping failed: ", err)
	}
	fmt.Printf("✅ MongoDB connected (database %q)\n", cfg.MongoDB)

	fmt.Println("\nTesting Google sign-in configuration...")
	if cfg.GoogleClientID == "" {
		fmt.Println("⚠️  GOOGLE_CLIENT_ID not set, /api/auth/google will answer 503")
	} else if _, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientID); err != nil {
		log.Fatal("Google token validator failed: ", err)
	} else {
		fmt.Println("✅ Google token validator ready")
	}

	fmt.Println("\nTesting Cloudinary configuration...")
	cld, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryUploadFolder,
	)
	if err != nil {
		fmt.Printf("⚠️  Cloudinary disabled (%v), avatar uploads will answer 503\n", err)
	} else {
		if cld.CloudName() != cfg.CloudinaryCloudName {
			log.Fatal("Cloudinary config mismatch")
		}
		fmt.Println("✅ Cloudinary configured")
		fmt.Printf("  Cloud Name: %s\n", cld.CloudName())
		fmt.Printf("  Upload Folder: %s\n", cfg.CloudinaryUploadFolder)
	}

	fmt.Println("\n🎉 All systems ready!")
}
