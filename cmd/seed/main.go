// Command main runs the database seeder for Clipnest.
package main

import (
	"flag"
	"log"

	"clipnest/internal/config"
	"clipnest/internal/database"
	"clipnest/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of users to create")
	videosPerUser := flag.Int("videos", 3, "Number of videos per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plain passwords for faster seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d videos each, clean=%v\n", *numUsers, *videosPerUser, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.Clean(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seed.Dev(database.DB, *numUsers, *videosPerUser, seed.Options{SkipBcrypt: *skipBcrypt}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
