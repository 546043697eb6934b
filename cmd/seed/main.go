// Command main runs the database seeder for Synthlab.
package main

import (
	"flag"
	"log"

	"synthlab/internal/config"
	"synthlab/internal/database"
	"synthlab/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	recordsPerUser := flag.Int("records", 10, "Number of synthesize records per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	superuserEmail := flag.String("superuser", "admin@synthlab.local", "Email for the superuser account (empty to skip)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d records each, clean=%v\n", *numUsers, *recordsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *superuserEmail != "" {
		if _, err := s.CreateSuperuser(*superuserEmail, seed.DemoPassword); err != nil {
			log.Fatalf("Superuser creation failed: %v", err)
		}
		log.Printf("Superuser created: %s", *superuserEmail)
	}

	if _, err := s.SeedUsers(*numUsers, *recordsPerUser); err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Printf("All seeded accounts use the password: %s", seed.DemoPassword)
}
