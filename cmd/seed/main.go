// Command main runs the database seeder for CreatorHub.
package main

import (
	"flag"
	"log"

	"creatorhub/internal/config"
	"creatorhub/internal/database"
	"creatorhub/internal/seed"
)

func main() {
	numBrands := flag.Int("brands", 5, "Number of brand accounts to create")
	numCreators := flag.Int("creators", 25, "Number of creator accounts to create")
	numCampaigns := flag.Int("campaigns", 15, "Number of campaigns to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d brands, %d creators, %d campaigns, clean=%v\n",
		*numBrands, *numCreators, *numCampaigns, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumBrands:    *numBrands,
		NumCreators:  *numCreators,
		NumCampaigns: *numCampaigns,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123!")
}
