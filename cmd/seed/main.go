// Command main runs the database seeder for MoodRealm.
package main

import (
	"flag"
	"log"

	"moodrealm/internal/config"
	"moodrealm/internal/database"
	"moodrealm/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 150, "Number of posts to create")
	numStories := flag.Int("stories", 40, "Number of stories to create")
	maxDays := flag.Int("days", 60, "Spread content over this many past days")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("❌ Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	summary, err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumStories:  *numStories,
		ShouldClean: *shouldClean,
		MaxDays:     *maxDays,
		RandSeed:    *randSeed,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ Created %d users, %d posts, %d stories, %d likes, %d reports and %d comments.",
		summary.Users, summary.Posts, summary.Stories, summary.Likes, summary.Reports, summary.Comments)
	log.Printf("📧 All seeded users have the password: %s", seed.DemoPassword)
}
