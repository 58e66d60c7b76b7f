package main

import (
	"context"
	"dietai/database"
	"dietai/internal/config"
	"dietai/internal/logger"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	log := logger.Init()
	defer logger.Sync()

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", database.DefaultNumUsers, "Number of demo users to create")
	days := seedCmd.Int("days", 7, "Days of food log per user, ending today")
	seed := seedCmd.Int64("seed", 0, "Random seed (0 picks one from the clock)")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	connect := func() {
		db, err := database.ConnectDatabase(cfg.DB, log)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.MigrateDatabase(db, log); err != nil {
			log.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	switch os.Args[1] {
	case "seed":
		_ = seedCmd.Parse(os.Args[2:])
		connect()

		created, err := database.SeedUsers(ctx, database.DB, database.SeedOptions{
			Users:    *numUsers,
			Days:     *days,
			Location: cfg.Location,
			Seed:     *seed,
		}, log)
		if err != nil {
			log.Fatal("Error seeding users", zap.Int("created", created), zap.Error(err))
		}
		log.Info("Seeding completed", zap.Int("users", created), zap.String("password", database.TestUserPassword))

	case "stats":
		connect()
		count, err := database.CountTestUsers(ctx, database.DB)
		if err != nil {
			log.Fatal("Error counting users", zap.Error(err))
		}
		log.Info("Test users", zap.Int64("count", count))

	case "delete":
		connect()
		deleted, err := database.DeleteTestUsers(ctx, database.DB)
		if err != nil {
			log.Fatal("Error deleting test users", zap.Error(err))
		}
		log.Info("Deleted test users", zap.Int64("count", deleted))

	case "clear":
		if cfg.Env == "production" {
			log.Fatal("Refusing to clear a production database")
		}
		connect()
		if err := database.ClearAllData(ctx, database.DB); err != nil {
			log.Fatal("Error clearing data", zap.Error(err))
		}
		log.Info("All tables cleared")

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("DietAI database seeder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/seed seed [--users N] [--days N] [--seed N]")
	fmt.Println("  go run ./cmd/seed stats")
	fmt.Println("  go run ./cmd/seed delete")
	fmt.Println("  go run ./cmd/seed clear")
	fmt.Println()
	fmt.Println("Seeded users log in as testuser<N>@example.com with password " + database.TestUserPassword)
}
