package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"vidstream/pkg/config"
	"vidstream/pkg/database"
	"vidstream/pkg/logger"
	"vidstream/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "password123"

func main() {
	var seed uint64
	var viewers int
	flag.Uint64Var(&seed, "seed", 42, "Random seed; the same seed produces the same dataset")
	flag.IntVar(&viewers, "viewers", 20, "Number of viewer accounts to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var existing int64
	if err := db.Model(&models.User{}).Where("username = ?", moderatorName).Count(&existing).Error; err != nil {
		log.Error("Failed to check for existing seed data: %v", err)
		panic(err)
	}
	if existing > 0 {
		log.Info("Seed data already present, skipping")
		return
	}

	data, err := buildDataset(rand.New(rand.NewPCG(seed, seed)), time.Now().UTC(), viewers, bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to build dataset: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, data); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded: %d users, %d channels, %d videos, %d views, %d paid periods, %d strikes, %d reports",
		len(data.Users), len(data.Channels), len(data.Videos), len(data.Views),
		len(data.PaidSubscriptions), len(data.Strikes), len(data.Reports))
}

func seedDatabase(db *gorm.DB, data *dataset) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range data.batches() {
			if err := tx.CreateInBatches(batch.rows, 200).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", batch.name, err)
			}
		}
		return nil
	})
}
