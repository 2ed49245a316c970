// Seeds a development database with an admin user and a small demo catalog.
// Safe to re-run: existing usernames and product names are skipped.
package main

import (
	"context"
	"os"
	"time"

	"shopstock/internal/config"
	"shopstock/internal/infra"
	"shopstock/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	ctx := context.Background()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	var count int64
	db.WithContext(ctx).Model(&model.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		admin := &model.User{
			Username:     "admin",
			FullName:     "Administrator",
			PasswordHash: string(hash),
			Role:         "admin",
			Active:       true,
		}
		if err := db.WithContext(ctx).Create(admin).Error; err != nil {
			log.Fatal().Err(err).Msg("create admin user")
		}
		log.Info().Msg("admin user created")
	} else {
		log.Info().Msg("admin user already present, skipping")
	}

	intp := func(n int) *int { return &n }
	demo := []model.Product{
		{Name: "Rice 5kg", Category: "Grocery", Unit: "bag", PurchasePrice: decimal.NewFromInt(950), SellingPrice: decimal.NewFromInt(1100), Stock: intp(40), LowStockLimit: intp(10)},
		{Name: "Cooking Oil 1L", Category: "Grocery", Unit: "bottle", PurchasePrice: decimal.NewFromInt(480), SellingPrice: decimal.NewFromInt(550), Stock: intp(25), LowStockLimit: intp(8)},
		{Name: "Sugar 1kg", Category: "Grocery", Unit: "pack", PurchasePrice: decimal.NewFromInt(140), SellingPrice: decimal.NewFromInt(165), Stock: intp(60), LowStockLimit: intp(15)},
		{Name: "Tea 200g", Category: "Beverages", Unit: "box", PurchasePrice: decimal.NewFromInt(290), SellingPrice: decimal.NewFromInt(350), Stock: intp(30), LowStockLimit: intp(10)},
		{Name: "Milk 1L", Category: "Dairy", Unit: "carton", PurchasePrice: decimal.NewFromInt(190), SellingPrice: decimal.NewFromInt(220), Stock: intp(50), LowStockLimit: intp(12)},
	}
	created := 0
	for i := range demo {
		p := &demo[i]
		var n int64
		db.WithContext(ctx).Model(&model.Product{}).Where("name = ?", p.Name).Count(&n)
		if n > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(p).Error; err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("create product")
		}
		created++
	}
	log.Info().Int("created", created).Msg("demo catalog seeded")
}
