package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"travelagent/internal/database"
	"travelagent/internal/domain"
	"travelagent/internal/repository"
	"travelagent/internal/uniqueness"
)

// Seeds the hotel fixtures the booking services rely on. Hotels have no
// public create endpoint, so provisioning happens here.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "travelagent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	store := repository.NewStore(db)
	hotels := repository.NewHotelRepository(db)

	fixtures := []domain.Hotel{
		{Name: "Grand Hotel", Postcode: "NE1 4LP", PhoneNumber: "01912340001"},
		{Name: "Quayside Inn", Postcode: "NE1 3DE", PhoneNumber: "01912340002"},
		{Name: "Jesmond Lodge", Postcode: "NE2 1AB", PhoneNumber: "01912340003"},
		{Name: "Central Stay", Postcode: "NE1 5XU", PhoneNumber: "01912340004"},
	}

	phoneCheck := uniqueness.HotelPhone(store)
	created := 0
	for i := range fixtures {
		h := fixtures[i]

		conflict, err := phoneCheck.IsConflict(ctx, h.PhoneNumber, nil)
		if err != nil {
			log.Fatal("phone check failed:", err)
		}
		if conflict {
			log.Printf("hotel %q already seeded, skipping", h.Name)
			continue
		}

		if err := hotels.Create(ctx, &h); err != nil {
			log.Fatal("hotel insert failed:", err)
		}
		created++
	}

	log.Printf("Seed complete: %d hotels created", created)
}
