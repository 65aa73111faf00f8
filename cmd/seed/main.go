package main

import (
	"log"
	"os"
	"time"

	"sportshots/internal/database"
	"sportshots/internal/domain"
	"sportshots/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "sportshots.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.EventType{},
		&domain.BannerImage{},
		&domain.FAQ{},
		&domain.Subscriber{},
		&repository.LoginToken{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM login_tokens")
	db.Exec("DELETE FROM subscribers")
	db.Exec("DELETE FROM faqs")
	db.Exec("DELETE FROM banner_images")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM event_types")
	db.Exec("DELETE FROM users")

	now := time.Now()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@sportshots.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Site Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@sportshots.local / admin123")

	photographers := []domain.User{}
	names := []string{"Mara Velde", "Jonas Brekke", "Lucia Ferrer"}
	emails := []string{"mara@sportshots.local", "jonas@sportshots.local", "lucia@sportshots.local"}
	for i := range names {
		p := domain.User{
			ID:        uuid.NewString(),
			Email:     emails[i],
			Role:      domain.RolePhotographer,
			Name:      names[i],
			Bio:       "Sports photographer covering endurance events.",
			CreatedAt: now,
			UpdatedAt: now,
		}
		db.Create(&p)
		photographers = append(photographers, p)
	}

	// ================== EVENT TYPES ==================
	log.Println("Creating event types...")

	types := []domain.EventType{
		{ID: uuid.NewString(), Name: "Marathon", Description: "Road running, full and half distance", Color: "#e74c3c", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Triathlon", Description: "Swim, bike, run", Color: "#2980b9", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Cycling", Description: "Road races and gran fondos", Color: "#27ae60", CreatedAt: now, UpdatedAt: now},
	}
	for i := range types {
		db.Create(&types[i])
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")

	nextMonth := now.AddDate(0, 1, 0).Format(time.DateOnly)
	events := []domain.Event{
		{
			ID:              uuid.NewString(),
			Title:           "City Marathon",
			Description:     "Annual marathon through the old town.",
			Date:            nextMonth,
			Time:            "09:00",
			Location:        "Rotterdam",
			Country:         "Netherlands",
			EventTypeID:     types[0].ID,
			Tags:            []string{"marathon", "running"},
			ImageURL:        "/static/uploads/demo/marathon.jpg",
			PhotographerIDs: []string{photographers[0].ID, photographers[1].ID},
			ConfirmationMap: map[string]bool{photographers[0].ID: true},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			Title:           "Coastal Triathlon",
			Description:     "Olympic distance along the coast.",
			Date:            now.AddDate(0, 2, 0).Format(time.DateOnly),
			EndDate:         now.AddDate(0, 2, 1).Format(time.DateOnly),
			Location:        "Zandvoort",
			Country:         "Netherlands",
			EventTypeID:     types[1].ID,
			Tags:            []string{"triathlon"},
			ImageURL:        "/static/uploads/demo/triathlon.jpg",
			PhotographerIDs: []string{photographers[2].ID},
			ConfirmationMap: map[string]bool{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	for i := range events {
		db.Create(&events[i])
	}

	// ================== BANNERS ==================
	log.Println("Creating banners...")

	scrollStart, scrollEnd := 0, 400
	banners := []domain.BannerImage{
		{ID: uuid.NewString(), Type: domain.BannerCenter, DisplayOrder: 0, ImageURL: "/static/uploads/demo/hero.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Type: domain.BannerParallax, DisplayOrder: 1, ScrollStart: &scrollStart, ScrollEnd: &scrollEnd, ImageURL: "/static/uploads/demo/parallax1.jpg", CreatedAt: now, UpdatedAt: now},
	}
	for i := range banners {
		db.Create(&banners[i])
	}

	// ================== FAQ ==================
	log.Println("Creating FAQ entries...")

	faqs := []domain.FAQ{
		{
			ID:        uuid.NewString(),
			Title:     "Finding your photos",
			Question:  "How do I find photos of myself after a race?",
			Answer:    "Search by your bib number on the event page once the gallery is published.",
			Category:  "photos",
			Status:    domain.FAQApproved,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:             uuid.NewString(),
			Question:       "Do you cover trail runs outside the country?",
			Category:       "coverage",
			Status:         domain.FAQPending,
			SubmitterName:  "Runner",
			SubmitterEmail: "runner@example.com",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	for i := range faqs {
		db.Create(&faqs[i])
	}

	// ================== SUBSCRIBERS ==================
	log.Println("Creating subscribers...")

	for _, email := range []string{"fan1@example.com", "fan2@example.com"} {
		db.Create(&domain.Subscriber{
			ID:           uuid.NewString(),
			Email:        email,
			Active:       true,
			SubscribedAt: now,
		})
	}

	log.Println("Seed completed.")
}
