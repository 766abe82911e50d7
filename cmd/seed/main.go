package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"rockwaste/internal/database"
	"rockwaste/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rockwaste.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM assignments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM workers")
	db.Exec("DELETE FROM users")

	now := time.Now().UTC()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.New().String(),
		Email:        "admin@rockwaste.local",
		PasswordHash: string(adminHash),
		FirstName:    "Site",
		LastName:     "Admin",
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@rockwaste.local / admin123")

	customers := []domain.User{}
	names := [][2]string{{"Jane", "Smith"}, {"Bob", "Taylor"}, {"Mere", "Kaur"}}
	for i, n := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			ID:           uuid.New().String(),
			Email:        fmt.Sprintf("%s@customers.test", n[0]),
			PasswordHash: string(hash),
			FirstName:    n[0],
			LastName:     n[1],
			Phone:        fmt.Sprintf("021 555 01%02d", i),
			Role:         domain.RoleCustomer,
			Status:       domain.UserActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	// ================== WORKERS ==================
	log.Println("Creating workers...")

	workers := []domain.Worker{}
	crew := []struct{ name, email, phone string }{
		{"Sam Harris", "sam@crew.test", "021 555 1000"},
		{"Lee Wong", "lee@crew.test", "021 555 1001"},
		{"Aroha Ngata", "aroha@crew.test", "021 555 1002"},
	}
	for _, c := range crew {
		w := domain.Worker{
			ID:        uuid.New().String(),
			Name:      c.name,
			Email:     c.email,
			Phone:     c.phone,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		db.Create(&w)
		workers = append(workers, w)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	pending := domain.Booking{
		ID:             uuid.New().String(),
		CustomerID:     customers[0].ID,
		CustomerName:   customers[0].FullName(),
		BookingAddress: "12 Harbour Rd",
		BookingDate:    domain.DateOnly(now.AddDate(0, 0, 3)),
		PreferredTime:  "Morning (8AM - 12PM)",
		ServiceType:    "Waste Removal",
		BinSize:        "240L",
		EstimatedPrice: 80,
		PaymentStatus:  domain.PaymentPending,
		Status:         domain.BookingPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	db.Create(&pending)

	approved := domain.Booking{
		ID:             uuid.New().String(),
		CustomerID:     customers[1].ID,
		CustomerName:   customers[1].FullName(),
		BookingAddress: "4 Mill Ln",
		BookingDate:    domain.DateOnly(now.AddDate(0, 0, 5)),
		PreferredTime:  "Afternoon (12PM - 4PM)",
		ServiceType:    "Carpet Cleaning",
		CarpetSize:     "Large",
		EstimatedPrice: 120,
		FinalPrice:     140,
		IsPriceSet:     true,
		PaymentStatus:  domain.PaymentPending,
		Status:         domain.BookingApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	db.Create(&approved)

	workerID := workers[0].ID
	workerStatus := string(domain.WorkerStatusPending)
	assigned := domain.Booking{
		ID:             uuid.New().String(),
		CustomerID:     customers[2].ID,
		CustomerName:   customers[2].FullName(),
		BookingAddress: "88 Beach Pde",
		BookingDate:    domain.DateOnly(now.AddDate(0, 0, 1)),
		PreferredTime:  "Morning (8AM - 12PM)",
		ServiceType:    "Waste Removal",
		BinSize:        "660L",
		EstimatedPrice: 150,
		FinalPrice:     150,
		IsPriceSet:     true,
		PaymentStatus:  domain.PaymentPaid,
		Status:         domain.BookingAssigned,
		AssignedWorker: &workerID,
		WorkerStatus:   &workerStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	db.Create(&assigned)

	db.Create(&domain.Assignment{
		ID:             uuid.New().String(),
		BookingID:      assigned.ID,
		AssignedWorker: workerID,
		Status:         string(domain.BookingAssigned),
		WorkerStatus:   workerStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	bookingID := assigned.ID
	db.Create(&domain.Payment{
		ID:            uuid.New().String(),
		CustomerID:    customers[2].ID,
		CustomerName:  customers[2].FullName(),
		Amount:        150,
		PaymentMethod: "card",
		Description:   "Waste Removal on " + assigned.BookingDate.Format("2006-01-02"),
		PaymentDate:   now,
		Status:        "completed",
		BookingID:     &bookingID,
	})

	log.Println("Seed complete.")
}
