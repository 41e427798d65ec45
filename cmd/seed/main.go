package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/config"
	"github.com/farellandr/cinetix/internal/models"
)

// Drops and repopulates the demo dataset. This is the only path that sets
// screening price and available_seats; the create endpoint leaves them unset.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatal("Error loading .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := reset(db); err != nil {
		log.Fatalf("Failed to reset tables: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed")
}

func reset(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.Ticket{},
		&models.Screening{},
		&models.Movie{},
		&models.Genre{},
		&models.TheaterRoom{},
		&models.User{},
	)
	if err != nil {
		return err
	}
	return config.MigrateModels(db)
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

func seed(db *gorm.DB) error {
	admin := models.User{Name: "Admin User", Email: "admin@example.com", PasswordHash: hashPassword("admin123"), Role: "admin", IsActive: true}
	john := models.User{Name: "John Doe", Email: "john@example.com", PasswordHash: hashPassword("john1234"), Role: "user", IsActive: true}
	jane := models.User{Name: "Jane Smith", Email: "jane@example.com", PasswordHash: hashPassword("jane1234"), Role: "user", IsActive: true}
	if err := db.Create(&[]*models.User{&admin, &john, &jane}).Error; err != nil {
		return err
	}
	log.Println("Users inserted")

	action := models.Genre{Name: "Action"}
	sciFi := models.Genre{Name: "Sci-Fi"}
	drama := models.Genre{Name: "Drama"}
	comedy := models.Genre{Name: "Comedy"}
	if err := db.Create(&[]*models.Genre{&action, &sciFi, &drama, &comedy}).Error; err != nil {
		return err
	}
	log.Println("Genres inserted")

	inception := models.Movie{Title: "Inception", DurationMinutes: 148, GenreID: &sciFi.ID}
	darkKnight := models.Movie{Title: "The Dark Knight", DurationMinutes: 152, GenreID: &action.ID}
	interstellar := models.Movie{Title: "Interstellar", DurationMinutes: 169, GenreID: &sciFi.ID}
	laLaLand := models.Movie{Title: "La La Land", DurationMinutes: 128, GenreID: &drama.ID}
	if err := db.Create(&[]*models.Movie{&inception, &darkKnight, &interstellar, &laLaLand}).Error; err != nil {
		return err
	}
	log.Println("Movies inserted")

	room1 := models.TheaterRoom{Name: "Room 1", Capacity: 120, Location: "1st Floor - Left Wing", IsActive: true}
	room2 := models.TheaterRoom{Name: "Room 2", Capacity: 80, Location: "1st Floor - Right Wing", IsActive: true}
	if err := db.Create(&[]*models.TheaterRoom{&room1, &room2}).Error; err != nil {
		return err
	}
	log.Println("Theater rooms inserted")

	today := time.Now()
	day := func(offset int) string { return today.AddDate(0, 0, offset).Format("2006-01-02") }

	s1 := models.Screening{MovieID: inception.ID, RoomID: room1.ID, Date: day(1), Time: "19:30", Price: 2500, AvailableSeats: room1.Capacity}
	s2 := models.Screening{MovieID: darkKnight.ID, RoomID: room1.ID, Date: day(2), Time: "21:00", Price: 2800, AvailableSeats: room1.Capacity}
	s3 := models.Screening{MovieID: interstellar.ID, RoomID: room2.ID, Date: day(3), Time: "18:00", Price: 3000, AvailableSeats: room2.Capacity}
	s4 := models.Screening{MovieID: laLaLand.ID, RoomID: room2.ID, Date: day(4), Time: "20:00", Price: 2200, AvailableSeats: room2.Capacity}
	if err := db.Create(&[]*models.Screening{&s1, &s2, &s3, &s4}).Error; err != nil {
		return err
	}
	log.Println("Screenings inserted")

	now := time.Now()
	tickets := []*models.Ticket{
		{SeatNumber: "A10", PurchaseDate: now, Price: s1.Price, Status: "active", ScreeningID: s1.ID, UserID: john.ID},
		{SeatNumber: "A11", PurchaseDate: now, Price: s1.Price, Status: "active", ScreeningID: s1.ID, UserID: jane.ID},
		{SeatNumber: "B05", PurchaseDate: now, Price: s3.Price, Status: "active", ScreeningID: s3.ID, UserID: john.ID},
	}
	if err := db.Create(&tickets).Error; err != nil {
		return err
	}

	// Advisory counters matching the seeded tickets.
	if err := db.Model(&s1).Update("available_seats", s1.AvailableSeats-2).Error; err != nil {
		return err
	}
	if err := db.Model(&s3).Update("available_seats", s3.AvailableSeats-1).Error; err != nil {
		return err
	}
	log.Println("Tickets inserted")

	return nil
}
