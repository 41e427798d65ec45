package models

import "time"

// Date and Time hold the canonical "2006-01-02" and "15:04" strings; the
// scheduling conflict check is an exact match on (room_id, date, time).
type Screening struct {
	ID             uint    `gorm:"primaryKey"`
	Date           string  `gorm:"size:10;not null"`
	Time           string  `gorm:"size:5;not null"`
	Price          float64 `gorm:"type:decimal(8,2)"`
	AvailableSeats int
	IsDeleted      bool `gorm:"not null;default:false"`
	MovieID        uint
	Movie          Movie
	RoomID         uint
	Room           TheaterRoom
	Tickets        []Ticket
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
