package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID           uint      `gorm:"primaryKey"`
	Code         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SeatNumber   string    `gorm:"size:10;not null"`
	PurchaseDate time.Time
	Price        float64 `gorm:"type:decimal(8,2)"`
	Status       string  `gorm:"size:10;not null;default:'active'"`
	ScreeningID  uint
	Screening    Screening
	UserID       uint
	User         User
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.Code == uuid.Nil {
		ticket.Code = uuid.New()
	}
	return
}
