package models

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:10;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	Tickets      []Ticket
}
