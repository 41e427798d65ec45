package models

import "time"

type Movie struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:150;not null"`
	DurationMinutes int    `gorm:"not null"`
	IsDeleted       bool   `gorm:"not null;default:false"`
	GenreID         *uint
	Genre           *Genre
	Screenings      []Screening
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
