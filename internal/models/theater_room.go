package models

type TheaterRoom struct {
	ID         uint        `gorm:"primaryKey"`
	Name       string      `gorm:"size:100;not null"`
	Capacity   int         `gorm:"not null"`
	Location   string      `gorm:"size:150"`
	IsActive   bool        `gorm:"not null;default:true"`
	Screenings []Screening `gorm:"foreignKey:RoomID"`
}
