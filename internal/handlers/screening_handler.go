package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/internal/helpers"
	"github.com/farellandr/cinetix/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ScreeningRequest struct {
	MovieID uint   `json:"movie_id"`
	RoomID  uint   `json:"room_id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func CreateScreening(c *gin.Context) {
	var req ScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var movie models.Movie
	if err := gormDB.First(&movie, req.MovieID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid movie or room")
		return
	}
	var room models.TheaterRoom
	if err := gormDB.First(&room, req.RoomID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid movie or room")
		return
	}

	screeningDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}
	screeningTime, err := time.Parse(timeLayout, req.Time)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}

	// Naive date-only comparison against the server clock.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if screeningDate.Before(today) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Cannot schedule screenings in the past")
		return
	}

	dateStr := screeningDate.Format(dateLayout)
	timeStr := screeningTime.Format(timeLayout)

	// Conflict detection is an exact match on (room, date, time). Two
	// screenings whose durations would overlap are still accepted as long
	// as their start slots differ.
	var conflicts int64
	if err := gormDB.Model(&models.Screening{}).
		Where("room_id = ? AND date = ? AND time = ? AND is_deleted = ?", room.ID, dateStr, timeStr, false).
		Count(&conflicts).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error checking existing screenings.")
		return
	}
	if conflicts > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Scheduling conflict detected")
		return
	}

	// Price and available seats are populated by seeding only, never here.
	screening := models.Screening{
		MovieID: movie.ID,
		RoomID:  room.ID,
		Date:    dateStr,
		Time:    timeStr,
	}

	if err := gormDB.Create(&screening).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create screening.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Screening created successfully"})
}

func ListScreeningsByMovie(c *gin.Context) {
	movieID, err := helpers.StringToUint(c.Param("movie_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid movie id")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	// No existence check on the movie: an unknown id yields an empty list.
	var screenings []models.Screening
	if err := gormDB.Preload("Room").
		Where("movie_id = ? AND is_deleted = ?", movieID, false).
		Find(&screenings).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving screenings.")
		return
	}

	response := make([]gin.H, 0, len(screenings))
	for _, screening := range screenings {
		response = append(response, gin.H{
			"id":   screening.ID,
			"date": screening.Date,
			"time": screening.Time,
			"room": screening.Room.Name,
		})
	}
	c.JSON(http.StatusOK, response)
}

func DeleteScreening(c *gin.Context) {
	screeningID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid screening id")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var screening models.Screening
	if err := gormDB.First(&screening, screeningID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Screening not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding screening.")
		return
	}

	if err := gormDB.Model(&screening).Update("is_deleted", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete screening.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Screening deleted (soft delete)"})
}
