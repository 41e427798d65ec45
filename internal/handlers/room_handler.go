package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/internal/helpers"
	"github.com/farellandr/cinetix/internal/models"
)

type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location"`
}

func CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	room := models.TheaterRoom{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
		IsActive: true,
	}

	if err := gormDB.Create(&room).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create room.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room created successfully",
		"id":      room.ID,
	})
}

func ListRooms(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var rooms []models.TheaterRoom
	if err := gormDB.Where("is_active = ?", true).Order("name ASC").Find(&rooms).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving rooms.")
		return
	}

	response := make([]gin.H, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, gin.H{
			"id":       room.ID,
			"name":     room.Name,
			"capacity": room.Capacity,
			"location": room.Location,
		})
	}
	c.JSON(http.StatusOK, response)
}
