package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/internal/helpers"
	"github.com/farellandr/cinetix/internal/models"
)

// resolveGenre finds a genre by exact name or creates it. Movie create and
// update share this path, so a new genre may be persisted even when the
// surrounding movie write later fails.
func resolveGenre(db *gorm.DB, name string) (*models.Genre, error) {
	var genre models.Genre
	if err := db.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func ListGenres(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var genres []models.Genre
	if err := gormDB.Order("name ASC").Find(&genres).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genres.")
		return
	}

	response := make([]gin.H, 0, len(genres))
	for _, genre := range genres {
		response = append(response, gin.H{"id": genre.ID, "name": genre.Name})
	}
	c.JSON(http.StatusOK, response)
}
