package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/internal/helpers"
	"github.com/farellandr/cinetix/internal/models"
)

type MovieRequest struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
}

type MovieUpdateRequest struct {
	Title    *string `json:"title"`
	Genre    *string `json:"genre"`
	Duration *int    `json:"duration"`
}

func CreateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	title := strings.TrimSpace(req.Title)
	genreName := strings.TrimSpace(req.Genre)
	if title == "" || genreName == "" || req.Duration <= 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	genre, err := resolveGenre(gormDB, genreName)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error resolving genre.")
		return
	}

	movie := models.Movie{
		Title:           title,
		DurationMinutes: req.Duration,
		GenreID:         &genre.ID,
	}

	if err := gormDB.Create(&movie).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create movie.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Movie created successfully",
		"id":      movie.ID,
		"title":   movie.Title,
		"genre":   genre.Name,
	})
}

func ListMovies(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.Movie{}).
		Select("movies.*").
		Joins("LEFT JOIN genres ON genres.id = movies.genre_id").
		Where("movies.is_deleted = ?", false)

	if genre := c.Query("genre"); genre != "" {
		query = query.Where("LOWER(genres.name) LIKE ?", "%"+strings.ToLower(genre)+"%")
	}
	if title := c.Query("title"); title != "" {
		query = query.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}

	var movies []models.Movie
	if err := query.Preload("Genre").Find(&movies).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving movies.")
		return
	}

	response := make([]gin.H, 0, len(movies))
	for _, movie := range movies {
		genreName := ""
		if movie.Genre != nil {
			genreName = movie.Genre.Name
		}
		response = append(response, gin.H{
			"id":       movie.ID,
			"title":    movie.Title,
			"genre":    genreName,
			"duration": movie.DurationMinutes,
		})
	}
	c.JSON(http.StatusOK, response)
}

func UpdateMovie(c *gin.Context) {
	movieID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid movie id")
		return
	}

	var req MovieUpdateRequest
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
	if err := gormDB.First(&movie, movieID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Movie not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding movie.")
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		movie.Title = strings.TrimSpace(*req.Title)
	}
	if req.Duration != nil && *req.Duration > 0 {
		movie.DurationMinutes = *req.Duration
	}
	if req.Genre != nil && strings.TrimSpace(*req.Genre) != "" {
		genre, err := resolveGenre(gormDB, strings.TrimSpace(*req.Genre))
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error resolving genre.")
			return
		}
		movie.GenreID = &genre.ID
	}

	if err := gormDB.Save(&movie).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update movie.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie updated successfully"})
}

func DeleteMovie(c *gin.Context) {
	movieID, err := helpers.StringToUint(c.Param("id"))
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

	var movie models.Movie
	if err := gormDB.First(&movie, movieID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Movie not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding movie.")
		return
	}

	// Logical delete only. Screenings and tickets keep their references.
	if err := gormDB.Model(&movie).Update("is_deleted", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete movie.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted (soft delete)"})
}
