package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/internal/helpers"
	"github.com/farellandr/cinetix/internal/models"
)

type TicketRequest struct {
	ScreeningID uint   `json:"screening_id" binding:"required"`
	SeatNumber  string `json:"seat_number" binding:"required,max=10"`
}

func generateTicketSignature(ticket *models.Ticket, secretKey string) string {
	data := fmt.Sprintf("%s:%d:%d", ticket.Code.String(), ticket.ScreeningID, ticket.UserID)
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func generateTicketQRData(ticket *models.Ticket) string {
	signature := generateTicketSignature(ticket, os.Getenv("JWT_SECRET"))
	return fmt.Sprintf("ticket:%s;signature:%s", ticket.Code.String(), signature)
}

func PurchaseTicket(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req TicketRequest
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

	var screening models.Screening
	if err := gormDB.Where("id = ? AND is_deleted = ?", req.ScreeningID, false).First(&screening).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid screening")
		return
	}

	ticket := models.Ticket{
		SeatNumber:   req.SeatNumber,
		PurchaseDate: time.Now(),
		Price:        screening.Price,
		Status:       "active",
		ScreeningID:  screening.ID,
		UserID:       userID.(uint),
	}

	if err := gormDB.Create(&ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket.")
		return
	}

	// Advisory seat counter only. Seat numbers are free text and are not
	// checked against room capacity or other tickets.
	if screening.AvailableSeats > 0 {
		gormDB.Model(&screening).Update("available_seats", screening.AvailableSeats-1)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Ticket purchased successfully",
		"ticket_id": ticket.ID,
		"code":      ticket.Code,
	})
}

func ListMyTickets(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var tickets []models.Ticket
	if err := gormDB.Preload("Screening.Movie").Preload("Screening.Room").
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&tickets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	response := make([]gin.H, 0, len(tickets))
	for _, ticket := range tickets {
		response = append(response, gin.H{
			"id":          ticket.ID,
			"code":        ticket.Code,
			"seat_number": ticket.SeatNumber,
			"price":       ticket.Price,
			"status":      ticket.Status,
			"movie":       ticket.Screening.Movie.Title,
			"room":        ticket.Screening.Room.Name,
			"date":        ticket.Screening.Date,
			"time":        ticket.Screening.Time,
		})
	}
	c.JSON(http.StatusOK, response)
}

func CancelTicket(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	ticketID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket id")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var ticket models.Ticket
	if err := gormDB.Preload("Screening").First(&ticket, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding ticket.")
		return
	}

	if ticket.UserID != userID.(uint) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to cancel this ticket.")
		return
	}

	if ticket.Status != "active" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Ticket is not active")
		return
	}

	if err := gormDB.Model(&ticket).Update("status", "cancelled").Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel ticket.")
		return
	}

	gormDB.Model(&ticket.Screening).Update("available_seats", ticket.Screening.AvailableSeats+1)

	c.JSON(http.StatusOK, gin.H{"message": "Ticket cancelled successfully"})
}

func GenerateTicketQR(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	ticketID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket id")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var ticket models.Ticket
	if err := gormDB.First(&ticket, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding ticket.")
		return
	}

	if ticket.UserID != userID.(uint) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to generate QR code for this ticket.")
		return
	}

	if ticket.Status != "active" {
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket is not active")
		return
	}

	qrImage, err := qrcode.Encode(generateTicketQRData(&ticket), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
