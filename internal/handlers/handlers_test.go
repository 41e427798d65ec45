package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/farellandr/cinetix/config"
	"github.com/farellandr/cinetix/internal/middleware"
	"github.com/farellandr/cinetix/internal/models"
)

const testSecret = "test-secret"

// setupTest builds a router wired to a fresh in-memory SQLite database,
// mirroring the production route table.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))

	api := r.Group("/api")
	api.POST("/register", Register)
	api.POST("/login", Login)
	api.POST("/movies", CreateMovie)
	api.GET("/movies", ListMovies)
	api.PUT("/movies/:id", UpdateMovie)
	api.DELETE("/movies/:id", DeleteMovie)
	api.GET("/genres", ListGenres)
	api.GET("/rooms", ListRooms)
	api.POST("/screenings", CreateScreening)
	api.GET("/screenings/:movie_id", ListScreeningsByMovie)
	api.DELETE("/screenings/:id", DeleteScreening)

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/rooms", CreateRoom)
	protected.POST("/tickets", PurchaseTicket)
	protected.GET("/tickets", ListMyTickets)
	protected.POST("/tickets/:id/cancel", CancelTicket)
	protected.GET("/tickets/:id/qr", GenerateTicketQR)

	return r, db
}

func performRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func authToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// createMovieAndRoom seeds a genre, a movie and a room, returning their ids.
func createMovieAndRoom(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	genre := models.Genre{Name: "Action"}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("failed to create genre: %v", err)
	}
	movie := models.Movie{Title: "Matrix", DurationMinutes: 120, GenreID: &genre.ID}
	if err := db.Create(&movie).Error; err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}
	room := models.TheaterRoom{Name: "Room 1", Capacity: 100, Location: "1st floor", IsActive: true}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return movie.ID, room.ID
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, PasswordHash: "x", Role: role, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
