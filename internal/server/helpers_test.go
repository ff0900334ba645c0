package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clipnest/internal/config"
	"clipnest/internal/database"
	"clipnest/internal/models"
	"clipnest/internal/session"
	"clipnest/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server on sqlite, miniredis and a temp upload root,
// with the real routes mounted.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cfg := &config.Config{
		Port:           "0",
		UploadDir:      store.Root(),
		Env:            "test",
		SessionTTLDays: 7,
	}

	srv, err := NewServerWithDeps(cfg, db, redisClient, store)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	srv.SetupRoutes(app)

	return srv, app, db
}

// createUser inserts a user with a known bcrypt-free flow via the register
// endpoint, then logs them in and returns the session cookie.
func registerAndLogin(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register for %q: expected 303, got %d", username, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login for %q: expected 303, got %d", username, resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("login for %q: no session cookie set", username)
	return nil
}

func userByName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("load user %q: %v", username, err)
	}
	return &user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func createVideo(t *testing.T, db *gorm.DB, category *models.Category, userID uint, title string) *models.Video {
	t.Helper()
	video := &models.Video{
		Title:      title,
		Filename:   fmt.Sprintf("%s/%s.mp4", category.Name, title),
		Thumbnail:  fmt.Sprintf("thumbnails/%s.mp4_thumb.jpg", title),
		CategoryID: category.ID,
		UserID:     userID,
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("create video: %v", err)
	}
	return video
}

func TestHumanizeParam(t *testing.T) {
	cases := map[string]string{
		"id":         "ID",
		"userId":     "user ID",
		"categoryId": "category ID",
		"videoId":    "video ID",
	}
	for param, want := range cases {
		if got := humanizeParam(param); got != want {
			t.Errorf("humanizeParam(%q) = %q, want %q", param, got, want)
		}
	}
}

func TestSafeNextPath(t *testing.T) {
	cases := map[string]string{
		"":                       "/",
		"/video/3":               "/video/3",
		"//evil.example":         "/",
		"https://evil.example/x": "/",
		"/upload":                "/upload",
	}
	for next, want := range cases {
		if got := safeNextPath(next); got != want {
			t.Errorf("safeNextPath(%q) = %q, want %q", next, got, want)
		}
	}
}
