// Package seed provides database bootstrap defaults and helpers to create
// demo data. The fixture helpers are intended for development and testing
// only.
package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"clipnest/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDefaults creates the default categories when the category table is
// empty, and the reserved admin account when it does not exist. It is safe to
// run on every startup.
func EnsureDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		for _, name := range models.DefaultCategories {
			if err := db.Create(&models.Category{Name: name}).Error; err != nil {
				return fmt.Errorf("create category %q: %w", name, err)
			}
		}
	}

	var admin models.User
	err := db.Where("username = ?", models.ReservedAdminUsername).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	// The generated password is logged exactly once; change it after first login.
	password := gofakeit.Password(true, true, true, true, false, 20)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := db.Create(&models.User{
		Username: models.ReservedAdminUsername,
		Password: string(hashed),
		IsAdmin:  true,
	}).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Printf("created admin account %q with password %s", models.ReservedAdminUsername, password)
	return nil
}

// Clean removes every row from the domain tables, children first so foreign
// keys stay satisfied.
func Clean(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Follow{},
		&models.Comment{},
		&models.Post{},
		&models.Thread{},
		&models.Video{},
		&models.User{},
		&models.Category{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clean %T: %w", model, err)
		}
	}
	return nil
}

// Options controls fixture generation.
type Options struct {
	// SkipBcrypt stores a plain sentinel password instead of hashing, for
	// faster bulk seeding in development.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateVideo persists a sample video owned by the given user.
func (f *Factory) CreateVideo(user *models.User, category *models.Category, overrides ...func(*models.Video)) (*models.Video, error) {
	name := fmt.Sprintf("%s.mp4", gofakeit.UUID())
	video := &models.Video{
		Title:      gofakeit.Sentence(4),
		Filename:   fmt.Sprintf("%s/%s", category.Name, name),
		Thumbnail:  fmt.Sprintf("thumbnails/%s_thumb.jpg", name),
		CategoryID: category.ID,
		UserID:     user.ID,
		ViewCount:  f.rand.Intn(500),
	}

	for _, override := range overrides {
		override(video)
	}

	if err := f.db.Create(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// CreateThread persists a sample thread with a few posts.
func (f *Factory) CreateThread(category *models.Category, posts int) (*models.Thread, error) {
	thread := &models.Thread{
		Title:      gofakeit.Question(),
		CategoryID: category.ID,
	}
	if err := f.db.Create(thread).Error; err != nil {
		return nil, err
	}

	for i := 0; i < posts; i++ {
		post := &models.Post{
			Content:  gofakeit.Paragraph(1, 2, 8, " "),
			ThreadID: thread.ID,
		}
		if err := f.db.Create(post).Error; err != nil {
			return nil, err
		}
	}
	return thread, nil
}

// CreateComment persists a sample comment on the given video.
func (f *Factory) CreateComment(user *models.User, video *models.Video) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		VideoID: video.ID,
		UserID:  user.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge; duplicate edges are skipped.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	if follower.ID == followed.ID {
		return nil
	}
	err := f.db.Create(&models.Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Dev populates the database with a development fixture set: users who upload
// videos into the default categories, comment on each other's clips, start
// threads and follow each other.
func Dev(db *gorm.DB, userCount, videosPerUser int, opts Options) error {
	if err := EnsureDefaults(db); err != nil {
		return err
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories to seed into")
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	var videos []*models.Video
	for _, user := range users {
		for i := 0; i < videosPerUser; i++ {
			category := &categories[f.rand.Intn(len(categories))]
			video, err := f.CreateVideo(user, category)
			if err != nil {
				return fmt.Errorf("seed video: %w", err)
			}
			videos = append(videos, video)
		}
	}

	for _, video := range videos {
		for i := 0; i < f.rand.Intn(4); i++ {
			commenter := users[f.rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, video); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	for _, category := range categories {
		if _, err := f.CreateThread(&category, 2+f.rand.Intn(4)); err != nil {
			return fmt.Errorf("seed thread: %w", err)
		}
	}

	for _, follower := range users {
		followed := users[f.rand.Intn(len(users))]
		if err := f.CreateFollow(follower, followed); err != nil {
			return fmt.Errorf("seed follow: %w", err)
		}
	}

	return nil
}
