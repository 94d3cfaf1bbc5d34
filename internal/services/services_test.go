package services

import (
	"log/slog"
	"os"
	"testing"

	"recipebox/internal/auth"
	"recipebox/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Comment{}, &models.Favorite{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func createTestUser(t *testing.T, db *gorm.DB, username string) (models.User, auth.Identity) {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user, auth.Identity{UserID: user.ID, Email: user.Email, Username: user.Username}
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID, title string) models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		Title:        title,
		Description:  "test description",
		Instructions: "test instructions",
		Ingredients:  models.StringList{"flour", "water"},
		AuthorID:     authorID,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
