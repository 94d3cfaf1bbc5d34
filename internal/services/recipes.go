package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"recipebox/internal/auth"
	"recipebox/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const recipeCacheTTL = 10 * time.Minute

func recipeCacheKey(id string) string {
	return "recipe:" + id
}

type RecipeService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *slog.Logger
}

func NewRecipeService(db *gorm.DB, rdb *redis.Client, logger *slog.Logger) *RecipeService {
	return &RecipeService{db: db, rdb: rdb, logger: logger}
}

type RecipeInput struct {
	Title        string
	Description  string
	Instructions string
	Ingredients  []string
	ImageURL     string
}

// RecipeUpdate fields left nil are not touched.
type RecipeUpdate struct {
	Title        *string
	Description  *string
	Instructions *string
	Ingredients  *[]string
	ImageURL     *string
}

func (s *RecipeService) List(q string, page Page) ([]models.Recipe, int64, error) {
	tx := s.db.Model(&models.Recipe{})
	if term := strings.TrimSpace(q); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := tx.Preload("Author").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (s *RecipeService) Get(id string) (*models.Recipe, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	if cached := s.cacheGet(id); cached != nil {
		return cached, nil
	}

	var recipe models.Recipe
	if err := s.db.Preload("Author").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.cacheSet(&recipe)
	return &recipe, nil
}

func (s *RecipeService) Create(identity auth.Identity, input RecipeInput) (*models.Recipe, error) {
	if input.Title == "" || input.Description == "" || input.Instructions == "" {
		return nil, ErrValidation
	}

	recipe := models.Recipe{
		Title:        input.Title,
		Description:  input.Description,
		Instructions: input.Instructions,
		Ingredients:  normalizeIngredients(input.Ingredients),
		ImageURL:     input.ImageURL,
		AuthorID:     identity.UserID,
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").First(&recipe, "id = ?", recipe.ID)
	return &recipe, nil
}

func (s *RecipeService) Update(identity auth.Identity, id string, update RecipeUpdate) (*models.Recipe, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.AuthorID != identity.UserID {
		return nil, ErrForbidden
	}

	if update.Title != nil {
		recipe.Title = *update.Title
	}
	if update.Description != nil {
		recipe.Description = *update.Description
	}
	if update.Instructions != nil {
		recipe.Instructions = *update.Instructions
	}
	if update.Ingredients != nil {
		recipe.Ingredients = normalizeIngredients(*update.Ingredients)
	}
	if update.ImageURL != nil {
		recipe.ImageURL = *update.ImageURL
	}

	if err := s.db.Save(&recipe).Error; err != nil {
		return nil, err
	}

	s.cacheInvalidate(id)
	s.db.Preload("Author").First(&recipe, "id = ?", recipe.ID)
	return &recipe, nil
}

func (s *RecipeService) Delete(identity auth.Identity, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if recipe.AuthorID != identity.UserID {
		return ErrForbidden
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	s.cacheInvalidate(id)
	return nil
}

func normalizeIngredients(raw []string) models.StringList {
	out := models.StringList{}
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *RecipeService) cacheGet(id string) *models.Recipe {
	if s.rdb == nil {
		return nil
	}
	val, err := s.rdb.Get(context.Background(), recipeCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var recipe models.Recipe
	if err := json.Unmarshal([]byte(val), &recipe); err != nil {
		return nil
	}
	return &recipe
}

func (s *RecipeService) cacheSet(recipe *models.Recipe) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(recipe)
	if err != nil {
		return
	}
	if err := s.rdb.Set(context.Background(), recipeCacheKey(recipe.ID), data, recipeCacheTTL).Err(); err != nil {
		s.logger.Debug("recipe cache write failed", "id", recipe.ID, "error", err)
	}
}

func (s *RecipeService) cacheInvalidate(id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), recipeCacheKey(id)).Err(); err != nil {
		s.logger.Debug("recipe cache invalidation failed", "id", id, "error", err)
	}
}
