package services

import (
	"context"
	"errors"

	"recipebox/internal/auth"
	"recipebox/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type FavoriteService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewFavoriteService(db *gorm.DB, rdb *redis.Client) *FavoriteService {
	return &FavoriteService{db: db, rdb: rdb}
}

// Add favorites a recipe for the caller. A duplicate add is a no-op
// success, reported through the alreadyFavorite return value; the unique
// index on (user_id, recipe_id) is what makes racing adds collapse into
// a single record.
func (s *FavoriteService) Add(identity auth.Identity, recipeID string) (alreadyFavorite bool, err error) {
	if !validID(recipeID) {
		return false, ErrNotFound
	}

	var count int64
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrNotFound
	}

	favorite := models.Favorite{UserID: identity.UserID, RecipeID: recipeID}
	if err := s.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	err = s.db.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	if err != nil {
		return false, err
	}

	s.invalidateRecipe(recipeID)
	return false, nil
}

// Remove deletes the caller's favorite. The counter decrement is guarded
// by favorites_count > 0 so undercount drift can never push it negative.
func (s *FavoriteService) Remove(identity auth.Identity, recipeID string) error {
	if !validID(recipeID) {
		return ErrNotFound
	}

	res := s.db.Where("user_id = ? AND recipe_id = ?", identity.UserID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	err := s.db.Model(&models.Recipe{}).
		Where("id = ? AND favorites_count > 0", recipeID).
		UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	if err != nil {
		return err
	}

	s.invalidateRecipe(recipeID)
	return nil
}

// List returns the caller's favorited recipes, newest favorite first.
func (s *FavoriteService) List(identity auth.Identity, page Page) ([]models.Recipe, int64, error) {
	tx := s.db.Model(&models.Favorite{}).Where("user_id = ?", identity.UserID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []models.Favorite
	err := tx.Preload("Recipe").Preload("Recipe.Author").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}

	recipes := make([]models.Recipe, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Recipe != nil {
			recipes = append(recipes, *favorite.Recipe)
		}
	}

	return recipes, total, nil
}

func (s *FavoriteService) invalidateRecipe(recipeID string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(context.Background(), recipeCacheKey(recipeID))
}
