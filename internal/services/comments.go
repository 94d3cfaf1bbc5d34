package services

import (
	"errors"
	"strings"

	"recipebox/internal/auth"
	"recipebox/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) List(recipeID string) ([]models.Comment, error) {
	if !validID(recipeID) {
		return nil, ErrNotFound
	}

	var count int64
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *CommentService) Add(identity auth.Identity, recipeID, content string) (*models.Comment, error) {
	if !validID(recipeID) {
		return nil, ErrNotFound
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		RecipeID: recipeID,
		AuthorID: identity.UserID,
		Content:  content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").First(&comment, "id = ?", comment.ID)
	return &comment, nil
}

// Delete is allowed for the comment's author or the recipe's author. The
// second authority lets recipe owners moderate their own recipe pages.
func (s *CommentService) Delete(identity auth.Identity, recipeID, commentID string) error {
	if !validID(recipeID) || !validID(commentID) {
		return ErrNotFound
	}

	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.RecipeID != recipeID {
		return ErrNotFound
	}

	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.AuthorID != identity.UserID && recipe.AuthorID != identity.UserID {
		return ErrForbidden
	}

	return s.db.Delete(&models.Comment{}, "id = ?", commentID).Error
}
