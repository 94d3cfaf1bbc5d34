package models

import (
	"time"
)

// Favorite existence is the sole signal of "favorited" state. The
// composite unique index makes concurrent double-adds collapse into a
// duplicate-key error the service treats as a no-op.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:idx_favorites_user_recipe" json:"userId"`
	RecipeID  string    `gorm:"not null;size:36;uniqueIndex:idx_favorites_user_recipe" json:"recipeId"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}
