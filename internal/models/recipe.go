package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSON string in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

type Recipe struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Title          string     `gorm:"not null;size:200" json:"title"`
	Description    string     `gorm:"not null;type:text" json:"description"`
	Ingredients    StringList `gorm:"type:text" json:"ingredients"`
	Instructions   string     `gorm:"not null;type:text" json:"instructions"`
	ImageURL       string     `gorm:"size:512" json:"imageUrl,omitempty"`
	AuthorID       string     `gorm:"not null;size:36;index" json:"authorId"`
	Author         *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	FavoritesCount int        `gorm:"default:0" json:"favoritesCount"`
	CreatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
