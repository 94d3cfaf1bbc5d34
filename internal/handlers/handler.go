package handlers

import (
	"log/slog"
	"time"

	"recipebox/internal/auth"
	"recipebox/internal/config"
	"recipebox/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *gorm.DB
	rdb       *redis.Client
	tokens    *auth.TokenService
	recipes   *services.RecipeService
	comments  *services.CommentService
	favorites *services.FavoriteService
	startedAt time.Time
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	tokens *auth.TokenService,
	recipes *services.RecipeService,
	comments *services.CommentService,
	favorites *services.FavoriteService,
) *Handler {
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		rdb:       rdb,
		tokens:    tokens,
		recipes:   recipes,
		comments:  comments,
		favorites: favorites,
		startedAt: time.Now(),
	}
}
