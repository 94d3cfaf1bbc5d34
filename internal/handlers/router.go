package handlers

import (
	"net/http"
	"time"

	"recipebox/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// The SPA frontend is served from a different origin.
	r.Use(cors.Default())

	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "API is healthy",
			"uptime":    time.Since(h.startedAt).Seconds(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", h.AuthRequired(), h.GetMe)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/share", h.ShareRecipe)
		recipes.POST("", h.AuthRequired(), h.CreateRecipe)
		recipes.PUT("/:id", h.AuthRequired(), h.UpdateRecipe)
		recipes.DELETE("/:id", h.AuthRequired(), h.DeleteRecipe)

		recipes.GET("/:id/comments", h.ListComments)
		recipes.POST("/:id/comments", h.AuthRequired(), h.AddComment)
		recipes.DELETE("/:id/comments/:commentId", h.AuthRequired(), h.DeleteComment)
	}

	favorites := api.Group("/favorites")
	favorites.Use(h.AuthRequired())
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("/:recipeId", h.AddFavorite)
		favorites.DELETE("/:recipeId", h.RemoveFavorite)
	}

	return r
}
