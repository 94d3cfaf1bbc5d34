package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFavorites(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page := pageFromQuery(c)

	recipes, total, err := h.favorites.List(identity, page)
	if err != nil {
		h.respondError(c, err, "Favorite not found", "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       recipes,
		"pagination": paginate(total, page),
	})
}

func (h *Handler) AddFavorite(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	already, err := h.favorites.Add(identity, c.Param("recipeId"))
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "")
		return
	}

	message := "Recipe added to favorites"
	if already {
		message = "Recipe already in favorites"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    gin.H{"alreadyFavorite": already},
	})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.favorites.Remove(identity, c.Param("recipeId")); err != nil {
		h.respondError(c, err, "Favorite not found", "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe removed from favorites",
	})
}
