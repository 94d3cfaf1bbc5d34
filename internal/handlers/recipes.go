package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

// IngredientList accepts either a JSON array of strings or a single
// comma-separated string. Entries are trimmed and normalized later in
// the recipe service.
type IngredientList []string

func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = strings.Split(raw, ",")
	return nil
}

type CreateRecipeRequest struct {
	Title        string         `json:"title" binding:"required"`
	Description  string         `json:"description" binding:"required"`
	Instructions string         `json:"instructions" binding:"required"`
	Ingredients  IngredientList `json:"ingredients"`
	ImageURL     string         `json:"imageUrl"`
}

// UpdateRecipeRequest uses pointers so absent fields are left untouched.
type UpdateRecipeRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Instructions *string         `json:"instructions"`
	Ingredients  *IngredientList `json:"ingredients"`
	ImageURL     *string         `json:"imageUrl"`
}

func pageFromQuery(c *gin.Context) services.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return services.ClampPage(page, limit)
}

func (h *Handler) ListRecipes(c *gin.Context) {
	page := pageFromQuery(c)

	recipes, total, err := h.recipes.List(c.Query("q"), page)
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       recipes,
		"pagination": paginate(total, page),
	})
}

func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": recipe})
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Title, description, and instructions are required")
		return
	}

	recipe, err := h.recipes.Create(identity, services.RecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Ingredients:  []string(req.Ingredients),
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.respondError(c, err, "Recipe not found", "",
			"Title, description, and instructions are required")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var ingredients *[]string
	if req.Ingredients != nil {
		list := []string(*req.Ingredients)
		ingredients = &list
	}

	recipe, err := h.recipes.Update(identity, c.Param("id"), services.RecipeUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Ingredients:  ingredients,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.respondError(c, err, "Recipe not found",
			"You are not allowed to update this recipe", "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.recipes.Delete(identity, c.Param("id")); err != nil {
		h.respondError(c, err, "Recipe not found",
			"You are not allowed to delete this recipe", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe deleted successfully",
	})
}
