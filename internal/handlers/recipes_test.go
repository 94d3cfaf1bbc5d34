package handlers

import (
	"net/http"
	"testing"

	"recipebox/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateRecipe(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	_, token := createUserWithToken(t, h, db, "chef")

	t.Run("Success", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/recipes", token, map[string]interface{}{
			"title":        "Shakshuka",
			"description":  "Eggs in tomato sauce",
			"instructions": "Simmer, crack, cover",
			"ingredients":  []string{"eggs", "tomatoes"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "Shakshuka", data["title"])
		assert.Equal(t, float64(0), data["favoritesCount"])
	})

	t.Run("Comma-Separated Ingredients", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/recipes", token, map[string]interface{}{
			"title":        "Frittata",
			"description":  "Open-faced omelette",
			"instructions": "Whisk, pour, bake",
			"ingredients":  "eggs, spinach , cheese,",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t,
			[]interface{}{"eggs", "spinach", "cheese"},
			data["ingredients"].([]interface{}))
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/recipes", "", map[string]interface{}{
			"title":        "Nope",
			"description":  "d",
			"instructions": "i",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/recipes", token, map[string]interface{}{
			"title": "Only title",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListRecipes(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	user, _ := createUserWithToken(t, h, db, "chef")

	t.Run("Empty Collection Still Pages", func(t *testing.T) {
		w := doRequest(r, "GET", "/api/recipes?page=1&limit=10", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Empty(t, resp["data"])
		pagination := resp["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["totalPages"])
		assert.Equal(t, float64(0), pagination["totalItems"])
	})

	t.Run("With Data And Clamped Limit", func(t *testing.T) {
		for _, title := range []string{"One", "Two", "Three"} {
			db.Create(&models.Recipe{Title: title, Description: "d", Instructions: "i", AuthorID: user.ID})
		}

		w := doRequest(r, "GET", "/api/recipes?page=0&limit=9999", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		pagination := decodeBody(t, w)["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["currentPage"])
		assert.Equal(t, float64(100), pagination["pageSize"])
		assert.Equal(t, float64(3), pagination["totalItems"])
	})

	t.Run("Search", func(t *testing.T) {
		w := doRequest(r, "GET", "/api/recipes?q=two", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Len(t, resp["data"], 1)
	})
}

func TestGetRecipe(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	user, _ := createUserWithToken(t, h, db, "chef")

	recipe := models.Recipe{Title: "Gazpacho", Description: "d", Instructions: "i", AuthorID: user.ID}
	db.Create(&recipe)

	t.Run("Success", func(t *testing.T) {
		w := doRequest(r, "GET", "/api/recipes/"+recipe.ID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid ID Returns 404", func(t *testing.T) {
		w := doRequest(r, "GET", "/api/recipes/not-a-real-id", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Missing Returns 404", func(t *testing.T) {
		w := doRequest(r, "GET", "/api/recipes/7b8e6c0a-0000-4000-8000-000000000000", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateRecipe(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	owner, ownerToken := createUserWithToken(t, h, db, "owner")
	_, intruderToken := createUserWithToken(t, h, db, "intruder")

	recipe := models.Recipe{Title: "Original", Description: "d", Instructions: "i", AuthorID: owner.ID}
	db.Create(&recipe)

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		w := doRequest(r, "PUT", "/api/recipes/"+recipe.ID, intruderToken, map[string]interface{}{
			"title": "Hijacked",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)

		var unchanged models.Recipe
		db.First(&unchanged, "id = ?", recipe.ID)
		assert.Equal(t, "Original", unchanged.Title)
	})

	t.Run("Owner Updates", func(t *testing.T) {
		w := doRequest(r, "PUT", "/api/recipes/"+recipe.ID, ownerToken, map[string]interface{}{
			"title": "Renamed",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "Renamed", data["title"])
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		w := doRequest(r, "PUT", "/api/recipes/"+recipe.ID, "", map[string]interface{}{"title": "x"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteRecipe(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	owner, ownerToken := createUserWithToken(t, h, db, "owner")
	_, intruderToken := createUserWithToken(t, h, db, "intruder")

	recipe := models.Recipe{Title: "Doomed", Description: "d", Instructions: "i", AuthorID: owner.ID}
	db.Create(&recipe)

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		w := doRequest(r, "DELETE", "/api/recipes/"+recipe.ID, intruderToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var count int64
		db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Owner Deletes", func(t *testing.T) {
		w := doRequest(r, "DELETE", "/api/recipes/"+recipe.ID, ownerToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("Invalid ID Returns 404", func(t *testing.T) {
		w := doRequest(r, "DELETE", "/api/recipes/garbage", ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
