package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// ShareRecipe renders a QR code PNG pointing at the recipe's public page.
func (h *Handler) ShareRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "")
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	if size < 64 {
		size = 64
	}
	if size > 1024 {
		size = 1024
	}

	link := h.cfg.PublicBaseURL + "/recipes/" + recipe.ID
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		h.logger.Error("qr encoding failed", "id", recipe.ID, "error", err)
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
