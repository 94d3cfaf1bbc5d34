package handlers

import (
	"errors"
	"net/http"
	"time"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

// Pagination is the envelope block returned by list endpoints.
type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

func paginate(total int64, page services.Page) Pagination {
	return Pagination{
		TotalItems:  total,
		TotalPages:  services.TotalPages(total, page.Size),
		CurrentPage: page.Number,
		PageSize:    page.Size,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func buildUserResponse(user models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps the service error taxonomy onto the HTTP envelope.
// Anything outside the taxonomy is logged server-side and reported as a
// generic 500; detail never reaches the client.
func (h *Handler) respondError(c *gin.Context, err error, notFound, forbidden, validation string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, forbidden)
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, validation)
	case errors.Is(err, services.ErrConflict):
		fail(c, http.StatusConflict, "Duplicate resource")
	default:
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
