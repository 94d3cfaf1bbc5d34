package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.comments.List(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": comments})
}

func (h *Handler) AddComment(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Content is required")
		return
	}

	comment, err := h.comments.Add(identity, c.Param("id"), req.Content)
	if err != nil {
		h.respondError(c, err, "Recipe not found", "", "Content is required")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment added successfully",
		"data":    comment,
	})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := h.comments.Delete(identity, c.Param("id"), c.Param("commentId"))
	if err != nil {
		h.respondError(c, err, "Comment not found",
			"You are not allowed to delete this comment", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment deleted successfully",
	})
}
