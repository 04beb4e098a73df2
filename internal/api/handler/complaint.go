package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListComplaints(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Complaints.Complaints())
}

func (h *Handler) AddComplaint(c *gin.Context) {
	var complaint models.Complaint
	if err := c.ShouldBindJSON(&complaint); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Complaints.AddComplaint(complaint)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, ok := h.Registries.Complaints.Complaint(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (h *Handler) UpdateComplaint(c *gin.Context) {
	var complaint models.Complaint
	if err := c.ShouldBindJSON(&complaint); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Complaints.UpdateComplaint(c.Param("id"), complaint)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteComplaint(c *gin.Context) {
	h.Registries.Complaints.DeleteComplaint(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type commentRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AddComplaintComment appends a comment; the registry stamps the
// complaint's updated-at time.
func (h *Handler) AddComplaintComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	complaint, err := h.Registries.Complaints.AddComment(c.Param("id"), models.ComplaintComment{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}
