package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListUsers(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		c.JSON(http.StatusOK, h.Registries.Users.UsersByRole(models.UserRole(role)))
		return
	}
	c.JSON(http.StatusOK, h.Registries.Users.Users())
}

func (h *Handler) AddUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Users.AddUser(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, ok := h.Registries.Users.UserByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Users.UpdateUser(c.Param("id"), user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	h.Registries.Users.DeleteUser(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type sessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SetSession points the "logged in" pointer at a user. This is a plain
// assignment; there is no credential check.
func (h *Handler) SetSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Users.SetCurrentUser(req.UserID); err != nil {
		abortWithError(c, err)
		return
	}
	user, _ := h.Registries.Users.CurrentUser()
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetSession(c *gin.Context) {
	user, ok := h.Registries.Users.CurrentUser()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) ClearSession(c *gin.Context) {
	h.Registries.Users.ClearCurrentUser()
	c.Status(http.StatusNoContent)
}
