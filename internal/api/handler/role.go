package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Roles.Roles())
}

func (h *Handler) AddRole(c *gin.Context) {
	var role models.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Roles.AddRole(role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetRole(c *gin.Context) {
	role, ok := h.Registries.Roles.RoleByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var role models.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Roles.UpdateRole(c.Param("id"), role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteRole(c *gin.Context) {
	if err := h.Registries.Roles.DeleteRole(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
