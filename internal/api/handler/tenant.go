package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListTenants(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Tenants.Tenants())
}

func (h *Handler) AddTenant(c *gin.Context) {
	var tenant models.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Tenants.AddTenant(tenant)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetTenant(c *gin.Context) {
	tenant, ok := h.Registries.Tenants.Tenant(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *Handler) UpdateTenant(c *gin.Context) {
	var tenant models.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Tenants.UpdateTenant(c.Param("id"), tenant)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	h.Registries.Tenants.DeleteTenant(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type assignTenantRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// AssignTenantToRoom moves a tenant into a room; the registry rejects
// unknown or already-taken rooms.
func (h *Handler) AssignTenantToRoom(c *gin.Context) {
	var req assignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant, err := h.Registries.Tenants.AssignTenantToRoom(c.Param("id"), req.RoomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}
