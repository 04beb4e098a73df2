package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

type catalogEntryRequest struct {
	Name string `json:"name" binding:"required"`
}

type catalogRenameRequest struct {
	OldName string `json:"old_name" binding:"required"`
	NewName string `json:"new_name" binding:"required"`
}

// --- Property types ---

func (h *Handler) ListPropertyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.PropertyTypes())
}

func (h *Handler) AddPropertyType(c *gin.Context) {
	var req catalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Registries.Properties.AddPropertyType(req.Name)
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *Handler) UpdatePropertyType(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Properties.UpdatePropertyType(req.OldName, req.NewName); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

func (h *Handler) DeletePropertyType(c *gin.Context) {
	h.Registries.Properties.DeletePropertyType(c.Param("name"))
	c.Status(http.StatusNoContent)
}

// --- Room types ---

func (h *Handler) ListRoomTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.RoomTypes())
}

func (h *Handler) AddRoomType(c *gin.Context) {
	var req catalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Registries.Properties.AddRoomType(req.Name)
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Properties.UpdateRoomType(req.OldName, req.NewName); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	h.Registries.Properties.DeleteRoomType(c.Param("name"))
	c.Status(http.StatusNoContent)
}

// --- Room categories ---

func (h *Handler) ListRoomCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.RoomCategories())
}

func (h *Handler) AddRoomCategory(c *gin.Context) {
	var req catalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Registries.Properties.AddRoomCategory(req.Name)
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *Handler) UpdateRoomCategory(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Properties.UpdateRoomCategory(req.OldName, req.NewName); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

func (h *Handler) DeleteRoomCategory(c *gin.Context) {
	h.Registries.Properties.DeleteRoomCategory(c.Param("name"))
	c.Status(http.StatusNoContent)
}

// --- Amenities ---

func (h *Handler) ListAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.Amenities())
}

func (h *Handler) AddAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Properties.AddAmenity(amenity); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, amenity)
}

func (h *Handler) UpdateAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Registries.Properties.UpdateAmenity(c.Param("name"), amenity); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func (h *Handler) DeleteAmenity(c *gin.Context) {
	h.Registries.Properties.DeleteAmenity(c.Param("name"))
	c.Status(http.StatusNoContent)
}
