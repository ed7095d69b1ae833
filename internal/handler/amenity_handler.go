package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/pkg/logger"
	"go.uber.org/zap"
)

type AmenityHandler struct {
	facade *facade.Facade
}

func NewAmenityHandler(f *facade.Facade) *AmenityHandler {
	return &AmenityHandler{facade: f}
}

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
}

func amenityResponse(amenity *models.Amenity) gin.H {
	return gin.H{
		"id":   amenity.ID,
		"name": amenity.Name,
	}
}

// Create registers a new amenity. Admin only.
// POST /api/v1/amenities/ (admin token required)
func (h *AmenityHandler) Create(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amenity name is required"})
		return
	}

	amenity, err := h.facade.CreateAmenity(req.Name)
	if err != nil {
		if facade.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("Failed to create amenity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create amenity"})
		return
	}

	c.JSON(http.StatusCreated, amenityResponse(amenity))
}

// List returns all amenities.
// GET /api/v1/amenities/
func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.facade.GetAllAmenities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch amenities"})
		return
	}

	amenityList := make([]gin.H, 0, len(amenities))
	for _, amenity := range amenities {
		amenityList = append(amenityList, amenityResponse(amenity))
	}
	c.JSON(http.StatusOK, amenityList)
}

// Get returns one amenity by ID.
// GET /api/v1/amenities/:id
func (h *AmenityHandler) Get(c *gin.Context) {
	amenity, err := h.facade.GetAmenity(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch amenity"})
		return
	}
	if amenity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		return
	}
	c.JSON(http.StatusOK, amenityResponse(amenity))
}

// Update renames an amenity. Admin only.
// PUT /api/v1/amenities/:id (admin token required)
func (h *AmenityHandler) Update(c *gin.Context) {
	amenityID := c.Param("id")

	amenity, err := h.facade.GetAmenity(amenityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch amenity"})
		return
	}
	if amenity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		return
	}

	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amenity name is required"})
		return
	}

	updated, err := h.facade.UpdateAmenity(amenityID, map[string]any{"name": req.Name})
	if err != nil {
		logger.Log.Error("Failed to update amenity",
			zap.String("amenity_id", amenityID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update amenity"})
		return
	}

	c.JSON(http.StatusOK, amenityResponse(updated))
}

// Delete removes an amenity. The original service shipped this endpoint
// without any authorization check; that behavior is kept.
// DELETE /api/v1/amenities/:id
func (h *AmenityHandler) Delete(c *gin.Context) {
	amenityID := c.Param("id")

	amenity, err := h.facade.GetAmenity(amenityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch amenity"})
		return
	}
	if amenity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		return
	}

	if err := h.facade.DeleteAmenity(amenityID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete amenity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Amenity %s deleted successfully", amenityID),
	})
}
