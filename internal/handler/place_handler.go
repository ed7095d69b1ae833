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

type PlaceHandler struct {
	facade *facade.Facade
}

func NewPlaceHandler(f *facade.Facade) *PlaceHandler {
	return &PlaceHandler{facade: f}
}

type PlaceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id" binding:"required"`
	Amenities   []string `json:"amenities"`
}

// PlaceUpdateRequest carries a partial-field merge: only present fields
// are written.
type PlaceUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

func placeResponse(place *models.Place) gin.H {
	return gin.H{
		"id":          place.ID,
		"title":       place.Title,
		"description": place.Description,
		"price":       place.Price,
		"latitude":    place.Latitude,
		"longitude":   place.Longitude,
		"owner_id":    place.OwnerID,
		"amenities":   []string(place.Amenities),
	}
}

// placeWithOwner embeds a summary of the owner, as list and detail
// responses do.
func (h *PlaceHandler) placeWithOwner(place *models.Place) (gin.H, error) {
	resp := placeResponse(place)
	owner, err := h.facade.GetUser(place.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		resp["owner"] = gin.H{
			"id":         owner.ID,
			"first_name": owner.FirstName,
			"last_name":  owner.LastName,
			"email":      owner.Email,
		}
	} else {
		resp["owner"] = nil
	}
	return resp, nil
}

// Create registers a new place owned by the caller.
// POST /api/v1/places/ (token required)
func (h *PlaceHandler) Create(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.OwnerID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Unauthorized action, can only create place if you are the owner",
		})
		return
	}

	// Reject unknown amenity IDs before the place exists.
	for _, amenityID := range req.Amenities {
		amenity, err := h.facade.GetAmenity(amenityID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
			return
		}
		if amenity == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Amenity with ID %s not found", amenityID),
			})
			return
		}
	}

	place, err := h.facade.CreatePlace(facade.PlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		if facade.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("Failed to create place",
			zap.String("owner_id", req.OwnerID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}

	if len(req.Amenities) > 0 {
		place, err = h.facade.SetPlaceAmenities(place.ID, req.Amenities)
		if err != nil {
			if facade.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
			return
		}
	}

	c.JSON(http.StatusCreated, placeResponse(place))
}

// List returns all places with owner summaries.
// GET /api/v1/places/
func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.facade.GetAllPlaces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch places"})
		return
	}

	placeList := make([]gin.H, 0, len(places))
	for _, place := range places {
		resp, err := h.placeWithOwner(place)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch places"})
			return
		}
		placeList = append(placeList, resp)
	}
	c.JSON(http.StatusOK, placeList)
}

// Get returns one place by ID with an owner summary.
// GET /api/v1/places/:id
func (h *PlaceHandler) Get(c *gin.Context) {
	place, err := h.facade.GetPlace(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	resp, err := h.placeWithOwner(place)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update modifies a place. Owner or admin.
// PUT /api/v1/places/:id (token required)
func (h *PlaceHandler) Update(c *gin.Context) {
	placeID := c.Param("id")
	callerID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	place, err := h.facade.GetPlace(placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	if !isAdmin && place.OwnerID != callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Unauthorized action, you must be the owner of the place to update it",
		})
		return
	}

	var req PlaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}

	updated := place
	if len(fields) > 0 {
		updated, err = h.facade.UpdatePlace(placeID, fields)
		if err != nil {
			logger.Log.Error("Failed to update place",
				zap.String("place_id", placeID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place"})
			return
		}
	}

	if req.Amenities != nil {
		updated, err = h.facade.SetPlaceAmenities(placeID, req.Amenities)
		if err != nil {
			if facade.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place"})
			return
		}
	}

	c.JSON(http.StatusOK, placeResponse(updated))
}

// Delete removes a place and its reviews. Owner or admin.
// DELETE /api/v1/places/:id (token required)
func (h *PlaceHandler) Delete(c *gin.Context) {
	placeID := c.Param("id")
	callerID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	place, err := h.facade.GetPlace(placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	if !isAdmin && place.OwnerID != callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Unauthorized action, you must be the owner of the place to delete it",
		})
		return
	}

	if err := h.facade.DeletePlace(placeID); err != nil {
		logger.Log.Error("Failed to delete place",
			zap.String("place_id", placeID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Place %s deleted successfully", placeID),
	})
}
