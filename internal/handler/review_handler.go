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

type ReviewHandler struct {
	facade *facade.Facade
}

func NewReviewHandler(f *facade.Facade) *ReviewHandler {
	return &ReviewHandler{facade: f}
}

type ReviewRequest struct {
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	PlaceID string `json:"place_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
}

// ReviewUpdateRequest carries a partial-field merge for text and rating.
type ReviewUpdateRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func reviewResponse(review *models.Review) gin.H {
	return gin.H{
		"id":       review.ID,
		"text":     review.Text,
		"rating":   review.Rating,
		"place_id": review.PlaceID,
		"user_id":  review.UserID,
	}
}

// Create registers a new review. Any authenticated user may review any
// place, including places they do not own or have not visited.
// POST /api/v1/reviews/ (token required)
func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := h.facade.CreateReview(facade.ReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
		UserID:  req.UserID,
	})
	if err != nil {
		if facade.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("Failed to create review",
			zap.String("place_id", req.PlaceID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, reviewResponse(review))
}

// List returns all reviews.
// GET /api/v1/reviews/
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.GetAllReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	reviewList := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		reviewList = append(reviewList, reviewResponse(review))
	}
	c.JSON(http.StatusOK, reviewList)
}

// Get returns one review by ID.
// GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.facade.GetReview(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, reviewResponse(review))
}

// ListByPlace returns every review for one place; an empty list when the
// place has none.
// GET /api/v1/places/:id/reviews
func (h *ReviewHandler) ListByPlace(c *gin.Context) {
	placeID := c.Param("id")

	place, err := h.facade.GetPlace(placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	reviewList := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		reviewList = append(reviewList, reviewResponse(review))
	}
	c.JSON(http.StatusOK, reviewList)
}

// Update modifies a review. Any authenticated user; the original service
// enforced no ownership check here and that behavior is kept.
// PUT /api/v1/reviews/:id (token required)
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID := c.Param("id")

	review, err := h.facade.GetReview(reviewID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]any{}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}

	updated := review
	if len(fields) > 0 {
		updated, err = h.facade.UpdateReview(reviewID, fields)
		if err != nil {
			logger.Log.Error("Failed to update review",
				zap.String("review_id", reviewID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
	}

	c.JSON(http.StatusOK, reviewResponse(updated))
}

// Delete removes a review. Any authenticated user, as in the original.
// DELETE /api/v1/reviews/:id (token required)
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID := c.Param("id")

	review, err := h.facade.GetReview(reviewID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if err := h.facade.DeleteReview(reviewID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Review %s deleted successfully", reviewID),
	})
}
