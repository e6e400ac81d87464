package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabride/internal/domain"
	"cabride/internal/service"
)

// RatingHandler handles HTTP requests for ratings.
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// SubmitRatingRequest is the HTTP request body for submitting a rating.
type SubmitRatingRequest struct {
	RideID   string `json:"ride_id"`
	RaterID  string `json:"rater_id"`
	Score    int    `json:"score"`
	Comments string `json:"comments,omitempty"`
}

// RatingResponse is the HTTP representation of a rating.
type RatingResponse struct {
	ID        string `json:"id"`
	RideID    string `json:"ride_id"`
	RaterID   string `json:"rater_id"`
	RatedID   string `json:"rated_id"`
	Score     int    `json:"score"`
	Comments  string `json:"comments,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toRatingResponse(rating *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		RideID:    rating.RideID,
		RaterID:   rating.RaterID,
		RatedID:   rating.RatedID,
		Score:     rating.Score,
		Comments:  rating.Comments,
		CreatedAt: rating.CreatedAt.Format(time.RFC3339),
	}
}

func toRatingResponses(ratings []*domain.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, toRatingResponse(r))
	}
	return out
}

// Submit handles POST /v1/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rating, err := h.ratingService.SubmitRating(c.Request.Context(), service.SubmitRatingRequest{
		RideID:   req.RideID,
		RaterID:  req.RaterID,
		Score:    req.Score,
		Comments: req.Comments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRatingResponse(rating))
}

// For handles GET /v1/ratings/for/:id (ratings an entity received).
func (h *RatingHandler) For(c *gin.Context) {
	ratings, err := h.ratingService.RatingsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRatingResponses(ratings))
}

// By handles GET /v1/ratings/by/:id (ratings an entity gave).
func (h *RatingHandler) By(c *gin.Context) {
	ratings, err := h.ratingService.RatingsBy(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRatingResponses(ratings))
}
