package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabride/internal/domain"
	"cabride/internal/service"
)

// RideHandler handles HTTP requests for rides and fare estimates.
type RideHandler struct {
	dispatch *service.DispatchService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(dispatch *service.DispatchService) *RideHandler {
	return &RideHandler{dispatch: dispatch}
}

// BookRideRequest is the HTTP request body for booking a ride.
type BookRideRequest struct {
	RiderID     string `json:"rider_id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID          string  `json:"id"`
	RiderID     string  `json:"rider_id"`
	DriverID    string  `json:"driver_id"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Fare        float64 `json:"fare"`
	Status      string  `json:"status"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time,omitempty"`
}

func toRideResponse(ride *domain.Ride) RideResponse {
	resp := RideResponse{
		ID:          ride.ID,
		RiderID:     ride.RiderID,
		DriverID:    ride.DriverID,
		Source:      ride.Source,
		Destination: ride.Destination,
		Fare:        ride.Fare,
		Status:      string(ride.Status),
		StartTime:   ride.StartTime.Format(time.RFC3339),
	}
	if !ride.EndTime.IsZero() {
		resp.EndTime = ride.EndTime.Format(time.RFC3339)
	}
	return resp
}

func toRideResponses(rides []*domain.Ride) []RideResponse {
	out := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		out = append(out, toRideResponse(r))
	}
	return out
}

// BookRide handles POST /v1/rides
func (h *RideHandler) BookRide(c *gin.Context) {
	var req BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.dispatch.BookRide(c.Request.Context(), service.BookRideRequest{
		RiderID:     req.RiderID,
		Source:      req.Source,
		Destination: req.Destination,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// EndRide handles POST /v1/rides/:id/end
func (h *RideHandler) EndRide(c *gin.Context) {
	ride, err := h.dispatch.EndRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.dispatch.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// History handles GET /v1/rides?rider_id=...|email=...
func (h *RideHandler) History(c *gin.Context) {
	var (
		rides []*domain.Ride
		err   error
	)

	if riderID := c.Query("rider_id"); riderID != "" {
		rides, err = h.dispatch.RideHistory(c.Request.Context(), riderID)
	} else if email := c.Query("email"); email != "" {
		rides, err = h.dispatch.RideHistoryByEmail(c.Request.Context(), email)
	} else {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rider_id or email is required"})
		return
	}

	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponses(rides))
}

// EstimateFare handles GET /v1/fare/estimate?source=...&destination=...
func (h *RideHandler) EstimateFare(c *gin.Context) {
	quote, err := h.dispatch.EstimateFare(c.Query("source"), c.Query("destination"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"source":      quote.Source,
		"destination": quote.Destination,
		"distance_km": quote.DistanceKm,
		"rate_per_km": quote.RatePerKm,
		"fare":        quote.Amount,
	})
}

// Locations handles GET /v1/locations
func (h *RideHandler) Locations(c *gin.Context) {
	respondJSON(c, http.StatusOK, gin.H{"locations": h.dispatch.Locations()})
}
