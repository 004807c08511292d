package handler

import (
	"strconv"
	"time"

	"github.com/Hosni10/boatify-server/internal/application"
	"github.com/Hosni10/boatify-server/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for availability queries.
type AvailabilityHandler struct {
	service *application.BookingService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(service *application.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// RegisterRoutes registers all availability routes on the given router group.
func (h *AvailabilityHandler) RegisterRoutes(r *gin.RouterGroup) {
	availability := r.Group("/api/availability")
	{
		availability.POST("/check", h.CheckAvailability)
		availability.POST("/boats", h.AvailableBoats)
		availability.GET("/calendar/:boatId", h.Calendar)
		availability.GET("/next/:boatId", h.NextAvailableDate)
	}
}

// CheckAvailabilityRequest is the body of POST /api/availability/check.
type CheckAvailabilityRequest struct {
	BoatID    uuid.UUID `json:"boat_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// CheckAvailability handles POST /api/availability/check.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), req.BoatID, req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"available": available})
}

// AvailableBoatsRequest is the body of POST /api/availability/boats.
type AvailableBoatsRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// AvailableBoats handles POST /api/availability/boats.
func (h *AvailabilityHandler) AvailableBoats(c *gin.Context) {
	var req AvailableBoatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	boats, err := h.service.AvailableBoats(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewBoatResponses(boats))
}

// Calendar handles GET /api/availability/calendar/:boatId?month=&year=.
// Month and year default to the current month.
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("boatId"))
	if err != nil {
		response.BadRequest(c, "invalid boat ID")
		return
	}

	now := time.Now().UTC()
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		response.BadRequest(c, "invalid month")
		return
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.BadRequest(c, "invalid year")
		return
	}

	slots, err := h.service.Calendar(c.Request.Context(), boatID, time.Month(month), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, slots)
}

// NextAvailableDate handles GET /api/availability/next/:boatId.
func (h *AvailabilityHandler) NextAvailableDate(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("boatId"))
	if err != nil {
		response.BadRequest(c, "invalid boat ID")
		return
	}

	next, err := h.service.NextAvailableDate(c.Request.Context(), boatID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"next_available_date": next})
}
