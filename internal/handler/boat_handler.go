package handler

import (
	"github.com/Hosni10/boatify-server/internal/application"
	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/Hosni10/boatify-server/internal/middleware"
	"github.com/Hosni10/boatify-server/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoatHandler handles HTTP requests for boat listings.
type BoatHandler struct {
	service *application.BoatService
}

// NewBoatHandler creates a new BoatHandler.
func NewBoatHandler(service *application.BoatService) *BoatHandler {
	return &BoatHandler{service: service}
}

// RegisterRoutes registers all boat routes. Reading is public; mutating a
// listing requires an authenticated company user.
func (h *BoatHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	boats := r.Group("/api/boats")
	{
		boats.GET("", h.ListBoats)
		boats.GET("/:id", h.GetBoat)
		boats.GET("/company/mine", authMW, h.ListCompanyBoats)
		boats.POST("", authMW, h.CreateBoat)
		boats.PUT("/:id", authMW, h.UpdateBoat)
		boats.DELETE("/:id", authMW, h.DeleteBoat)
	}
}

// BoatRequest is the body of POST /api/boats and PUT /api/boats/:id.
type BoatRequest struct {
	Name        string   `json:"name" binding:"required"`
	BoatType    string   `json:"boat_type" binding:"required"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"price_per_day"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"image_url"`
}

func (r BoatRequest) toInput() application.BoatInput {
	return application.BoatInput{
		Name:        r.Name,
		BoatType:    r.BoatType,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Location:    r.Location,
		Status:      boat.BoatStatus(r.Status),
		Features:    r.Features,
		ImageURL:    r.ImageURL,
	}
}

// ListBoats handles GET /api/boats.
func (h *BoatHandler) ListBoats(c *gin.Context) {
	boats, err := h.service.ListBoats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewBoatResponses(boats))
}

// GetBoat handles GET /api/boats/:id.
func (h *BoatHandler) GetBoat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid boat ID")
		return
	}

	b, err := h.service.GetBoat(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewBoatResponse(b))
}

// ListCompanyBoats handles GET /api/boats/company/mine.
func (h *BoatHandler) ListCompanyBoats(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	boats, err := h.service.ListCompanyBoats(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewBoatResponses(boats))
}

// CreateBoat handles POST /api/boats.
func (h *BoatHandler) CreateBoat(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBoat(c.Request.Context(), companyID, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, application.NewBoatResponse(b))
}

// UpdateBoat handles PUT /api/boats/:id.
func (h *BoatHandler) UpdateBoat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid boat ID")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.UpdateBoat(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewBoatResponse(b))
}

// DeleteBoat handles DELETE /api/boats/:id.
func (h *BoatHandler) DeleteBoat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid boat ID")
		return
	}

	if err := h.service.DeleteBoat(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c, "boat deleted")
}
