package handler

import (
	"github.com/Hosni10/boatify-server/internal/application"
	"github.com/Hosni10/boatify-server/internal/domain/company"
	"github.com/Hosni10/boatify-server/internal/middleware"
	"github.com/Hosni10/boatify-server/internal/response"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for the authenticated user's company
// profile. The company is always taken from the token, never from the body.
type CompanyHandler struct {
	service *application.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(service *application.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// RegisterRoutes registers all company profile routes behind auth.
func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	profile := r.Group("/api/company", authMW)
	{
		profile.GET("", h.GetProfile)
		profile.POST("", h.UpsertProfile)
		profile.PUT("", h.ReplaceProfile)
		profile.DELETE("", h.DeleteProfile)
	}
}

// GetProfile handles GET /api/company.
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewProfileResponse(p))
}

// UpsertProfile handles POST /api/company.
func (h *CompanyHandler) UpsertProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var details company.ProfileDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.UpsertProfile(c.Request.Context(), companyID, details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewProfileResponse(p))
}

// ReplaceProfile handles PUT /api/company.
func (h *CompanyHandler) ReplaceProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var details company.ProfileDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.ReplaceProfile(c.Request.Context(), companyID, details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewProfileResponse(p))
}

// DeleteProfile handles DELETE /api/company.
func (h *CompanyHandler) DeleteProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), companyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c, "company profile deleted")
}
