package handler

import (
	"github.com/Hosni10/boatify-server/internal/application"
	"github.com/Hosni10/boatify-server/internal/domain/payment"
	"github.com/Hosni10/boatify-server/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes registers all payment routes on the given router group.
func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/api/payments")
	{
		payments.POST("", h.RecordPayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.GET("/booking/:bookingId", h.ListBookingPayments)
		payments.PATCH("/:id/status", h.UpdateState)
	}
}

// RecordPaymentRequest is the body of POST /api/payments.
type RecordPaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
}

// RecordPayment handles POST /api/payments.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), application.PaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, application.NewPaymentResponse(p))
}

// ListPayments handles GET /api/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListPayments(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, application.NewPaymentResponses(result.Items), result.Total, result.Page, result.Limit)
}

// GetPayment handles GET /api/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid payment ID")
		return
	}

	p, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewPaymentResponse(p))
}

// ListBookingPayments handles GET /api/payments/booking/:bookingId.
func (h *PaymentHandler) ListBookingPayments(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	payments, err := h.service.ListBookingPayments(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewPaymentResponses(payments))
}

// UpdatePaymentStateRequest is the body of PATCH /api/payments/:id/status.
type UpdatePaymentStateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateState handles PATCH /api/payments/:id/status.
func (h *PaymentHandler) UpdateState(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid payment ID")
		return
	}

	var req UpdatePaymentStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.UpdateState(c.Request.Context(), id, payment.PaymentState(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application.NewPaymentResponse(p))
}
