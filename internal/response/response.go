package response

import (
	"errors"
	"net/http"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// PageMeta carries paging metadata alongside a paginated Data payload.
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// Success writes a 200 response with the data payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with the data payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Deleted writes a 200 response with a confirmation message.
func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Paginated writes a 200 response with items and paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"meta":    PageMeta{Total: total, Page: page, Limit: limit},
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: msg})
}

// Unauthorized writes a 401 response with the given message.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: msg})
}

// Error translates a domain error into the appropriate HTTP status. Expected
// failures become 4xx with their message; anything unrecognized is a 500 with
// a generic message.
func Error(c *gin.Context, err error) {
	var (
		notFound     *domain.NotFoundError
		validation   *domain.ValidationError
		invalidState *domain.InvalidStateError
		conflict     *domain.ConflictError
		unauthorized *domain.UnauthorizedError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, Envelope{Success: false, Error: err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: err.Error()})
	case errors.As(err, &invalidState):
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, Envelope{Success: false, Error: err.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: "internal server error"})
	}
}
