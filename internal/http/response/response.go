// Package response renders the API envelope:
// {success, message, data?, error?, timestamp}. Real HTTP status codes
// carry the error class; the envelope repeats the human-readable message.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// PageEnvelope is the body of paginated list responses.
type PageEnvelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Timestamp  string      `json:"timestamp"`
}

// Pagination describes one page of an offset-paginated listing.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the page block from page/limit/total.
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Success renders 200 with data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// Created renders 201 with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// SuccessWithPage renders 200 with data and a pagination block.
func SuccessWithPage(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageEnvelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
		Timestamp:  now(),
	})
}

// Fail renders an error envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string) {
	FailWithDetail(c, status, message, nil)
}

// FailWithDetail renders an error envelope carrying a detail payload,
// typically field-level validation messages.
func FailWithDetail(c *gin.Context, status int, message string, detail interface{}) {
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: now(),
	})
}

// BadRequest renders 400.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized renders 401.
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// Forbidden renders 403.
func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

// NotFound renders 404.
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// Internal renders 500 with a sanitized message; the original error is
// logged server-side, never echoed.
func Internal(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Fail(c, http.StatusInternalServerError, message)
}
