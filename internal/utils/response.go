package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends the standard success envelope, merging any named payload
// entries (appointment, appointments, doctors, user, ...) into the body.
func Success(c *gin.Context, message string, payload gin.H) {
	respond(c, http.StatusOK, true, message, payload)
}

// Created sends a resource created response with the same envelope.
func Created(c *gin.Context, message string, payload gin.H) {
	respond(c, http.StatusCreated, true, message, payload)
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, message string) {
	respond(c, statusCode, false, message, nil)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func respond(c *gin.Context, statusCode int, success bool, message string, payload gin.H) {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(statusCode, body)
}
