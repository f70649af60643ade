package handlers // Controller layer translates HTTP <-> service calls.

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// fail maps a service error to its status. Known kinds carry a client-facing
// message; anything else is a 500 with the raw error as detail.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// bindJSON binds and validates the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, err.Error())
		return false
	}
	return true
}

// pathID reads a positive numeric path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || n == 0 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(n), true
}

func deleted(c *gin.Context, kind string) {
	c.JSON(http.StatusOK, gin.H{"message": kind + " deleted successfully"})
}
