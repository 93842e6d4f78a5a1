package handlers

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/vibefolio/backend/internal/apperrors"
)

// Every endpoint answers with the shared envelope {success, data?, error?, message?}.
// In development mode error bodies also carry the stack that produced them.

func respondError(c *gin.Context, status int, msg string, dev bool) {
	body := gin.H{"success": false, "error": msg}
	if dev {
		body["stack"] = string(debug.Stack())
	}
	c.JSON(status, body)
}

// respondStoreError maps persistence failures onto the envelope: schema-level
// validation is a client error no matter where it was raised, everything else
// is a server error.
func respondStoreError(c *gin.Context, err error, dev bool) {
	status := http.StatusInternalServerError
	if apperrors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	respondError(c, status, err.Error(), dev)
}
