package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibefolio/backend/internal/about"
	"github.com/vibefolio/backend/internal/apperrors"
	"github.com/vibefolio/backend/internal/content"
	"github.com/vibefolio/backend/internal/emails"
)

// RegisterUploadRoutes wires the three write endpoints: tagged content
// ingestion, the About create-or-overwrite, and email capture.
func RegisterUploadRoutes(r *gin.Engine, contentSvc *content.Service, aboutSvc *about.Service, emailRepo emails.Repository, dev bool) {
	r.POST("/api/upload", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil && err != io.EOF {
			respondError(c, http.StatusBadRequest, err.Error(), dev)
			return
		}
		if len(body) == 0 {
			respondError(c, http.StatusBadRequest, "Request body cannot be empty", dev)
			return
		}

		sub := content.ParseSubmission(body)
		doc, err := contentSvc.Ingest(c.Request.Context(), sub)
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Content created successfully",
			"type":    sub.Type,
			"data":    doc,
		})
	})

	r.POST("/api/uploadabout", func(c *gin.Context) {
		var req about.Payload
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			respondError(c, http.StatusBadRequest, err.Error(), dev)
			return
		}
		if req.Username == "" || req.Pfp == "" || req.Bio == "" {
			respondError(c, http.StatusBadRequest, "Username and profile picture are required for about data", dev)
			return
		}

		doc, err := aboutSvc.CreateOrOverwrite(c.Request.Context(), req)
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "About data created/updated successfully",
			"data":    doc,
		})
	})

	r.POST("/api/uploademail", func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			respondError(c, http.StatusBadRequest, err.Error(), dev)
			return
		}
		if req.Email == "" {
			respondError(c, http.StatusBadRequest, "Email is required", dev)
			return
		}

		doc, err := emailRepo.Insert(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				respondError(c, http.StatusConflict, "Email already exists", dev)
				return
			}
			respondStoreError(c, err, dev)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Email saved successfully",
			"data":    doc,
		})
	})
}
