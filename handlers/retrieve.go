package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibefolio/backend/internal/about"
	"github.com/vibefolio/backend/internal/apperrors"
	"github.com/vibefolio/backend/internal/content"
)

// RegisterRetrieveRoutes wires the read-only listing endpoints and the About
// read.
//
// Listings return each record's 1-based position in the result set as its id,
// not the stored id. The frontend depends on this shape, so it is kept even
// when the stored sequence has gaps.
func RegisterRetrieveRoutes(r *gin.Engine, repo content.Repository, aboutSvc *about.Service, dev bool) {
	r.GET("/api/stories", func(c *gin.Context) {
		stories, err := repo.Stories(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		out := make([]gin.H, 0, len(stories))
		for i, s := range stories {
			out = append(out, gin.H{
				"storyId":      i + 1,
				"aContentLink": s.AContentLink,
				"likes":        s.Likes,
				"duration":     s.Duration,
				"caption":      "",
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
	})

	r.GET("/api/posts", func(c *gin.Context) {
		posts, err := repo.Posts(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		out := make([]gin.H, 0, len(posts))
		for i, p := range posts {
			out = append(out, gin.H{
				"postId":       i + 1,
				"nContentLink": p.NContentLink,
				"likes":        p.Likes,
				"caption":      p.Captions,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
	})

	r.GET("/api/skills", func(c *gin.Context) {
		skills, err := repo.Skills(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		out := make([]gin.H, 0, len(skills))
		for i, s := range skills {
			out = append(out, gin.H{
				"skillId":      i + 1,
				"sContentLink": s.SContentLink,
				"likes":        0,
				"duration":     s.Duration,
				"caption":      s.Captions,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
	})

	r.GET("/api/ventures", func(c *gin.Context) {
		ventures, err := repo.Ventures(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, dev)
			return
		}
		out := make([]gin.H, 0, len(ventures))
		for i, v := range ventures {
			// ventures keep the plural "captions" key on the wire
			out = append(out, gin.H{
				"ventureId":    i + 1,
				"vContentLink": v.VContentLink,
				"likes":        0,
				"duration":     v.Duration,
				"captions":     v.Captions,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
	})

	r.GET("/api/about", func(c *gin.Context) {
		doc, err := aboutSvc.Get(c.Request.Context())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				respondError(c, http.StatusNotFound, "About information not found", dev)
				return
			}
			respondStoreError(c, err, dev)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
	})
}
