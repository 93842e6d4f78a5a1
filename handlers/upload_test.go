package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vibefolio/backend/internal/about"
	"github.com/vibefolio/backend/internal/content"
	"github.com/vibefolio/backend/internal/emails"
)

func newUploadEngine() (*gin.Engine, *content.MemoryRepository) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	repo := content.NewMemoryRepository()
	RegisterUploadRoutes(g,
		content.NewService(repo),
		about.NewService(about.NewMemoryRepository()),
		emails.NewMemoryRepository(),
		false)
	return g, repo
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestUpload_EmptyBody(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/upload", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Request body cannot be empty", body["error"])

	w = doJSON(g, http.MethodPost, "/api/upload", "{}")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_SkillCreated(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/upload", `{"type":"skill","scontentlink":"http://x/v.mp4","duration":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Content created successfully", body["message"])
	require.Equal(t, "skill", body["type"])

	data := body["data"].(map[string]interface{})
	require.Equal(t, float64(1), data["skillId"])
	require.Equal(t, "http://x/v.mp4", data["sContentLink"])
	require.Equal(t, "", data["captions"])
	require.Equal(t, float64(10), data["duration"])
}

func TestUpload_MissingLink(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/upload", `{"type":"post","caption":"no link"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.Equal(t, "Media URL is required for posts", body["error"])
}

func TestUpload_InvalidType(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/upload", `{"type":"podcast","scontentlink":"http://x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.Equal(t, "Invalid content type", body["error"])
}

func TestUpload_SkillLinkMustBeHTTP(t *testing.T) {
	g, repo := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/upload", `{"type":"skill","scontentlink":"ftp://x/v.mp4","duration":10}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.Equal(t, "Content link must be a valid URL", body["error"])

	skills, err := repo.Skills(context.Background())
	require.NoError(t, err)
	require.Empty(t, skills)
}

func TestUploadAbout(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/uploadabout", `{"username":"jane","bio":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(g, http.MethodPost, "/api/uploadabout", `{"username":"jane","bio":"hi","pfp":"/jane.jpg","links":{"blog":"https://jane.dev"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "About data created/updated successfully", body["message"])
	data := body["data"].(map[string]interface{})
	require.Equal(t, "jane", data["username"])
	links := data["links"].(map[string]interface{})
	require.Equal(t, "https://jane.dev", links["blog"])
}

func TestUploadEmail(t *testing.T) {
	g, _ := newUploadEngine()

	w := doJSON(g, http.MethodPost, "/api/uploademail", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Email is required", decode(t, w)["error"])

	w = doJSON(g, http.MethodPost, "/api/uploademail", `{"email":"A@B.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Equal(t, "Email saved successfully", body["message"])
	data := body["data"].(map[string]interface{})
	require.Equal(t, "a@b.com", data["email"])

	// resubmitting the same address is a conflict, not a second document
	w = doJSON(g, http.MethodPost, "/api/uploademail", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Email already exists", decode(t, w)["error"])
}
