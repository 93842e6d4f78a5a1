package content

import (
	"context"

	"github.com/vibefolio/backend/internal/apperrors"
)

// Content kind discriminators accepted by the upload endpoint. "project" maps
// to the venture collection.
const (
	TypeStories = "stories"
	TypePost    = "post"
	TypeSkill   = "skill"
	TypeProject = "project"
)

// Submission is a normalized upload payload: one discriminator plus the union
// of fields across the four kinds.
type Submission struct {
	Type         string
	AContentLink string
	NContentLink string
	SContentLink string
	VContentLink string
	Caption      string
	Duration     int
}

// ParseSubmission normalizes a raw JSON body into a Submission. Clients have
// historically sent both camelCase and all-lowercase field names, and both
// "caption" and "captions"; all aliases are accepted.
func ParseSubmission(body map[string]interface{}) Submission {
	return Submission{
		Type:         asString(body["type"]),
		AContentLink: firstString(body, "acontentlink", "aContentLink"),
		NContentLink: firstString(body, "ncontentlink", "nContentLink"),
		SContentLink: firstString(body, "scontentlink", "sContentLink"),
		VContentLink: firstString(body, "vcontentlink", "vContentLink"),
		Caption:      firstString(body, "caption", "captions"),
		Duration:     asInt(body["duration"]),
	}
}

// Service holds the content ingestion logic shared by the upload handler.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Ingest validates the submission for its kind, fills defaults for optional
// fields, and persists the record. The returned value is the stored document
// including its assigned id.
func (s *Service) Ingest(ctx context.Context, sub Submission) (interface{}, error) {
	switch sub.Type {
	case TypeStories:
		if sub.AContentLink == "" {
			return nil, apperrors.Validation("aContentLink", "Media URL is required for stories")
		}
		return s.repo.CreateStory(ctx, &Story{
			AContentLink: sub.AContentLink,
			Duration:     sub.Duration,
		})
	case TypePost:
		if sub.NContentLink == "" {
			return nil, apperrors.Validation("nContentLink", "Media URL is required for posts")
		}
		return s.repo.CreatePost(ctx, &Post{
			NContentLink: sub.NContentLink,
			Captions:     sub.Caption,
		})
	case TypeSkill:
		if sub.SContentLink == "" {
			return nil, apperrors.Validation("sContentLink", "Media URL is required for skills")
		}
		return s.repo.CreateSkill(ctx, &Skill{
			SContentLink: sub.SContentLink,
			Captions:     sub.Caption,
			Duration:     sub.Duration,
		})
	case TypeProject:
		if sub.VContentLink == "" {
			return nil, apperrors.Validation("vContentLink", "Media URL is required for projects")
		}
		return s.repo.CreateVenture(ctx, &Venture{
			VContentLink: sub.VContentLink,
			Captions:     sub.Caption,
			Duration:     sub.Duration,
		})
	default:
		return nil, apperrors.Validation("type", "Invalid content type")
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func firstString(body map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}
