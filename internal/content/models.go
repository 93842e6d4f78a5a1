package content

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vibefolio/backend/internal/apperrors"
)

// The four content kinds. Field names match the wire/bson names the frontend
// already depends on (aContentLink etc.), so the stored documents stay
// byte-compatible with existing data.

type Story struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	StoryID      int                `json:"storyId" bson:"storyId"`
	AContentLink string             `json:"aContentLink" bson:"aContentLink"`
	Likes        int                `json:"likes" bson:"likes"`
	Duration     int                `json:"duration" bson:"duration"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Post struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PostID       int                `json:"postId" bson:"postId"`
	NContentLink string             `json:"nContentLink" bson:"nContentLink"`
	Likes        int                `json:"likes" bson:"likes"`
	Captions     string             `json:"captions" bson:"captions"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Skill struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SkillID      int                `json:"skillId" bson:"skillId"`
	SContentLink string             `json:"sContentLink" bson:"sContentLink"`
	Captions     string             `json:"captions" bson:"captions"`
	// Duration is in seconds and must be at least 1.
	Duration  int       `json:"duration" bson:"duration"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Venture struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VentureID    int                `json:"ventureId" bson:"ventureId"`
	VContentLink string             `json:"vContentLink" bson:"vContentLink"`
	Duration     int                `json:"duration" bson:"duration"`
	Captions     string             `json:"captions" bson:"captions"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const maxLinkLen = 255

func (s *Story) Validate() error {
	return validateLink("aContentLink", s.AContentLink, false)
}

func (p *Post) Validate() error {
	if err := validateLink("nContentLink", p.NContentLink, false); err != nil {
		return err
	}
	return validateCaption(p.Captions, 255)
}

func (s *Skill) Validate() error {
	if err := validateLink("sContentLink", s.SContentLink, true); err != nil {
		return err
	}
	if err := validateCaption(s.Captions, 255); err != nil {
		return err
	}
	return validateDuration(s.Duration)
}

func (v *Venture) Validate() error {
	if err := validateLink("vContentLink", v.VContentLink, true); err != nil {
		return err
	}
	if err := validateCaption(v.Captions, 500); err != nil {
		return err
	}
	return validateDuration(v.Duration)
}

func validateLink(field, link string, requireHTTP bool) error {
	if link == "" {
		return apperrors.Validation(field, field+" is required")
	}
	if len(link) > maxLinkLen {
		return apperrors.Validation(field, field+" must be at most 255 characters")
	}
	if requireHTTP && !strings.HasPrefix(link, "http") {
		return apperrors.Validation(field, "Content link must be a valid URL")
	}
	return nil
}

func validateCaption(caption string, max int) error {
	if len(caption) > max {
		return apperrors.Validation("captions", "captions is too long")
	}
	return nil
}

func validateDuration(d int) error {
	if d < 1 {
		return apperrors.Validation("duration", "duration must be at least 1")
	}
	return nil
}
