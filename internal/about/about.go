package about

import (
	"regexp"
	"time"

	"github.com/vibefolio/backend/internal/apperrors"
)

// DocumentKey is the fixed _id of the single About document. Storing the
// singleton under a well-known key removes the old "whichever document the
// empty filter happens to match" ambiguity.
const DocumentKey = "about"

// About is the site owner's profile. Exactly one document exists.
type About struct {
	ID        string            `json:"_id" bson:"_id"`
	Username  string            `json:"username" bson:"username"`
	Bio       string            `json:"bio" bson:"bio"`
	Links     map[string]string `json:"links" bson:"links"`
	Pfp       string            `json:"pfp" bson:"pfp"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// linkPattern matches anywhere in the value, same as the original store rule.
var linkPattern = regexp.MustCompile(`https?://\S+`)

// Defaults returns the hard-coded baseline record every upsert starts from.
func Defaults() About {
	return About{
		ID:       DocumentKey,
		Username: "John Doe",
		Bio:      "Default bio - update me",
		Links: map[string]string{
			"website": "https://example.com",
			"github":  "https://github.com",
		},
		Pfp: "/default-pfp.jpg",
	}
}

func (a *About) Validate() error {
	if a.Username == "" {
		return apperrors.Validation("username", "username is required")
	}
	if len(a.Username) > 255 {
		return apperrors.Validation("username", "username must be at most 255 characters")
	}
	if a.Bio == "" {
		return apperrors.Validation("bio", "bio is required")
	}
	if len(a.Bio) > 255 {
		return apperrors.Validation("bio", "bio must be at most 255 characters")
	}
	if a.Pfp == "" {
		return apperrors.Validation("pfp", "pfp is required")
	}
	if len(a.Pfp) > 255 {
		return apperrors.Validation("pfp", "pfp must be at most 255 characters")
	}
	for _, url := range a.Links {
		if !linkPattern.MatchString(url) {
			return apperrors.Validation("links", "All links must be valid URLs")
		}
	}
	return nil
}
