package about

import "context"

// Payload is the upsert request body. Username, bio and pfp are mandatory;
// the handler rejects requests missing any of them before this service runs.
type Payload struct {
	Username string            `json:"username"`
	Bio      string            `json:"bio"`
	Pfp      string            `json:"pfp"`
	Links    map[string]string `json:"links"`
}

// Service implements the create-or-overwrite semantics of the About profile.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// CreateOrOverwrite builds the full record from hard-coded defaults, overlays
// the caller's fields, and applies an explicit links payload last so it wins
// over anything else. The result replaces the stored document wholesale.
func (s *Service) CreateOrOverwrite(ctx context.Context, p Payload) (*About, error) {
	a := Defaults()
	if p.Username != "" {
		a.Username = p.Username
	}
	if p.Bio != "" {
		a.Bio = p.Bio
	}
	if p.Pfp != "" {
		a.Pfp = p.Pfp
	}
	if p.Links != nil {
		a.Links = p.Links
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, &a)
}

// Get returns the stored profile, or apperrors.ErrNotFound if none exists.
func (s *Service) Get(ctx context.Context) (*About, error) {
	return s.repo.Get(ctx)
}
