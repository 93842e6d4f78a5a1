package content

import "context"

// Repository defines persistence for the four content collections. Each
// Create assigns the collection-scoped sequential id when the record does not
// carry one yet; a record with an id set keeps it.
type Repository interface {
	CreateStory(ctx context.Context, s *Story) (*Story, error)
	CreatePost(ctx context.Context, p *Post) (*Post, error)
	CreateSkill(ctx context.Context, s *Skill) (*Skill, error)
	CreateVenture(ctx context.Context, v *Venture) (*Venture, error)

	Stories(ctx context.Context) ([]Story, error)
	Posts(ctx context.Context) ([]Post, error)
	Skills(ctx context.Context) ([]Skill, error)
	Ventures(ctx context.Context) ([]Venture, error)
}
