package content

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by unit tests. It applies
// the same validation and id-assignment rules as the Mongo implementation.
type MemoryRepository struct {
	mu       sync.RWMutex
	stories  []Story
	posts    []Post
	skills   []Skill
	ventures []Venture
	seq      map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{seq: make(map[string]int)}
}

func (m *MemoryRepository) next(name string, current int) int {
	if m.seq[name] < current {
		m.seq[name] = current
	}
	m.seq[name]++
	return m.seq[name]
}

func (m *MemoryRepository) CreateStory(ctx context.Context, s *Story) (*Story, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.StoryID == 0 {
		max := 0
		for _, e := range m.stories {
			if e.StoryID > max {
				max = e.StoryID
			}
		}
		s.StoryID = m.next("stories", max)
	}
	stamp(&s.CreatedAt, &s.UpdatedAt)
	m.stories = append(m.stories, *s)
	return s, nil
}

func (m *MemoryRepository) CreatePost(ctx context.Context, p *Post) (*Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.PostID == 0 {
		max := 0
		for _, e := range m.posts {
			if e.PostID > max {
				max = e.PostID
			}
		}
		p.PostID = m.next("posts", max)
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	m.posts = append(m.posts, *p)
	return p, nil
}

func (m *MemoryRepository) CreateSkill(ctx context.Context, s *Skill) (*Skill, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.SkillID == 0 {
		max := 0
		for _, e := range m.skills {
			if e.SkillID > max {
				max = e.SkillID
			}
		}
		s.SkillID = m.next("skills", max)
	}
	stamp(&s.CreatedAt, &s.UpdatedAt)
	m.skills = append(m.skills, *s)
	return s, nil
}

func (m *MemoryRepository) CreateVenture(ctx context.Context, v *Venture) (*Venture, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v.VentureID == 0 {
		max := 0
		for _, e := range m.ventures {
			if e.VentureID > max {
				max = e.VentureID
			}
		}
		v.VentureID = m.next("ventures", max)
	}
	stamp(&v.CreatedAt, &v.UpdatedAt)
	m.ventures = append(m.ventures, *v)
	return v, nil
}

func (m *MemoryRepository) Stories(ctx context.Context) ([]Story, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Story(nil), m.stories...), nil
}

func (m *MemoryRepository) Posts(ctx context.Context) ([]Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Post(nil), m.posts...), nil
}

func (m *MemoryRepository) Skills(ctx context.Context) ([]Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Skill(nil), m.skills...), nil
}

func (m *MemoryRepository) Ventures(ctx context.Context) ([]Venture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Venture(nil), m.ventures...), nil
}
