package content

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository against the shared "details" database.
//
// Ids are taken from a per-collection counter document in "counters" instead
// of the historical max-scan, so two concurrent creations can no longer race
// on the same "next id". The externally visible sequence (1, 2, 3, ... per
// collection) is unchanged.
type MongoRepository struct {
	stories  *mongo.Collection
	posts    *mongo.Collection
	skills   *mongo.Collection
	ventures *mongo.Collection
	counters *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		stories:  db.Collection("stories"),
		posts:    db.Collection("posts"),
		skills:   db.Collection("skills"),
		ventures: db.Collection("ventures"),
		counters: db.Collection("counters"),
	}
}

type counter struct {
	Name string `bson:"_id"`
	Seq  int    `bson:"seq"`
}

// nextID atomically increments the counter for the named collection and
// returns the new value. On first use the counter is seeded from the current
// maximum id in the collection, so data created before the counter existed
// continues its sequence; an empty collection starts at 1.
func (r *MongoRepository) nextID(ctx context.Context, name string, col *mongo.Collection, idField string) (int, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c counter
	err := r.counters.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&c)
	if err == nil {
		return c.Seq, nil
	}
	if err != mongo.ErrNoDocuments {
		return 0, err
	}

	max, err := r.maxID(ctx, col, idField)
	if err != nil {
		return 0, err
	}
	if _, err := r.counters.InsertOne(ctx, counter{Name: name, Seq: max + 1}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// another writer seeded the counter first; take the next value
			return r.nextID(ctx, name, col, idField)
		}
		return 0, err
	}
	return max + 1, nil
}

func (r *MongoRepository) maxID(ctx context.Context, col *mongo.Collection, idField string) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: idField, Value: -1}}).
		SetProjection(bson.M{idField: 1})
	var doc bson.M
	err := col.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	switch n := doc[idField].(type) {
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, nil
}

func (r *MongoRepository) CreateStory(ctx context.Context, s *Story) (*Story, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.StoryID == 0 {
		id, err := r.nextID(ctx, "stories", r.stories, "storyId")
		if err != nil {
			return nil, err
		}
		s.StoryID = id
	}
	stamp(&s.CreatedAt, &s.UpdatedAt)
	res, err := r.stories.InsertOne(ctx, s)
	if err != nil {
		return nil, err
	}
	setObjectID(&s.ID, res)
	return s, nil
}

func (r *MongoRepository) CreatePost(ctx context.Context, p *Post) (*Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.PostID == 0 {
		id, err := r.nextID(ctx, "posts", r.posts, "postId")
		if err != nil {
			return nil, err
		}
		p.PostID = id
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	res, err := r.posts.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	setObjectID(&p.ID, res)
	return p, nil
}

func (r *MongoRepository) CreateSkill(ctx context.Context, s *Skill) (*Skill, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.SkillID == 0 {
		id, err := r.nextID(ctx, "skills", r.skills, "skillId")
		if err != nil {
			return nil, err
		}
		s.SkillID = id
	}
	stamp(&s.CreatedAt, &s.UpdatedAt)
	res, err := r.skills.InsertOne(ctx, s)
	if err != nil {
		return nil, err
	}
	setObjectID(&s.ID, res)
	return s, nil
}

func (r *MongoRepository) CreateVenture(ctx context.Context, v *Venture) (*Venture, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if v.VentureID == 0 {
		id, err := r.nextID(ctx, "ventures", r.ventures, "ventureId")
		if err != nil {
			return nil, err
		}
		v.VentureID = id
	}
	stamp(&v.CreatedAt, &v.UpdatedAt)
	res, err := r.ventures.InsertOne(ctx, v)
	if err != nil {
		return nil, err
	}
	setObjectID(&v.ID, res)
	return v, nil
}

func (r *MongoRepository) Stories(ctx context.Context) ([]Story, error) {
	var out []Story
	if err := r.findAll(ctx, r.stories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) Posts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := r.findAll(ctx, r.posts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) Skills(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := r.findAll(ctx, r.skills, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) Ventures(ctx context.Context) ([]Venture, error) {
	var out []Venture
	if err := r.findAll(ctx, r.ventures, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) findAll(ctx context.Context, col *mongo.Collection, out interface{}) error {
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func setObjectID(dst *primitive.ObjectID, res *mongo.InsertOneResult) {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		*dst = oid
	}
}
