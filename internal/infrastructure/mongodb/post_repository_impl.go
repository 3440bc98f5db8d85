package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
)

// Posts carry a service-assigned UUID instead of an ObjectID, so the stored
// shape maps straight onto the entity.
type postDoc struct {
	ID            string        `bson:"_id"`
	UserID        string        `bson:"user_id"`
	UserName      string        `bson:"user_name"`
	Type          string        `bson:"type"`
	Title         string        `bson:"title,omitempty"`
	Content       string        `bson:"content"`
	ImageURL      string        `bson:"image_url,omitempty"`
	Tags          []string      `bson:"tags,omitempty"`
	IsPublic      bool          `bson:"is_public"`
	LikesCount    int           `bson:"likes_count"`
	CommentsCount int           `bson:"comments_count"`
	CreatedAt     bson.DateTime `bson:"created_at"`
}

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

func (r *PostRepository) Insert(ctx context.Context, p *entity.Post) error {
	doc := postDoc{
		ID:            p.ID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		Type:          p.Type,
		Title:         p.Title,
		Content:       p.Content,
		ImageURL:      p.ImageURL,
		Tags:          p.Tags,
		IsPublic:      p.IsPublic,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     bson.NewDateTimeFromTime(p.CreatedAt),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *PostRepository) List(ctx context.Context, limit int64) ([]entity.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	posts := make([]entity.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, entity.Post{
			ID:            d.ID,
			UserID:        d.UserID,
			UserName:      d.UserName,
			Type:          d.Type,
			Title:         d.Title,
			Content:       d.Content,
			ImageURL:      d.ImageURL,
			Tags:          d.Tags,
			IsPublic:      d.IsPublic,
			LikesCount:    d.LikesCount,
			CommentsCount: d.CommentsCount,
			CreatedAt:     d.CreatedAt.Time(),
		})
	}
	return posts, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
