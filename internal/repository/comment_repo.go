package repository

import (
	"Clipstream/internal/model"
	mongoinit "Clipstream/internal/pkg/mongo"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListByVideo(ctx context.Context, videoID string, skip, limit int64) ([]*model.Comment, error)
}

type CommentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &CommentRepoImpl{col: db.Collection(mongoinit.CommentCollection)}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = primitive.NewObjectID().Hex()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	_, err := s.col.InsertOne(ctx, comment)
	return err
}

// ListByVideo 最新评论在前
func (s *CommentRepoImpl) ListByVideo(ctx context.Context, videoID string, skip, limit int64) ([]*model.Comment, error) {
	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{"video_id": videoID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	comments := make([]*model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
