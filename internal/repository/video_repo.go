package repository

import (
	"Clipstream/internal/model"
	mongoinit "Clipstream/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoByID(ctx context.Context, id string) (*model.Video, error)
	ToggleLike(ctx context.Context, videoID, userID string) (*model.Video, error)
	ListFeed(ctx context.Context, skip, limit int64) ([]*model.Video, error)
	CountVideos(ctx context.Context) (int64, error)
}

type VideoRepoImpl struct {
	col *mongo.Collection
}

func NewVideoRepo(db *mongo.Database) VideoRepo {
	return &VideoRepoImpl{col: db.Collection(mongoinit.VideoCollection)}
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.ID == "" {
		video.ID = primitive.NewObjectID().Hex()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	if video.Likes == nil {
		video.Likes = []string{}
	}
	_, err := s.col.InsertOne(ctx, video)
	return err
}

func (s *VideoRepoImpl) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// ToggleLike 点赞翻转
// 用聚合管道更新在单文档内完成读改写，MongoDB 保证其原子性：
// 并发翻转按某个串行顺序生效，不会丢失其他用户的增删
func (s *VideoRepoImpl) ToggleLike(ctx context.Context, videoID, userID string) (*model.Video, error) {
	update := bson.A{
		bson.M{"$set": bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, "$likes"}},
				bson.M{"$setDifference": bson.A{"$likes", bson.A{userID}}},
				bson.M{"$concatArrays": bson.A{"$likes", bson.A{userID}}},
			}},
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video model.Video
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, update, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// ListFeed 按创建时间降序翻页，_id 作为稳定次键保证同刻创建的视频顺序确定
func (s *VideoRepoImpl) ListFeed(ctx context.Context, skip, limit int64) ([]*model.Video, error) {
	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	videos := make([]*model.Video, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoRepoImpl) CountVideos(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
