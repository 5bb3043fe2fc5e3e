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
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddFollow(ctx context.Context, followerID, followingID string) error
	RemoveFollow(ctx context.Context, followerID, followingID string) error
	CountUsers(ctx context.Context) (int64, error)
}

type UserRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &UserRepoImpl{col: db.Collection(mongoinit.UserCollection)}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}
	_, err := s.col.InsertOne(ctx, user)
	return err
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddFollow 写入关注关系的两侧
// 两次 $addToSet 各自幂等，中途失败时重放 Follow 即可补齐，不需要跨文档事务
func (s *UserRepoImpl) AddFollow(ctx context.Context, followerID, followingID string) error {
	_, err := s.col.UpdateByID(ctx, followerID, bson.M{
		"$addToSet": bson.M{"following": followingID},
	})
	if err != nil {
		return err
	}

	_, err = s.col.UpdateByID(ctx, followingID, bson.M{
		"$addToSet": bson.M{"followers": followerID},
	})
	return err
}

// RemoveFollow 对称的逆操作，同样幂等
func (s *UserRepoImpl) RemoveFollow(ctx context.Context, followerID, followingID string) error {
	_, err := s.col.UpdateByID(ctx, followerID, bson.M{
		"$pull": bson.M{"following": followingID},
	})
	if err != nil {
		return err
	}

	_, err = s.col.UpdateByID(ctx, followingID, bson.M{
		"$pull": bson.M{"followers": followerID},
	})
	return err
}

func (s *UserRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
