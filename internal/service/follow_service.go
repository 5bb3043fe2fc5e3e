package service

import (
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/redis"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type FollowService interface {
	Follow(ctx context.Context, actorID, targetID string) error
	Unfollow(ctx context.Context, actorID, targetID string) error
	GetFollowerCount(ctx context.Context, userID string) (int64, error)
	GetFollowingCount(ctx context.Context, userID string) (int64, error)
}

type FollowServiceImpl struct {
	userRepo repository.UserRepo
}

func NewFollowService(userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{userRepo: userRepo}
}

// Follow 关注
// 两侧写入各自幂等（$addToSet），重复关注是静默 no-op；
// 两写之间崩溃后重放本操作即可修复，不依赖跨文档事务
func (s *FollowServiceImpl) Follow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrUserFollowSelf
	}

	if err := s.ensureBothExist(ctx, actorID, targetID); err != nil {
		return err
	}

	if err := s.userRepo.AddFollow(ctx, actorID, targetID); err != nil {
		return err
	}

	log.InfoContext(ctx, "user followed", "actorID", actorID, "targetID", targetID)
	return nil
}

// Unfollow 取关，对称的幂等逆操作
func (s *FollowServiceImpl) Unfollow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrUserFollowSelf
	}

	if err := s.ensureBothExist(ctx, actorID, targetID); err != nil {
		return err
	}

	if err := s.userRepo.RemoveFollow(ctx, actorID, targetID); err != nil {
		return err
	}

	log.InfoContext(ctx, "user unfollowed", "actorID", actorID, "targetID", targetID)
	return nil
}

func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, userID string) (int64, error) {
	return s.getCountCommon(ctx, userID, consts.UserFollowerCountKey, true)
}

func (s *FollowServiceImpl) GetFollowingCount(ctx context.Context, userID string) (int64, error) {
	return s.getCountCommon(ctx, userID, consts.UserFollowingCountKey, false)
}

func (s *FollowServiceImpl) ensureBothExist(ctx context.Context, actorID, targetID string) error {
	actor, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return ErrUserNotFound
	}

	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	return nil
}

// getCountCommon 旁路缓存读取粉丝/关注数，1 小时过期
func (s *FollowServiceImpl) getCountCommon(ctx context.Context, userID string, keyPrefix string, isFollowerCount bool) (int64, error) {
	key := keyPrefix + userID

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	var count int64
	if isFollowerCount {
		count = int64(len(user.Followers))
	} else {
		count = int64(len(user.Following))
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}
