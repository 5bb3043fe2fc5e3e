package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/kafka"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// fakeUserRepo 基于内存 map 的用户仓储替身
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (s *fakeUserRepo) addUser(id string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.User{
		ID:        id,
		Email:     id + "@example.com",
		Followers: []string{},
		Following: []string{},
		CreatedAt: time.Now(),
	}
	s.users[id] = u
	return u
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("u%d", len(s.users)+1)
	}
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id], nil
}

func (s *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) AddFollow(_ context.Context, followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actor, ok1 := s.users[followerID]
	target, ok2 := s.users[followingID]
	if !ok1 || !ok2 {
		return errors.New("user missing")
	}
	actor.Following = addToSet(actor.Following, followingID)
	target.Followers = addToSet(target.Followers, followerID)
	return nil
}

func (s *fakeUserRepo) RemoveFollow(_ context.Context, followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actor, ok1 := s.users[followerID]
	target, ok2 := s.users[followingID]
	if !ok1 || !ok2 {
		return errors.New("user missing")
	}
	actor.Following = removeFromSet(actor.Following, followingID)
	target.Followers = removeFromSet(target.Followers, followerID)
	return nil
}

func (s *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func addToSet(set []string, v string) []string {
	for _, x := range set {
		if x == v {
			return set
		}
	}
	return append(set, v)
}

func removeFromSet(set []string, v string) []string {
	out := set[:0]
	for _, x := range set {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// fakeVideoRepo 基于内存的切片仓储替身，翻转逻辑与存储层语义一致
type fakeVideoRepo struct {
	mu     sync.Mutex
	seq    int
	videos []*model.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{}
}

func (s *fakeVideoRepo) CreateVideo(_ context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if video.ID == "" {
		video.ID = fmt.Sprintf("v%03d", s.seq)
	}
	if video.Likes == nil {
		video.Likes = []string{}
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	s.videos = append(s.videos, video)
	return nil
}

func (s *fakeVideoRepo) GetVideoByID(_ context.Context, id string) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (s *fakeVideoRepo) ToggleLike(_ context.Context, videoID, userID string) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID != videoID {
			continue
		}
		found := false
		for _, id := range v.Likes {
			if id == userID {
				found = true
				break
			}
		}
		if found {
			v.Likes = removeFromSet(v.Likes, userID)
		} else {
			v.Likes = append(v.Likes, userID)
		}
		return v, nil
	}
	return nil, nil
}

func (s *fakeVideoRepo) ListFeed(_ context.Context, skip, limit int64) ([]*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := make([]*model.Video, len(s.videos))
	copy(sorted, s.videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if skip >= int64(len(sorted)) {
		return []*model.Video{}, nil
	}
	end := skip + limit
	if end > int64(len(sorted)) {
		end = int64(len(sorted))
	}
	return sorted[skip:end], nil
}

func (s *fakeVideoRepo) CountVideos(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.videos)), nil
}

// fakeCommentRepo 评论仓储替身
type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments []*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (s *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if comment.ID == "" {
		comment.ID = fmt.Sprintf("c%03d", s.seq)
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	s.comments = append(s.comments, comment)
	return nil
}

func (s *fakeCommentRepo) ListByVideo(_ context.Context, videoID string, skip, limit int64) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.VideoID == videoID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	if skip >= int64(len(matched)) {
		return []*model.Comment{}, nil
	}
	end := skip + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end], nil
}

func (s *fakeCommentRepo) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}

// fakeTextService 可注入结果的大模型替身
type fakeTextService struct {
	captionErr  error
	hashtagErr  error
	verdict     string
	classifyErr error
	chatReply   string
	chatErr     error
}

func (s *fakeTextService) GenerateCaption(_ context.Context, description string) (string, error) {
	if s.captionErr != nil {
		return "", s.captionErr
	}
	return "caption: " + description, nil
}

func (s *fakeTextService) GenerateHashtags(_ context.Context, description string) (string, error) {
	if s.hashtagErr != nil {
		return "", s.hashtagErr
	}
	return "#tag1 #tag2", nil
}

func (s *fakeTextService) ClassifyComment(_ context.Context, _ string) (string, error) {
	if s.classifyErr != nil {
		return "", s.classifyErr
	}
	return s.verdict, nil
}

func (s *fakeTextService) Chat(_ context.Context, _ string) (string, error) {
	if s.chatErr != nil {
		return "", s.chatErr
	}
	return s.chatReply, nil
}

// fakeEventProducer 记录发布过的互动事件
type fakeEventProducer struct {
	mu     sync.Mutex
	events []*kafka.EngagementEvent
}

func newFakeEventProducer() *fakeEventProducer {
	return &fakeEventProducer{}
}

func (s *fakeEventProducer) PublishEngagement(_ context.Context, event *kafka.EngagementEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *fakeEventProducer) published() []*kafka.EngagementEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*kafka.EngagementEvent, len(s.events))
	copy(out, s.events)
	return out
}
