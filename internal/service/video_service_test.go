package service

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/kafka"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoServiceForTest(videoRepo *fakeVideoRepo, userRepo *fakeUserRepo, text *fakeTextService, producer *fakeEventProducer) VideoService {
	return NewVideoService(videoRepo, userRepo, text, producer)
}

func TestUpload_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	alice := userRepo.addUser("alice")
	videoRepo := newFakeVideoRepo()
	producer := newFakeEventProducer()

	svc := newVideoServiceForTest(videoRepo, userRepo, &fakeTextService{}, producer)

	video, err := svc.Upload(context.Background(), alice.ID, &dto.UploadVideoDTO{
		URL:         "https://media.example.com/cat.mp4",
		Description: "一只猫在弹钢琴",
	})
	require.NoError(t, err)

	assert.Equal(t, "caption: 一只猫在弹钢琴", video.Caption)
	assert.Equal(t, "#tag1 #tag2", video.Hashtags)
	assert.Equal(t, alice.ID, video.UserID)
	assert.Empty(t, video.Likes)

	count, _ := videoRepo.CountVideos(context.Background())
	assert.EqualValues(t, 1, count)
}

func TestUpload_EnrichmentFailureCreatesNothing(t *testing.T) {
	userRepo := newFakeUserRepo()
	alice := userRepo.addUser("alice")

	cases := []struct {
		name string
		text *fakeTextService
	}{
		{"caption failed", &fakeTextService{captionErr: errors.New("llm down")}},
		{"hashtag failed", &fakeTextService{hashtagErr: errors.New("llm down")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videoRepo := newFakeVideoRepo()
			svc := newVideoServiceForTest(videoRepo, userRepo, tc.text, newFakeEventProducer())

			_, err := svc.Upload(context.Background(), alice.ID, &dto.UploadVideoDTO{
				URL:         "https://media.example.com/cat.mp4",
				Description: "desc",
			})
			assert.ErrorIs(t, err, ErrEnrichmentFailed)

			count, _ := videoRepo.CountVideos(context.Background())
			assert.EqualValues(t, 0, count)
		})
	}
}

func TestUpload_UnknownUserRejected(t *testing.T) {
	svc := newVideoServiceForTest(newFakeVideoRepo(), newFakeUserRepo(), &fakeTextService{}, newFakeEventProducer())

	_, err := svc.Upload(context.Background(), "ghost", &dto.UploadVideoDTO{
		URL:         "https://media.example.com/cat.mp4",
		Description: "desc",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleLike_Parity(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	require.NoError(t, videoRepo.CreateVideo(context.Background(), &model.Video{ID: "v1", UserID: "alice", URL: "u"}))

	producer := newFakeEventProducer()
	svc := newVideoServiceForTest(videoRepo, newFakeUserRepo(), &fakeTextService{}, producer)

	// 奇数次翻转后点赞
	video, err := svc.ToggleLike(context.Background(), "v1", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, video.Likes)
	assert.Equal(t, 1, video.LikeCount)

	// 偶数次翻转后回到未点赞
	video, err = svc.ToggleLike(context.Background(), "v1", "bob")
	require.NoError(t, err)
	assert.Empty(t, video.Likes)
	assert.Equal(t, 0, video.LikeCount)

	events := producer.published()
	require.Len(t, events, 2)
	assert.Equal(t, kafka.EventTypeLike, events[0].Type)
	assert.Equal(t, kafka.EventTypeUnlike, events[1].Type)
}

func TestToggleLike_UnknownVideo(t *testing.T) {
	svc := newVideoServiceForTest(newFakeVideoRepo(), newFakeUserRepo(), &fakeTextService{}, newFakeEventProducer())

	_, err := svc.ToggleLike(context.Background(), "missing", "bob")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestGetFeed_Paging(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	base := time.Now()
	for i := 1; i <= 12; i++ {
		require.NoError(t, videoRepo.CreateVideo(context.Background(), &model.Video{
			ID:        fmt.Sprintf("v%03d", i),
			UserID:    "alice",
			URL:       fmt.Sprintf("https://media.example.com/%d.mp4", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	svc := newVideoServiceForTest(videoRepo, newFakeUserRepo(), &fakeTextService{}, newFakeEventProducer())

	// 第一页：最新的 5 条
	page1, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page1, 5)
	assert.Equal(t, "v012", page1[0].ID)
	assert.Equal(t, "v008", page1[4].ID)

	// 第三页：只剩 2 条
	page3, err := svc.GetFeed(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, page3, 2)
	assert.Equal(t, "v002", page3[0].ID)
	assert.Equal(t, "v001", page3[1].ID)

	// 超出范围：空页而非错误
	page4, err := svc.GetFeed(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestGetFeed_InvalidPage(t *testing.T) {
	svc := newVideoServiceForTest(newFakeVideoRepo(), newFakeUserRepo(), &fakeTextService{}, newFakeEventProducer())

	for _, page := range []int{0, -1} {
		_, err := svc.GetFeed(context.Background(), page)
		assert.ErrorIs(t, err, ErrParamInvalid)
	}
}
