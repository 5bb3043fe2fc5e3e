package consts

const (
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	VideoLikeCountKey     = "video:like:count:"
	VideoCommentCountKey  = "video:comment:count:"
	PlatformUserCountKey  = "platform:user:count"
	PlatformVideoCountKey = "platform:video:count"
)
