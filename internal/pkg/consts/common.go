package consts

const (
	// FeedPageSize 视频流固定分页大小
	FeedPageSize = 5
)

const (
	VerdictSafe    = "SAFE"
	VerdictAbusive = "ABUSIVE"
)

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)
