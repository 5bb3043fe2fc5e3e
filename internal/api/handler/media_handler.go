package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/minio"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	log "log/slog"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// PresignUpload 签发限时直传 URL，客户端自行 PUT 到对象存储
func (s *MediaHandler) PresignUpload(c *gin.Context) {
	var req dto.PresignUploadDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := path.Ext(req.FileName)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	uploadURL, err := minio.PresignUploadURL(c.Request.Context(), objectName, presignExpiry)
	if err != nil {
		log.ErrorContext(c, "MinIO presign failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, &dto.PresignUploadResultDTO{
		UploadURL:  uploadURL,
		ObjectName: objectName,
		PublicURL:  minio.GetPublicURL(objectName),
	})
}
