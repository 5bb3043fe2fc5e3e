package wire

import (
	"Clipstream/internal/api"
	"Clipstream/internal/api/config"
	"Clipstream/internal/api/handler"
	"Clipstream/internal/job"
	"Clipstream/internal/pkg/cron"
	"Clipstream/internal/pkg/kafka"
	"Clipstream/internal/pkg/llm"
	"Clipstream/internal/repository"
	"Clipstream/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	textService := llm.NewTextService()

	producer, err := kafka.NewEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	userService := service.NewUserService(userRepo)
	followService := service.NewFollowService(userRepo)
	videoService := service.NewVideoService(videoRepo, userRepo, textService, producer)
	commentService := service.NewCommentService(commentRepo, videoRepo, textService, producer)
	chatHub := service.NewChatHub()

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		FollowHandler:  handler.NewFollowHandler(followService),
		VideoHandler:   handler.NewVideoHandler(videoService),
		CommentHandler: handler.NewCommentHandler(commentService),
		MediaHandler:   handler.NewMediaHandler(),
		AgentHandler:   handler.NewAgentHandler(textService),
		WSHandler:      handler.NewWsHandler(chatHub),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	platformMetricJob := job.NewPlatformMetricJob(userRepo, videoRepo)
	cronMgr := cron.NewCronManager(platformMetricJob)

	return &ApplicationContainer{
		Router:       router,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
