package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserExist               = errors.New("用户已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrUserFollowSelf          = errors.New("用户不能关注自己")
	ErrVideoNotFound           = errors.New("视频不存在")
	ErrCommentRejected         = errors.New("评论包含违规内容，已被拦截")
	ErrModerationUnavailable   = errors.New("内容审核服务暂不可用")
	ErrEnrichmentFailed        = errors.New("视频文案生成失败")
	ErrAssistantUnavailable    = errors.New("智能助手暂不可用")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserExist:               BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrUserFollowSelf:          BadRequest,
	ErrVideoNotFound:           NotFound,
	ErrCommentRejected:         BadRequest,
	ErrModerationUnavailable:   ServiceUnavailable,
	ErrEnrichmentFailed:        ServiceUnavailable,
	ErrAssistantUnavailable:    ServiceUnavailable,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
