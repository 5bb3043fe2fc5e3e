package service

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/redis"
	"Clipstream/internal/pkg/security"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, cred *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, tokenString string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register 注册：密码哈希由 security 包负责，邮箱唯一性由索引兜底
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	hash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    regDTO.Email,
		Password: hash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "userID", user.ID)

	return &dto.UserDTO{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: &user.CreatedAt,
	}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, cred *dto.CredentialDTO) (*dto.TokenDTO, error) {
	if cred.Email == "" || cred.Password == "" {
		return nil, ErrMissingLoginCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(cred.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{Token: token}, nil
}

// Logout 将 Token 签名拉黑到过期为止
func (s *UserServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, signature, "1", security.JWTExpirationTime)
}
