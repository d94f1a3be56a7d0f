package service

import (
	"errors"
	"weibo_backend/internal/config"
	"weibo_backend/internal/model"
	"weibo_backend/internal/repository"
	"weibo_backend/internal/util"
	"weibo_backend/pkg/security"

	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register 注册。昵称全局唯一，密码只存摘要。
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByNickname(user.Nickname)
	if err == nil {
		return util.ErrNicknameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user.Password = security.HashPassword(user.Password)
	return s.UserRepo.Create(user)
}

// Login 校验昵称和密码，成功时签发 JWT
func (s *AuthService) Login(nickname, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByNickname(nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrWrongCredentials
		}
		return "", nil, err
	}

	if !security.VerifyPassword(password, user.Password) {
		return "", nil, util.ErrWrongCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
