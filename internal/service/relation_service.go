package service

import (
	"weibo_backend/internal/model"
	"weibo_backend/internal/repository"
	"weibo_backend/internal/util"
)

// RelationService 关注关系
type RelationService struct {
	FollowRepo *repository.FollowRepository
	UserRepo   *repository.UserRepository
}

func NewRelationService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *RelationService {
	return &RelationService{
		FollowRepo: followRepo,
		UserRepo:   userRepo,
	}
}

// Follow 关注。被关注者必须存在，不允许关注自己。重复关注幂等。
func (s *RelationService) Follow(userID, followID uint) error {
	if userID == followID {
		return util.ErrFollowSelf
	}
	if _, err := s.UserRepo.FindByID(followID); err != nil {
		return err
	}
	return s.FollowRepo.Follow(userID, followID)
}

// Unfollow 取消关注，从未关注过时是空操作
func (s *RelationService) Unfollow(userID, followID uint) error {
	return s.FollowRepo.Unfollow(userID, followID)
}

func (s *RelationService) IsFollowing(userID, followID uint) (bool, error) {
	return s.FollowRepo.IsFollowing(userID, followID)
}

func (s *RelationService) Following(userID uint) ([]uint, error) {
	return s.FollowRepo.FolloweeIDs(userID)
}

// Fans 粉丝列表，按关注关系取出用户对象
func (s *RelationService) Fans(userID uint) ([]model.User, error) {
	ids, err := s.FollowRepo.FollowerIDs(userID)
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	fans := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			fans = append(fans, u)
		}
	}
	return fans, nil
}
