package service

import (
	"weibo_backend/internal/repository"
)

// EngagementService 点赞。与关注同构：翻转 status 而不删行。
type EngagementService struct {
	LikeRepo  *repository.LikeRepository
	WeiboRepo *repository.WeiboRepository
}

func NewEngagementService(likeRepo *repository.LikeRepository, weiboRepo *repository.WeiboRepository) *EngagementService {
	return &EngagementService{
		LikeRepo:  likeRepo,
		WeiboRepo: weiboRepo,
	}
}

// Like 点赞。微博必须存在，重复点赞幂等。
func (s *EngagementService) Like(userID, weiboID uint) error {
	if _, err := s.WeiboRepo.FindByID(weiboID); err != nil {
		return err
	}
	return s.LikeRepo.Like(weiboID, userID)
}

// Unlike 取消点赞，从未赞过时是空操作
func (s *EngagementService) Unlike(userID, weiboID uint) error {
	return s.LikeRepo.Unlike(weiboID, userID)
}

func (s *EngagementService) IsLiked(userID, weiboID uint) (bool, error) {
	return s.LikeRepo.IsLiked(weiboID, userID)
}

func (s *EngagementService) CountLikes(weiboID uint) (int64, error) {
	return s.LikeRepo.CountByWeibo(weiboID)
}

func (s *EngagementService) CountLikesMany(weiboIDs []uint) (map[uint]int64, error) {
	return s.LikeRepo.CountByWeibos(weiboIDs)
}
