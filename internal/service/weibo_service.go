package service

import (
	"weibo_backend/internal/model"
	"weibo_backend/internal/repository"
	"weibo_backend/internal/util"
)

// WeiboService 发布：微博、评论、回复
type WeiboService struct {
	WeiboRepo   *repository.WeiboRepository
	CommentRepo *repository.CommentRepository
	UserRepo    *repository.UserRepository
}

func NewWeiboService(weiboRepo *repository.WeiboRepository, commentRepo *repository.CommentRepository, userRepo *repository.UserRepository) *WeiboService {
	return &WeiboService{
		WeiboRepo:   weiboRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
	}
}

func (s *WeiboService) Post(userID uint, content string) (*model.Weibo, error) {
	weibo := &model.Weibo{UserID: userID, Content: content}
	if err := s.WeiboRepo.Create(weibo); err != nil {
		return nil, err
	}
	return weibo, nil
}

// Comment 一级评论，ParentID 置 0
func (s *WeiboService) Comment(userID, weiboID uint, content string) (*model.Comment, error) {
	if _, err := s.WeiboRepo.FindByID(weiboID); err != nil {
		return nil, err
	}

	comment := &model.Comment{UserID: userID, WeiboID: weiboID, Content: content}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Reply 回复评论。被回复的评论必须存在且属于同一条微博。
func (s *WeiboService) Reply(userID, weiboID, parentID uint, content string) (*model.Comment, error) {
	parent, err := s.CommentRepo.FindByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent.WeiboID != weiboID {
		return nil, util.ErrCommentMismatch
	}

	comment := &model.Comment{UserID: userID, WeiboID: weiboID, ParentID: parentID, Content: content}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyContext 回复页所需数据：被回复的评论及其作者
func (s *WeiboService) ReplyContext(commentID uint) (*model.Comment, *model.User, error) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		return nil, nil, err
	}

	author, err := s.UserRepo.FindByID(comment.UserID)
	if err != nil {
		return nil, nil, err
	}
	return comment, author, nil
}
