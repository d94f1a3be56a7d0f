package repository

import (
	"weibo_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

// FindByWeibo 取出一条微博的全部评论，时间降序
func (r *CommentRepository) FindByWeibo(weiboID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("weibo_id = ?", weiboID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}
