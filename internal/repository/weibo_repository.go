package repository

import (
	"weibo_backend/internal/model"

	"gorm.io/gorm"
)

type WeiboRepository struct {
	DB *gorm.DB
}

func NewWeiboRepository(db *gorm.DB) *WeiboRepository {
	return &WeiboRepository{DB: db}
}

func (r *WeiboRepository) Create(weibo *model.Weibo) error {
	return r.DB.Create(weibo).Error
}

func (r *WeiboRepository) FindByID(id uint) (*model.Weibo, error) {
	var weibo model.Weibo
	err := r.DB.First(&weibo, id).Error
	return &weibo, err
}

func (r *WeiboRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Weibo{}).Count(&total).Error
	return total, err
}

// FindPage 按时间降序取出指定页的微博
func (r *WeiboRepository) FindPage(offset, limit int) ([]model.Weibo, error) {
	var weibos []model.Weibo
	err := r.DB.Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&weibos).Error
	return weibos, err
}

// FindByAuthors 取出指定作者集合的全部微博，时间降序（关注页）
func (r *WeiboRepository) FindByAuthors(authorIDs []uint) ([]model.Weibo, error) {
	var weibos []model.Weibo
	if len(authorIDs) == 0 {
		return weibos, nil
	}
	err := r.DB.Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&weibos).Error
	return weibos, err
}

// FindByIDs 按 ID 批量取微博，整理成字典形式（热门榜内容补全）
func (r *WeiboRepository) FindByIDs(ids []uint) (map[uint]model.Weibo, error) {
	weibos := make(map[uint]model.Weibo, len(ids))
	if len(ids) == 0 {
		return weibos, nil
	}

	var list []model.Weibo
	if err := r.DB.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, w := range list {
		weibos[w.ID] = w
	}
	return weibos, nil
}
