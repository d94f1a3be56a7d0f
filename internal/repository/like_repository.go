package repository

import (
	"weibo_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// WeiboLikeCount 热门榜条目：微博 ID 及其点赞数
type WeiboLikeCount struct {
	WeiboID uint  `json:"weiboId"`
	Count   int64 `json:"count"`
}

// Like 点赞。联合主键冲突说明该用户赞过（或取消过），改为把 status 翻回 true，
// 幂等：重复点赞不报错，也不会产生第二行。
func (r *LikeRepository) Like(weiboID, userID uint) error {
	like := &model.Like{WeiboID: weiboID, UserID: userID, Status: true}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "weibo_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": true}),
	}).Create(like).Error
}

// Unlike 取消点赞。没有记录时是空操作，不算错误。
func (r *LikeRepository) Unlike(weiboID, userID uint) error {
	return r.DB.Model(&model.Like{}).
		Where("weibo_id = ? AND user_id = ?", weiboID, userID).
		Update("status", false).Error
}

func (r *LikeRepository) IsLiked(weiboID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("weibo_id = ? AND user_id = ? AND status = ?", weiboID, userID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepository) CountByWeibo(weiboID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("weibo_id = ? AND status = ?", weiboID, true).
		Count(&count).Error
	return count, err
}

// CountByWeibos 批量统计点赞数，一次 group by 取完整页的数量
func (r *LikeRepository) CountByWeibos(weiboIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(weiboIDs))
	if len(weiboIDs) == 0 {
		return counts, nil
	}

	var rows []WeiboLikeCount
	err := r.DB.Model(&model.Like{}).
		Select("weibo_id, COUNT(*) AS count").
		Where("weibo_id IN ? AND status = ?", weiboIDs, true).
		Group("weibo_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.WeiboID] = row.Count
	}
	return counts, nil
}

// TopWeibos 按点赞数降序取前 limit 条。点赞数相同按微博 ID 升序，保证榜单稳定。
func (r *LikeRepository) TopWeibos(limit int) ([]WeiboLikeCount, error) {
	var rows []WeiboLikeCount
	err := r.DB.Model(&model.Like{}).
		Select("weibo_id, COUNT(*) AS count").
		Where("status = ?", true).
		Group("weibo_id").
		Order("count DESC, weibo_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
