package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"weibo_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewFollowRepository(db *gorm.DB, rdb *redis.Client) *FollowRepository {
	return &FollowRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func followeeCacheKey(userID uint) string {
	return fmt.Sprintf("relation:followees:%d", userID)
}

// Follow 关注。联合主键冲突说明关注过（或取消过），status 翻回 true，幂等。
func (r *FollowRepository) Follow(userID, followID uint) error {
	follow := &model.Follow{UserID: userID, FollowID: followID, Status: true}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "follow_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": true}),
	}).Create(follow).Error

	if err == nil && r.Redis != nil {
		// 清除关系缓存
		r.Redis.Del(r.ctx, followeeCacheKey(userID))
	}
	return err
}

// Unfollow 取消关注。没有记录时是空操作，不算错误。
func (r *FollowRepository) Unfollow(userID, followID uint) error {
	err := r.DB.Model(&model.Follow{}).
		Where("user_id = ? AND follow_id = ?", userID, followID).
		Update("status", false).Error

	if err == nil && r.Redis != nil {
		r.Redis.Del(r.ctx, followeeCacheKey(userID))
	}
	return err
}

func (r *FollowRepository) IsFollowing(userID, followID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).
		Where("user_id = ? AND follow_id = ? AND status = ?", userID, followID, true).
		Count(&count).Error
	return count > 0, err
}

// FolloweeIDs 取出关注的人的 ID 列表
func (r *FollowRepository) FolloweeIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Follow{}).
		Where("user_id = ? AND status = ?", userID, true).
		Pluck("follow_id", &ids).Error
	return ids, err
}

// FolloweeIDsCached 关注列表走 Redis 集合缓存，失效时回源数据库
func (r *FollowRepository) FolloweeIDsCached(userID uint) ([]uint, error) {
	if r.Redis == nil {
		return r.FolloweeIDs(userID)
	}

	key := followeeCacheKey(userID)
	cached, err := r.Redis.SMembers(r.ctx, key).Result()
	if err == nil && len(cached) > 0 {
		var ids []uint
		for _, s := range cached {
			id, err := strconv.ParseUint(s, 10, 32)
			if err == nil && id > 0 {
				ids = append(ids, uint(id))
			}
		}
		return ids, nil
	}

	ids, err := r.FolloweeIDs(userID)
	if err == nil && len(ids) > 0 {
		pipe := r.Redis.Pipeline()
		for _, id := range ids {
			pipe.SAdd(r.ctx, key, strconv.FormatUint(uint64(id), 10))
		}
		pipe.Expire(r.ctx, key, 24*time.Hour)
		pipe.Exec(r.ctx)
	} else if err == nil {
		// 防止缓存穿透：存哨兵值并设置短过期时间
		r.Redis.SAdd(r.ctx, key, "0")
		r.Redis.Expire(r.ctx, key, 5*time.Minute)
	}
	return ids, err
}

// FollowerIDs 取出粉丝的 ID 列表
func (r *FollowRepository) FollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Follow{}).
		Where("follow_id = ? AND status = ?", userID, true).
		Pluck("user_id", &ids).Error
	return ids, err
}
