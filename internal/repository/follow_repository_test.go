package repository

import (
	"testing"
	"weibo_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFollowToggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db, nil)

	a := seedUser(t, db, "阿明")
	b := seedUser(t, db, "阿红")

	// 关注 -> 取消 -> 再关注，自始至终只有一行
	assert.NoError(t, repo.Follow(a.ID, b.ID))
	following, err := repo.IsFollowing(a.ID, b.ID)
	assert.NoError(t, err)
	assert.True(t, following)

	assert.NoError(t, repo.Unfollow(a.ID, b.ID))
	following, err = repo.IsFollowing(a.ID, b.ID)
	assert.NoError(t, err)
	assert.False(t, following)

	assert.NoError(t, repo.Follow(a.ID, b.ID))
	following, err = repo.IsFollowing(a.ID, b.ID)
	assert.NoError(t, err)
	assert.True(t, following)

	var rows []model.Follow
	assert.NoError(t, db.Find(&rows).Error)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Status)
}

func TestFollowIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db, nil)

	a := seedUser(t, db, "u1")
	b := seedUser(t, db, "u2")

	// 重复关注不报错，也不产生第二行
	assert.NoError(t, repo.Follow(a.ID, b.ID))
	assert.NoError(t, repo.Follow(a.ID, b.ID))

	var count int64
	assert.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnfollowWithoutRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db, nil)

	a := seedUser(t, db, "u1")
	b := seedUser(t, db, "u2")

	// 从未关注过，取消关注是空操作
	assert.NoError(t, repo.Unfollow(a.ID, b.ID))

	var count int64
	assert.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFolloweeAndFollowerIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db, nil)

	a := seedUser(t, db, "u1")
	b := seedUser(t, db, "u2")
	c := seedUser(t, db, "u3")

	assert.NoError(t, repo.Follow(a.ID, b.ID))
	assert.NoError(t, repo.Follow(a.ID, c.ID))
	assert.NoError(t, repo.Follow(b.ID, c.ID))
	assert.NoError(t, repo.Unfollow(a.ID, c.ID))

	followees, err := repo.FolloweeIDs(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, followees)

	followers, err := repo.FollowerIDs(c.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, followers)

	// 没有 Redis 时直接回源数据库
	cached, err := repo.FolloweeIDsCached(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, cached)
}
