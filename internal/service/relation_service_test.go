package service

import (
	"testing"
	"weibo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFollowSelfRejected(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")

	err := env.relation.Follow(a.ID, a.ID)
	assert.ErrorIs(t, err, util.ErrFollowSelf)
}

func TestFollowMissingUser(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")

	err := env.relation.Follow(a.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFansOrderedByFollowRelation(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")
	c := env.mustRegister(t, "carol")

	assert.NoError(t, env.relation.Follow(b.ID, a.ID))
	assert.NoError(t, env.relation.Follow(c.ID, a.ID))

	fans, err := env.relation.Fans(a.ID)
	assert.NoError(t, err)
	if assert.Len(t, fans, 2) {
		nicknames := []string{fans[0].Nickname, fans[1].Nickname}
		assert.ElementsMatch(t, []string{"bob", "carol"}, nicknames)
	}

	// 取消关注后从粉丝列表消失
	assert.NoError(t, env.relation.Unfollow(b.ID, a.ID))
	fans, err = env.relation.Fans(a.ID)
	assert.NoError(t, err)
	if assert.Len(t, fans, 1) {
		assert.Equal(t, "carol", fans[0].Nickname)
	}

	ids, err := env.relation.Following(b.ID)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
