package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 完整走一遍关注、发布、点赞的生命周期
func TestFollowPostLikeLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")

	assert.NoError(t, env.relation.Follow(a.ID, b.ID))

	post, err := env.weibo.Post(b.ID, "你好世界")
	assert.NoError(t, err)

	feed, err := env.feed.Following(a.ID)
	assert.NoError(t, err)
	if assert.Len(t, feed.Weibos, 1) {
		assert.Equal(t, post.ID, feed.Weibos[0].ID)
		assert.Equal(t, "bob", feed.Authors[b.ID].Nickname)
	}

	assert.NoError(t, env.engagement.Like(a.ID, post.ID))

	detail, err := env.feed.Detail(post.ID, a.ID)
	assert.NoError(t, err)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.LikeCount)

	assert.NoError(t, env.engagement.Unlike(a.ID, post.ID))

	detail, err = env.feed.Detail(post.ID, a.ID)
	assert.NoError(t, err)
	assert.False(t, detail.IsLiked)
	assert.Equal(t, int64(0), detail.LikeCount)
}

func TestDetailCommentThreading(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")

	post, err := env.weibo.Post(a.ID, "正文")
	assert.NoError(t, err)

	c1, err := env.weibo.Comment(b.ID, post.ID, "一级评论")
	assert.NoError(t, err)
	assert.Equal(t, uint(0), c1.ParentID)

	c2, err := env.weibo.Reply(a.ID, post.ID, c1.ID, "回复一级评论")
	assert.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ParentID)

	detail, err := env.feed.Detail(post.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, detail.Comments, 2)

	ids := map[uint]uint{}
	for _, c := range detail.Comments {
		ids[c.ID] = c.ParentID
	}
	assert.Equal(t, uint(0), ids[c1.ID])
	assert.Equal(t, c1.ID, ids[c2.ID])
	assert.Contains(t, detail.CommentAuthors, a.ID)
	assert.Contains(t, detail.CommentAuthors, b.ID)
}

func TestHomePagination(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")

	for i := 0; i < 23; i++ {
		_, err := env.weibo.Post(a.ID, fmt.Sprintf("第 %d 条", i))
		assert.NoError(t, err)
	}

	page1, err := env.feed.Home(1)
	assert.NoError(t, err)
	assert.Len(t, page1.Weibos, 10)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Contains(t, page1.Authors, a.ID)

	page3, err := env.feed.Home(3)
	assert.NoError(t, err)
	assert.Len(t, page3.Weibos, 3)

	// 时间降序，同时间戳按 ID 降序补位
	for i := 1; i < len(page1.Weibos); i++ {
		prev, cur := page1.Weibos[i-1], page1.Weibos[i]
		assert.False(t, cur.CreatedAt.After(prev.CreatedAt))
		if cur.CreatedAt.Equal(prev.CreatedAt) {
			assert.Less(t, cur.ID, prev.ID)
		}
	}

	// 页码越界时纠正为第一页
	fixed, err := env.feed.Home(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, fixed.Page)
}

func TestTopEngaged(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")
	c := env.mustRegister(t, "carol")

	p1, _ := env.weibo.Post(a.ID, "一赞")
	p2, _ := env.weibo.Post(a.ID, "三赞")
	p3, _ := env.weibo.Post(a.ID, "无人问津")

	assert.NoError(t, env.engagement.Like(a.ID, p1.ID))
	for _, uid := range []uint{a.ID, b.ID, c.ID} {
		assert.NoError(t, env.engagement.Like(uid, p2.ID))
	}

	hot, err := env.feed.TopEngaged()
	assert.NoError(t, err)
	if assert.Len(t, hot, 2) {
		assert.Equal(t, p2.ID, hot[0].WeiboID)
		assert.Equal(t, int64(3), hot[0].LikeCount)
		assert.Equal(t, p1.ID, hot[1].WeiboID)
	}
	for _, h := range hot {
		assert.NotEqual(t, p3.ID, h.WeiboID)
	}
}

func TestUserProfileFollowedStates(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")

	// 看自己：没有关注状态
	self, err := env.feed.UserProfile(a.ID, a.ID)
	assert.NoError(t, err)
	assert.Nil(t, self.IsFollowed)

	// 匿名访问：按未关注处理
	anon, err := env.feed.UserProfile(b.ID, 0)
	assert.NoError(t, err)
	if assert.NotNil(t, anon.IsFollowed) {
		assert.False(t, *anon.IsFollowed)
	}

	assert.NoError(t, env.relation.Follow(a.ID, b.ID))

	viewed, err := env.feed.UserProfile(b.ID, a.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, viewed.IsFollowed) {
		assert.True(t, *viewed.IsFollowed)
	}
}
