package service

import (
	"testing"
	"weibo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentOnMissingWeibo(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")

	_, err := env.weibo.Comment(a.ID, 9999, "评论")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplyParentMustMatchWeibo(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")

	p1, err := env.weibo.Post(a.ID, "第一条")
	assert.NoError(t, err)
	p2, err := env.weibo.Post(a.ID, "第二条")
	assert.NoError(t, err)

	c1, err := env.weibo.Comment(a.ID, p1.ID, "评论第一条")
	assert.NoError(t, err)

	// 父评论挂在别的微博下
	_, err = env.weibo.Reply(a.ID, p2.ID, c1.ID, "错位回复")
	assert.ErrorIs(t, err, util.ErrCommentMismatch)

	// 父评论不存在
	_, err = env.weibo.Reply(a.ID, p1.ID, 9999, "回复空气")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplyContext(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRegister(t, "alice")
	b := env.mustRegister(t, "bob")

	post, err := env.weibo.Post(a.ID, "正文")
	assert.NoError(t, err)
	c1, err := env.weibo.Comment(b.ID, post.ID, "评论")
	assert.NoError(t, err)

	comment, author, err := env.weibo.ReplyContext(c1.ID)
	assert.NoError(t, err)
	assert.Equal(t, c1.ID, comment.ID)
	assert.Equal(t, "bob", author.Nickname)
}
