package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrWeiboNotFound    = errors.New("微博不存在")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrNicknameTaken    = errors.New("该昵称已被注册")
	ErrWrongCredentials = errors.New("用户名或密码错误")
	ErrFollowSelf       = errors.New("不能关注自己")
	ErrCommentMismatch  = errors.New("评论不属于该微博")
)
