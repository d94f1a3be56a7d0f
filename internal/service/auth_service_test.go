package service

import (
	"testing"
	"weibo_backend/internal/model"
	"weibo_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestRegisterStoresDigest(t *testing.T) {
	env := setupTestEnv(t)

	user := env.mustRegister(t, "alice")

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "123456", user.Password, "明文密码不能入库")
	assert.Len(t, user.Password, 64)
}

func TestRegisterDuplicateNickname(t *testing.T) {
	env := setupTestEnv(t)

	env.mustRegister(t, "alice")

	dup := &model.User{Nickname: "alice", Password: "other"}
	err := env.auth.Register(dup)
	assert.ErrorIs(t, err, util.ErrNicknameTaken)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	registered := env.mustRegister(t, "alice")

	token, user, err := env.auth.Login("alice", "123456")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := util.ParseJWT(token, env.cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Nickname)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.mustRegister(t, "alice")

	_, _, err := env.auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, util.ErrWrongCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.auth.Login("nobody", "123456")
	assert.ErrorIs(t, err, util.ErrWrongCredentials)
}

func TestLoginAfterReRegisterSamePassword(t *testing.T) {
	// 摘要是确定性的：两个不同用户用同一密码也都能各自登录
	env := setupTestEnv(t)
	env.mustRegister(t, "alice")
	env.mustRegister(t, "bob")

	_, alice, err := env.auth.Login("alice", "123456")
	assert.NoError(t, err)
	_, bob, err := env.auth.Login("bob", "123456")
	assert.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)
}
