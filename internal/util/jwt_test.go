package util

import (
	"testing"
	"time"
	"weibo_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Nickname: "alice"}
	user.ID = 42

	token, err := GenerateJWT(user, "secret", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Nickname)
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Nickname: "alice"}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Nickname: "alice"}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
