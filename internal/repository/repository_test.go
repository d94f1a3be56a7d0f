package repository

import (
	"testing"
	"weibo_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Weibo{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	user := &model.User{Nickname: nickname, Password: "digest", Gender: "未知", City: "北京"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", nickname, err)
	}
	return user
}

func seedWeibo(t *testing.T, db *gorm.DB, userID uint, content string) *model.Weibo {
	t.Helper()

	weibo := &model.Weibo{UserID: userID, Content: content}
	if err := db.Create(weibo).Error; err != nil {
		t.Fatalf("seed weibo: %v", err)
	}
	return weibo
}
