package service

import (
	"testing"
	"time"
	"weibo_backend/internal/config"
	"weibo_backend/internal/model"
	"weibo_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	auth       *AuthService
	relation   *RelationService
	engagement *EngagementService
	weibo      *WeiboService
	feed       *FeedService
}

func setupTestEnv(t *testing.T) *testEnv {
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

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		Feed: config.FeedConfig{
			PageSize:     10,
			TopN:         10,
			HotCacheSecs: 60,
		},
	}

	userRepo := repository.NewUserRepository(db)
	weiboRepo := repository.NewWeiboRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db, nil)

	return &testEnv{
		db:         db,
		cfg:        cfg,
		auth:       NewAuthService(userRepo, cfg),
		relation:   NewRelationService(followRepo, userRepo),
		engagement: NewEngagementService(likeRepo, weiboRepo),
		weibo:      NewWeiboService(weiboRepo, commentRepo, userRepo),
		feed:       NewFeedService(weiboRepo, userRepo, commentRepo, likeRepo, followRepo, nil, cfg),
	}
}

func (e *testEnv) mustRegister(t *testing.T, nickname string) *model.User {
	t.Helper()

	user := &model.User{Nickname: nickname, Password: "123456", City: "上海"}
	if err := e.auth.Register(user); err != nil {
		t.Fatalf("register %s: %v", nickname, err)
	}
	return user
}
