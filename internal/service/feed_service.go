package service

import (
	"context"
	"encoding/json"
	"time"
	"weibo_backend/internal/config"
	"weibo_backend/internal/model"
	"weibo_backend/internal/repository"
	"weibo_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const hotCacheKey = "feed:hot"

// FeedService 组装分页时间线、关注页、微博详情与热门榜。
// 补全作者与点赞数时先收集去重后的 ID 集合再批量查询，
// 查询次数只随维度数增长，不随页大小增长。
type FeedService struct {
	WeiboRepo   *repository.WeiboRepository
	UserRepo    *repository.UserRepository
	CommentRepo *repository.CommentRepository
	LikeRepo    *repository.LikeRepository
	FollowRepo  *repository.FollowRepository
	Redis       *redis.Client
	Cfg         *config.Config
	ctx         context.Context
}

func NewFeedService(
	weiboRepo *repository.WeiboRepository,
	userRepo *repository.UserRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	followRepo *repository.FollowRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *FeedService {
	return &FeedService{
		WeiboRepo:   weiboRepo,
		UserRepo:    userRepo,
		CommentRepo: commentRepo,
		LikeRepo:    likeRepo,
		FollowRepo:  followRepo,
		Redis:       rdb,
		Cfg:         cfg,
		ctx:         context.Background(),
	}
}

// HotWeibo 热门榜条目
type HotWeibo struct {
	WeiboID   uint   `json:"weiboId"`
	Content   string `json:"content"`
	LikeCount int64  `json:"likeCount"`
}

// HomeFeed 首页数据
type HomeFeed struct {
	Weibos     []model.Weibo       `json:"weibos"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	Authors    map[uint]model.User `json:"authors"`
	LikeCounts map[uint]int64      `json:"likeCounts"`
	Hot        []HotWeibo          `json:"hot"`
}

// FollowingFeed 关注页数据
type FollowingFeed struct {
	Weibos     []model.Weibo       `json:"weibos"`
	Authors    map[uint]model.User `json:"authors"`
	LikeCounts map[uint]int64      `json:"likeCounts"`
}

// WeiboDetail 单条微博页数据
type WeiboDetail struct {
	Weibo          *model.Weibo        `json:"weibo"`
	Author         *model.User         `json:"author"`
	Comments       []model.Comment     `json:"comments"`
	CommentAuthors map[uint]model.User `json:"commentAuthors"`
	IsLiked        bool                `json:"isLiked"`
	LikeCount      int64               `json:"likeCount"`
}

// Profile 用户主页数据。IsFollowed 在查看自己时为 nil，
// 匿名访问时为 false，其余情况为真实关注状态。
type Profile struct {
	User       *model.User `json:"user"`
	IsFollowed *bool       `json:"isFollowed"`
}

// Home 按时间降序取一页微博，批量补全作者和点赞数
func (s *FeedService) Home(page int) (*HomeFeed, error) {
	if page < 1 {
		page = 1
	}
	pageSize := s.Cfg.Feed.PageSize

	total, err := s.WeiboRepo.Count()
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	weibos, err := s.WeiboRepo.FindPage((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	authors, likeCounts, err := s.enrich(weibos)
	if err != nil {
		return nil, err
	}

	hot, err := s.TopEngaged()
	if err != nil {
		return nil, err
	}

	return &HomeFeed{
		Weibos:     weibos,
		Page:       page,
		TotalPages: totalPages,
		Authors:    authors,
		LikeCounts: likeCounts,
		Hot:        hot,
	}, nil
}

// Following 关注页：取出关注集合的全部微博，补全方式同首页
func (s *FeedService) Following(userID uint) (*FollowingFeed, error) {
	followIDs, err := s.FollowRepo.FolloweeIDsCached(userID)
	if err != nil {
		return nil, err
	}

	weibos, err := s.WeiboRepo.FindByAuthors(followIDs)
	if err != nil {
		return nil, err
	}

	authors, likeCounts, err := s.enrich(weibos)
	if err != nil {
		return nil, err
	}

	return &FollowingFeed{
		Weibos:     weibos,
		Authors:    authors,
		LikeCounts: likeCounts,
	}, nil
}

// Detail 单条微博：正文、作者、全部评论及评论作者、点赞数和当前用户的点赞状态。
// viewerID 为 0 表示匿名，按未点赞看待。
func (s *FeedService) Detail(weiboID, viewerID uint) (*WeiboDetail, error) {
	weibo, err := s.WeiboRepo.FindByID(weiboID)
	if err != nil {
		return nil, err
	}

	author, err := s.UserRepo.FindByID(weibo.UserID)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepo.FindByWeibo(weiboID)
	if err != nil {
		return nil, err
	}

	authorIDs := distinctUserIDs(comments)
	commentAuthors, err := s.UserRepo.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if viewerID != 0 {
		isLiked, err = s.LikeRepo.IsLiked(weiboID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	likeCount, err := s.LikeRepo.CountByWeibo(weiboID)
	if err != nil {
		return nil, err
	}

	return &WeiboDetail{
		Weibo:          weibo,
		Author:         author,
		Comments:       comments,
		CommentAuthors: commentAuthors,
		IsLiked:        isLiked,
		LikeCount:      likeCount,
	}, nil
}

// TopEngaged 热门榜：按点赞数取前 N 条微博。原逻辑每个页面都要算一遍，
// 这里加一层短 TTL 的 Redis 缓存。
func (s *FeedService) TopEngaged() ([]HotWeibo, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(s.ctx, hotCacheKey).Bytes()
		if err == nil {
			var hot []HotWeibo
			if json.Unmarshal(cached, &hot) == nil {
				return hot, nil
			}
		}
	}

	rows, err := s.LikeRepo.TopWeibos(s.Cfg.Feed.TopN)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.WeiboID
	}
	weibos, err := s.WeiboRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	hot := make([]HotWeibo, 0, len(rows))
	for _, row := range rows {
		w, ok := weibos[row.WeiboID]
		if !ok {
			continue
		}
		hot = append(hot, HotWeibo{
			WeiboID:   row.WeiboID,
			Content:   w.Content,
			LikeCount: row.Count,
		})
	}

	if s.Redis != nil {
		data, err := json.Marshal(hot)
		if err == nil {
			ttl := time.Duration(s.Cfg.Feed.HotCacheSecs) * time.Second
			if err := s.Redis.Set(s.ctx, hotCacheKey, data, ttl).Err(); err != nil {
				logger.Log.Warn("hot feed cache write failed", zap.Error(err))
			}
		}
	}
	return hot, nil
}

// UserProfile 用户主页。viewerID 为 0 表示匿名。
func (s *FeedService) UserProfile(userID, viewerID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// 查看自己的主页没有"是否已关注"的概念
	if viewerID == userID {
		return &Profile{User: user, IsFollowed: nil}, nil
	}

	isFollowed := false
	if viewerID != 0 {
		isFollowed, err = s.FollowRepo.IsFollowing(viewerID, userID)
		if err != nil {
			return nil, err
		}
	}
	return &Profile{User: user, IsFollowed: &isFollowed}, nil
}

// enrich 批量补全一组微博的作者和点赞数
func (s *FeedService) enrich(weibos []model.Weibo) (map[uint]model.User, map[uint]int64, error) {
	authorSet := make(map[uint]struct{}, len(weibos))
	weiboIDs := make([]uint, len(weibos))
	for i, w := range weibos {
		authorSet[w.UserID] = struct{}{}
		weiboIDs[i] = w.ID
	}

	authorIDs := make([]uint, 0, len(authorSet))
	for id := range authorSet {
		authorIDs = append(authorIDs, id)
	}

	authors, err := s.UserRepo.FindByIDs(authorIDs)
	if err != nil {
		return nil, nil, err
	}

	likeCounts, err := s.LikeRepo.CountByWeibos(weiboIDs)
	if err != nil {
		return nil, nil, err
	}
	return authors, likeCounts, nil
}

func distinctUserIDs(comments []model.Comment) []uint {
	set := make(map[uint]struct{}, len(comments))
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		if _, ok := set[c.UserID]; !ok {
			set[c.UserID] = struct{}{}
			ids = append(ids, c.UserID)
		}
	}
	return ids
}
