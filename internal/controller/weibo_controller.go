package controller

import (
	"errors"
	"strconv"
	"weibo_backend/internal/service"
	"weibo_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WeiboController struct {
	WeiboService      *service.WeiboService
	FeedService       *service.FeedService
	EngagementService *service.EngagementService
}

func NewWeiboController(weiboService *service.WeiboService, feedService *service.FeedService, engagementService *service.EngagementService) *WeiboController {
	return &WeiboController{
		WeiboService:      weiboService,
		FeedService:       feedService,
		EngagementService: engagementService,
	}
}

type PostWeiboRequest struct {
	Content string `form:"content" json:"content" binding:"required"`
}

// @Summary 首页
// @Description 按时间降序分页的微博列表，附作者、点赞数和热门榜
// @Tags 微博
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} util.Response
// @Router / [get]
func (c *WeiboController) Home(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	feed, err := c.FeedService.Home(page)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, feed)
}

// @Summary 发微博
// @Tags 微博
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param content formData string true "内容"
// @Success 201 {object} util.Response
// @Router /weibo/post [post]
func (c *WeiboController) Post(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	var req PostWeiboRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	weibo, err := c.WeiboService.Post(userID, req.Content)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, weibo)
}

// @Summary 微博详情
// @Description 单条微博：正文、作者、评论、点赞数、当前用户点赞状态
// @Tags 微博
// @Produce json
// @Param weibo_id query int true "微博 ID"
// @Success 200 {object} util.Response
// @Router /weibo/show [get]
func (c *WeiboController) Show(ctx *gin.Context) {
	weiboID, err := util.ParseUint(ctx.Query("weibo_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid weibo_id")
		return
	}

	detail, err := c.FeedService.Detail(weiboID, util.CurrentUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 点赞
// @Description 重复点赞幂等，不会累计
// @Tags 微博
// @Produce json
// @Security BearerAuth
// @Param wb_id query int true "微博 ID"
// @Success 200 {object} util.Response
// @Router /weibo/like [get]
func (c *WeiboController) Like(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	weiboID, err := util.ParseUint(ctx.Query("wb_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid wb_id")
		return
	}

	if err := c.EngagementService.Like(userID, weiboID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"liked": true})
}

// @Summary 取消点赞
// @Description 从未赞过时是空操作
// @Tags 微博
// @Produce json
// @Security BearerAuth
// @Param wb_id query int true "微博 ID"
// @Success 200 {object} util.Response
// @Router /weibo/dislike [get]
func (c *WeiboController) Dislike(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	weiboID, err := util.ParseUint(ctx.Query("wb_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid wb_id")
		return
	}

	if err := c.EngagementService.Unlike(userID, weiboID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"liked": false})
}

// @Summary 关注页
// @Description 只看我关注的人发的微博
// @Tags 微博
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /weibo/follow [get]
func (c *WeiboController) FollowFeed(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	feed, err := c.FeedService.Following(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, feed)
}

// @Summary 热门榜
// @Description 按点赞数取前 10 条微博
// @Tags 微博
// @Produce json
// @Success 200 {object} util.Response
// @Router /weibo/top10 [get]
func (c *WeiboController) Top10(ctx *gin.Context) {
	hot, err := c.FeedService.TopEngaged()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"top10": hot})
}
