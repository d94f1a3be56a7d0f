package controller

import (
	"errors"
	"weibo_backend/internal/service"
	"weibo_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	FeedService     *service.FeedService
	RelationService *service.RelationService
}

func NewUserController(feedService *service.FeedService, relationService *service.RelationService) *UserController {
	return &UserController{
		FeedService:     feedService,
		RelationService: relationService,
	}
}

// @Summary 用户主页
// @Description 带 user_id 参数时查看他人主页，否则查看自己（需登陆）
// @Tags 用户
// @Produce json
// @Param user_id query int false "要查看的用户 ID"
// @Success 200 {object} util.Response
// @Router /user/info [get]
func (c *UserController) Info(ctx *gin.Context) {
	viewerID := util.CurrentUserID(ctx)
	otherParam := ctx.Query("user_id")

	// 未登陆且没有指定对象时无页可看
	if viewerID == 0 && otherParam == "" {
		util.Unauthorized(ctx)
		return
	}

	targetID := viewerID
	if otherParam != "" {
		id, err := util.ParseUint(otherParam)
		if err != nil {
			util.BadRequest(ctx, "invalid user_id")
			return
		}
		targetID = id
	}

	profile, err := c.FeedService.UserProfile(targetID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 关注
// @Description 关注 follow_id 指定的用户，重复关注幂等
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param follow_id query int true "被关注者 ID"
// @Success 200 {object} util.Response
// @Router /user/follow [get]
func (c *UserController) Follow(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	followID, err := util.ParseUint(ctx.Query("follow_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid follow_id")
		return
	}

	if err := c.RelationService.Follow(userID, followID); err != nil {
		switch {
		case errors.Is(err, util.ErrFollowSelf):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"following": true})
}

// @Summary 取消关注
// @Description 取消对 follow_id 的关注，从未关注过时是空操作
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param follow_id query int true "被关注者 ID"
// @Success 200 {object} util.Response
// @Router /user/unfollow [get]
func (c *UserController) Unfollow(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	followID, err := util.ParseUint(ctx.Query("follow_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid follow_id")
		return
	}

	if err := c.RelationService.Unfollow(userID, followID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"following": false})
}

// @Summary 粉丝列表
// @Description 当前用户的粉丝
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /user/fans [get]
func (c *UserController) Fans(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	fans, err := c.RelationService.Fans(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"fans": fans})
}
