package controller

import (
	"errors"
	"weibo_backend/internal/service"
	"weibo_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	WeiboService *service.WeiboService
}

func NewCommentController(weiboService *service.WeiboService) *CommentController {
	return &CommentController{WeiboService: weiboService}
}

type CommitCommentRequest struct {
	Content string `form:"content" json:"content" binding:"required"`
	WbID    uint   `form:"wb_id" json:"wb_id" binding:"required"`
}

type ReplyCommentRequest struct {
	Content string `form:"content" json:"content" binding:"required"`
	WbID    uint   `form:"wb_id" json:"wb_id" binding:"required"`
	CmtID   uint   `form:"cmt_id" json:"cmt_id" binding:"required"`
}

// @Summary 发表评论
// @Description 对一条微博发一级评论
// @Tags 评论
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param content formData string true "内容"
// @Param wb_id formData int true "微博 ID"
// @Success 201 {object} util.Response
// @Router /comment/commit [post]
func (c *CommentController) Commit(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	var req CommitCommentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.WeiboService.Comment(userID, req.WbID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, comment)
}

// @Summary 回复页数据
// @Description 取出被回复的评论及其作者
// @Tags 评论
// @Produce json
// @Param cmt_id query int true "被回复的评论 ID"
// @Success 200 {object} util.Response
// @Router /comment/reply [get]
func (c *CommentController) ReplyContext(ctx *gin.Context) {
	commentID, err := util.ParseUint(ctx.Query("cmt_id"))
	if err != nil {
		util.BadRequest(ctx, "invalid cmt_id")
		return
	}

	comment, author, err := c.WeiboService.ReplyContext(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"comment": comment,
		"author":  author,
	})
}

// @Summary 回复评论
// @Description 对某条评论发回复，形成评论链
// @Tags 评论
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param content formData string true "内容"
// @Param wb_id formData int true "微博 ID"
// @Param cmt_id formData int true "被回复的评论 ID"
// @Success 201 {object} util.Response
// @Router /comment/reply [post]
func (c *CommentController) Reply(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)

	var req ReplyCommentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.WeiboService.Reply(userID, req.WbID, req.CmtID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCommentMismatch):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, comment)
}
