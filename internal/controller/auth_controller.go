package controller

import (
	"errors"
	"weibo_backend/internal/model"
	"weibo_backend/internal/service"
	"weibo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type RegisterRequest struct {
	Nickname string `form:"nickname" json:"nickname" binding:"required,max=20"`
	Password string `form:"password" json:"password" binding:"required"`
	Gender   string `form:"gender" json:"gender"`
	City     string `form:"city" json:"city"`
	Bio      string `form:"bio" json:"bio"`
}

type LoginRequest struct {
	Nickname string `form:"nickname" json:"nickname" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// @Summary 用户注册
// @Description 创建新用户，昵称全局唯一
// @Tags 用户
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nickname formData string true "昵称"
// @Param password formData string true "密码"
// @Param gender formData string false "性别"
// @Param city formData string false "城市"
// @Param bio formData string false "个人简介"
// @Success 201 {object} util.Response
// @Router /user/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Nickname: req.Nickname,
		Password: req.Password,
		Gender:   req.Gender,
		City:     req.City,
		Bio:      req.Bio,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrNicknameTaken) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary 用户登陆
// @Description 校验昵称和密码，签发令牌
// @Tags 用户
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nickname formData string true "昵称"
// @Param password formData string true "密码"
// @Success 200 {object} util.Response
// @Router /user/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Nickname, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrWrongCredentials) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// 浏览器表单流程沿用 cookie 记住登陆态，放的是签名令牌
	ctx.SetCookie("token", token, int(c.AuthService.Cfg.JWT.ExpireTime.Seconds()), "/", "", false, true)

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}
