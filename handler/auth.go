package handler

import (
	"brainvault/config"
	"brainvault/dao/cache"
	"brainvault/middleware"
	"brainvault/pkg/context"
	"brainvault/pkg/response"
	"brainvault/service"
	"brainvault/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), a.Sessions)
	r.POST("/register", context.Wrap(a.Register))
	r.POST("/login", context.Wrap(a.Login))
	r.POST("/logout", authorize, context.Wrap(a.Logout))
	r.POST("/auth/google", context.Wrap(a.GoogleRegister))
	r.POST("/auth/google/login", context.Wrap(a.GoogleLogin))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sess, err := a.UserService.Register(c.Request.Context(), &service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	setTokenCookie(c, a.Config, sess.Token, sess.ExpiresAt)
	response.Created(c, "New user created", types.NewUserResponse(sess.User))
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sess, err := a.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setTokenCookie(c, a.Config, sess.Token, sess.ExpiresAt)
	response.Success(c, types.NewUserResponse(sess.User))
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	expiresAt, _ := c.Get(context.CtxTokenExp)
	exp, _ := expiresAt.(time.Time)
	if err := a.UserService.Logout(c.Request.Context(), c.GetString(context.CtxTokenID), exp); err != nil {
		return err
	}

	clearTokenCookie(c, a.Config)
	response.Message(c, http.StatusOK, "Logged out")
	return nil
}

func (a *Auth) GoogleRegister(c *gin.Context) error {
	var req types.GoogleTokenRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sess, err := a.UserService.GoogleRegister(c.Request.Context(), req.Token)
	if err != nil {
		return err
	}

	setTokenCookie(c, a.Config, sess.Token, sess.ExpiresAt)
	response.Success(c, types.NewUserResponse(sess.User))
	return nil
}

func (a *Auth) GoogleLogin(c *gin.Context) error {
	var req types.GoogleTokenRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sess, err := a.UserService.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		return err
	}

	setTokenCookie(c, a.Config, sess.Token, sess.ExpiresAt)
	response.Success(c, types.NewUserResponse(sess.User))
	return nil
}
