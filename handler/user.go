package handler

import (
	"brainvault/config"
	"brainvault/dao/cache"
	"brainvault/middleware"
	"brainvault/pkg/context"
	"brainvault/pkg/response"
	"brainvault/service"
	"brainvault/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Sessions)
	r.GET("/user/profile", authorize, context.Wrap(u.Profile))
	r.GET("/user/checkAuth", authorize, context.Wrap(u.CheckAuth))
	r.PATCH("/profile/edit", authorize, context.Wrap(u.UpdateProfile))
}

func (u *User) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	user, items, err := u.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, &types.ProfileResponse{
		User:    types.NewUserResponse(user),
		Content: types.NewContentList(items),
	})
	return nil
}

func (u *User) CheckAuth(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := u.UserService.Get(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.NewUserResponse(user))
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := u.UserService.UpdateProfile(c.Request.Context(), userID, &service.ProfilePatch{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	response.Success(c, types.NewUserResponse(user))
	return nil
}
