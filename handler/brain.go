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

type Brain struct {
	Config       *config.Config
	Sessions     *cache.SessionStorage
	BrainService service.IBrainService
	ShareService service.IShareService
}

func (h *Brain) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Sessions)
	g := r.Group("/brain")
	g.GET("", authorize, context.Wrap(h.Own))
	g.PATCH("/share", authorize, context.Wrap(h.Share))
	g.GET("/:shareLink", context.Wrap(h.Shared))
}

func (h *Brain) Own(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	view, err := h.BrainService.FetchForOwner(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, &types.BrainResponse{
		ID:        view.Brain.ID,
		IsPublic:  view.Brain.IsPublic,
		ShareHash: view.ShareHash,
		Content:   types.NewContentList(view.Items),
	})
	return nil
}

// Share {"share": true} 开启并返回令牌，false 关闭
func (h *Brain) Share(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ShareRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if !*req.Share {
		if err := h.ShareService.Disable(c.Request.Context(), userID); err != nil {
			return err
		}
		response.Success(c, &types.ShareResponse{})
		return nil
	}

	hash, err := h.ShareService.Enable(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, &types.ShareResponse{Hash: hash})
	return nil
}

func (h *Brain) Shared(c *gin.Context) error {
	shared, err := h.ShareService.Resolve(c.Request.Context(), c.Param("shareLink"))
	if err != nil {
		return err
	}

	response.Success(c, &types.SharedBrainResponse{
		Username: shared.Username,
		Content:  types.NewContentList(shared.Items),
	})
	return nil
}
