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

	"github.com/gin-gonic/gin"
)

type SavedPost struct {
	Config           *config.Config
	Sessions         *cache.SessionStorage
	SavedPostService service.ISavedPostService
}

func (h *SavedPost) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Sessions)
	g := r.Group("/saved-posts")
	g.Use(authorize)
	g.POST("", context.Wrap(h.Save))
	g.GET("", context.Wrap(h.List))
	g.DELETE("/:contentId", context.Wrap(h.Unsave))
}

func (h *SavedPost) Save(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.SavePostRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := h.SavedPostService.Save(c.Request.Context(), userID, req.ContentID)
	if err != nil {
		return err
	}

	if created {
		response.Message(c, http.StatusCreated, "Post saved successfully!")
	} else {
		response.Message(c, http.StatusOK, "Post was already saved.")
	}
	return nil
}

func (h *SavedPost) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	posts, err := h.SavedPostService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	out := make([]*types.SavedPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, &types.SavedPostResponse{
			ID:        p.ID,
			ContentID: p.ContentID,
			SavedAt:   p.CreatedAt,
			Content:   types.NewContentResponse(p.Content),
		})
	}
	response.Success(c, out)
	return nil
}

func (h *SavedPost) Unsave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	contentID, err := paramID(c, "contentId")
	if err != nil {
		return err
	}

	if err := h.SavedPostService.Unsave(c.Request.Context(), userID, contentID); err != nil {
		return err
	}

	response.Message(c, http.StatusOK, "Post removed from saved.")
	return nil
}
