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

type Content struct {
	Config         *config.Config
	Sessions       *cache.SessionStorage
	ContentService service.IContentService
}

func (h *Content) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Sessions)
	g := r.Group("/content")
	g.Use(authorize)
	g.POST("/add", context.Wrap(h.Add))
	g.GET("/view", context.Wrap(h.View))
	g.PATCH("/update/:id", context.Wrap(h.Update))
	g.DELETE("/delete/:id", context.Wrap(h.Delete))
}

func (h *Content) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.AddContentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	item, err := h.ContentService.Add(c.Request.Context(), userID, &service.AddContentInput{
		Title: req.Title,
		Type:  req.Type,
		Link:  req.Link,
		Tags:  req.Tags,
	})
	if err != nil {
		return err
	}

	response.Created(c, "Content added", types.NewContentResponse(item))
	return nil
}

func (h *Content) View(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	items, err := h.ContentService.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.NewContentList(items))
	return nil
}

func (h *Content) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateContentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	item, err := h.ContentService.Update(c.Request.Context(), userID, id, &service.ContentPatch{
		Title: req.Title,
		Link:  req.Link,
		Tags:  req.Tags,
	})
	if err != nil {
		return err
	}

	response.Success(c, types.NewContentResponse(item))
	return nil
}

func (h *Content) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.ContentService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}

	response.Message(c, http.StatusOK, "Content deleted")
	return nil
}
