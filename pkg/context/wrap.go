package context

import (
	"brainvault/pkg/errs"
	"brainvault/pkg/log"
	"brainvault/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxTokenID   = "token_id"
	CtxTokenExp  = "token_exp"
	CtxRequestID = "request_id"
)

// HandlerFunc 返回 error 的处理函数，由 Wrap 统一转换为响应
type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg, "")
				return
			}

			var de *errs.Error
			if errors.As(err, &de) && de.Kind != errs.KindInternal {
				response.Fail(c, de.Kind.StatusCode(), de.Msg, de.Field)
				return
			}

			// 存储层错误只写日志，不透出细节
			log.L.Error("request failed",
				zap.String("request_id", c.GetString(CtxRequestID)),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "internal server error", "")
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errs.Unauthenticated("user_id missing from context")
	}

	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, errs.Unauthenticated("user_id has unexpected type")
	}

	return uid, nil
}
