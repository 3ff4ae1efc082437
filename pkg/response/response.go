package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Field string `json:"field,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

// Message 仅返回提示信息
func Message(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: 0,
		Msg:  msg,
	})
}

func Created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  msg,
		Data: data,
	})
}

func Fail(c *gin.Context, httpStatus int, msg string, field string) {
	c.JSON(httpStatus, Response{
		Code:  httpStatus,
		Msg:   msg,
		Field: field,
	})
}
