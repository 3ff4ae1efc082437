package handler

import (
	"brainvault/pkg/errs"
	"brainvault/pkg/response"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON 校验失败转为带字段名的 ValidationError
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return errs.Validation(fe.Field(), fieldMessage(fe))
	}
	return response.NewError(http.StatusBadRequest, "invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid Email address"
	case "password":
		return "Password must be at least 8 characters and contain a lowercase and an uppercase letter"
	case "min":
		return fmt.Sprintf("%s should be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s should be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// paramID 解析路径中的 ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation(name, "invalid "+name)
	}
	return id, nil
}
