package validate

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const PasswordMinLen = 8

// Password 至少 8 位，且同时包含小写和大写字母
func Password(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < PasswordMinLen {
		return false
	}
	var lower, upper bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return lower && upper
}

// RegisterTo 注册自定义校验标签，错误中的字段名取 json 名
func RegisterTo(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	return v.RegisterValidation("password", Password)
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Register 注册到 gin 的默认校验器
func Register() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return RegisterTo(v)
	}
	return nil
}
