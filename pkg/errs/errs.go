package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// StatusCode 对应的 HTTP 状态码
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error 业务错误，Field/Resource 用于提示调用方修正请求
type Error struct {
	Kind     Kind
	Resource string
	Field    string
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// NotFound 资源不存在；按归属查询未命中时同样返回，不区分“无权限”
func NotFound(resource string, id any) *Error {
	msg := resource + " not found"
	if id != nil {
		msg = fmt.Sprintf("%s %v not found", resource, id)
	}
	return &Error{Kind: KindNotFound, Resource: resource, Msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Msg: msg}
}

func Conflict(field, msg string) *Error {
	return &Error{Kind: KindConflict, Field: field, Msg: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal server error", Err: err}
}

// KindOf 非 *Error 一律视为内部错误
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool      { return err != nil && KindOf(err) == KindValidation }
func IsNotFound(err error) bool        { return err != nil && KindOf(err) == KindNotFound }
func IsUnauthenticated(err error) bool { return err != nil && KindOf(err) == KindUnauthenticated }
func IsConflict(err error) bool        { return err != nil && KindOf(err) == KindConflict }
