package errcode

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Err 接口层统一错误
type Err struct {
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	HTTPStatus int    `json:"-"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", e.Code, e.Msg)
}

func New(code int, httpStatus int, msg string) *Err {
	return &Err{Code: code, Msg: msg, HTTPStatus: httpStatus}
}

// WithMsg 保留错误码，替换提示信息
func (e *Err) WithMsg(msg string) *Err {
	return &Err{Code: e.Code, Msg: msg, HTTPStatus: e.HTTPStatus}
}

// NewCustomErr 自定义提示信息的业务错误
func NewCustomErr(msg string) *Err {
	return &Err{Code: CodeCustom, Msg: msg, HTTPStatus: http.StatusOK}
}

const (
	CodeOK           = 0
	CodeCustom       = 10000
	CodeInvalidParam = 10001
	CodeNotFound     = 10004
	CodeInternal     = 10500
)

var (
	ErrInvalidParams   = New(CodeInvalidParam, http.StatusBadRequest, "invalid params")
	ErrUnauthorized    = New(10002, http.StatusUnauthorized, "wallet address required")
	ErrCampaignUnknown = New(CodeNotFound, http.StatusNotFound, "campaign not found")
	ErrTaskUnknown     = New(CodeNotFound, http.StatusNotFound, "task not found")
	ErrInternal        = New(CodeInternal, http.StatusInternalServerError, "internal error")
)

// ParseErr 将任意错误转换为 *Err，无法识别的归为内部错误
func ParseErr(err error) *Err {
	if err == nil {
		return nil
	}
	var e *Err
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal
}
