package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/base/logger/xzap"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errcode.CodeOK,
		Msg:  "Successful",
		Data: data,
	})
}

func Error(c *gin.Context, err error) {
	e := errcode.ParseErr(err)
	if e == errcode.ErrInternal {
		xzap.WithContext(c.Request.Context()).Error("request failed", zap.Error(err))
	}
	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.AbortWithStatusJSON(status, Response{
		Code: e.Code,
		Msg:  e.Msg,
	})
}
