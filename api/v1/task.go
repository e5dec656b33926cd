package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/base/kit/validator"
	"github.com/locey/BurnWin/base/xhttp"
	"github.com/locey/BurnWin/service/svc"
	service "github.com/locey/BurnWin/service/v1"
	types "github.com/locey/BurnWin/types/v1"
)

func invalidParam(err error) error {
	return errcode.ErrInvalidParams.WithMsg(err.Error())
}

// VerifyTaskHandler 验证任务
func VerifyTaskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(types.VerifyTaskRequest)
		if err := c.ShouldBindJSON(req); err != nil {
			xhttp.Error(c, invalidParam(err))
			return
		}
		if err := validator.Verify(req); err != nil {
			xhttp.Error(c, invalidParam(err))
			return
		}

		res, err := service.VerifyTask(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// OpenTaskHandler 记录任务按钮点击
func OpenTaskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(types.OpenTaskRequest)
		if err := c.ShouldBindJSON(req); err != nil {
			xhttp.Error(c, invalidParam(err))
			return
		}
		if err := validator.Verify(req); err != nil {
			xhttp.Error(c, invalidParam(err))
			return
		}

		res, err := service.OpenTask(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// VisitTaskHandler 记录访问后跳转到任务链接
func VisitTaskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Query("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrUnauthorized)
			return
		}

		target, err := service.TrackVisit(c.Request.Context(), svcCtx, c.Param("campaign"), c.Param("task"), address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		c.Redirect(http.StatusFound, target)
	}
}
