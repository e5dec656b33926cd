package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/base/xhttp"
	"github.com/locey/BurnWin/service/svc"
	service "github.com/locey/BurnWin/service/v1"
)

// 获取活动任务列表
func GetCampaignTasksHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetCampaignTasks(svcCtx, c.Param("campaign"))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 获取钱包任务完成度
func GetProgressHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Param("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrUnauthorized)
			return
		}

		res, err := service.GetProgress(c.Request.Context(), svcCtx, c.Param("campaign"), address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 获取活动的merkle根和所有proof
func GetEligibilityHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.BuildEligibility(c.Request.Context(), svcCtx, c.Param("campaign"))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 获取单个钱包的资格
func GetWalletEligibilityHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetWalletEligibility(c.Request.Context(), svcCtx, c.Param("campaign"), c.Param("address"))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
