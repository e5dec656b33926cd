package service

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/ledger"
)

var errIllegalAddress = errcode.New(errcode.CodeInvalidParam, http.StatusBadRequest, "user address is illegal")

// ledgerErr 将ledger错误映射为接口错误
func ledgerErr(err error) error {
	switch {
	case errors.Is(err, ledger.ErrCampaignNotFound):
		return errcode.ErrCampaignUnknown
	case errors.Is(err, ledger.ErrTaskNotFound):
		return errcode.ErrTaskUnknown
	default:
		return err
	}
}
