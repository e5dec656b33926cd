package validator

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("eth_addr", func(fl validator.FieldLevel) bool {
			return common.IsHexAddress(fl.Field().String())
		})
	})
	return validate
}

// Verify 校验结构体 tag，返回第一条可读错误
func Verify(obj interface{}) error {
	err := instance().Struct(obj)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return &FieldError{Field: fe.Field(), Tag: fe.Tag()}
	}
	return err
}

type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return strings.ToLower(e.Field) + " failed on " + e.Tag
}
