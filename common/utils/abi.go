package utils

import (
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ReadABI 读取abi json文件，并校验包含所需的方法
func ReadABI(filePath string, methods ...string) (abi.ABI, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to read ABI file")
	}
	defer f.Close()

	parsed, err := abi.JSON(f)
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to parse ABI JSON")
	}
	if err := RequireMethods(parsed, methods...); err != nil {
		return abi.ABI{}, err
	}
	return parsed, nil
}

func RequireMethods(parsed abi.ABI, methods ...string) error {
	for _, m := range methods {
		if _, ok := parsed.Methods[m]; !ok {
			return errors.Errorf("ABI has no %s method", m)
		}
	}
	return nil
}
