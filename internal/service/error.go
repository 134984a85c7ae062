package service

import "errors"

var (
	ErrUnsupportedOperation = errors.New("service: operation not supported by container task mode")
)
