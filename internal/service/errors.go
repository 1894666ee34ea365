package service

import "errors"

var (
	// ErrHabitNotFound 引用的习惯不存在
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidInput 请求参数不合法，具体原因通过 %w 包装携带
	ErrInvalidInput = errors.New("invalid input")
)
