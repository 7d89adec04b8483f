package service

import "errors"

// 管线错误分类。每个步骤失败时映射到其中一类再返回，
// handler 层据此决定 HTTP 状态码。
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrForbidden        = errors.New("permission denied")
	ErrNotFound         = errors.New("video not found")
	ErrTooLarge         = errors.New("payload too large")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrDependency       = errors.New("dependency failure")
)
