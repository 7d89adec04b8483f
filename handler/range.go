package handler

import (
	"errors"
	"strconv"
	"strings"
)

// parseRangeHeader 解析单区间 Range 头 "bytes=<start>-<end?>"。
// start 必填；end 缺省或越界时收敛到 size-1；
// start > end 或 start >= size 直接拒绝。
// 不支持多区间，出现逗号时只取第一个区间。
func parseRangeHeader(header string, size int64) (int64, int64, error) {
	interval, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, errors.New("unsupported range unit")
	}
	if i := strings.IndexByte(interval, ','); i >= 0 {
		interval = interval[:i]
	}
	interval = strings.TrimSpace(interval)

	startStr, endStr, ok := strings.Cut(interval, "-")
	if !ok {
		return 0, 0, errors.New("malformed range")
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, errors.New("invalid range start")
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < 0 {
			return 0, 0, errors.New("invalid range end")
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start >= size || start > end {
		return 0, 0, errors.New("range out of bounds")
	}
	return start, end, nil
}
