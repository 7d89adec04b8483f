package probe

import "math"

type Classification string

const (
	ClassificationLandscape Classification = "landscape"
	ClassificationPortrait  Classification = "portrait"
	ClassificationOther     Classification = "other"
)

// 宽高比容差，16:9 与 9:16 附近 0.1 以内算同类
const ratioTolerance = 0.1

// Classify 按宽高比归类。先判横屏再判竖屏，边界重叠时横屏优先。
func Classify(width, height int) Classification {
	ratio := float64(width) / float64(height)
	switch {
	case math.Abs(ratio-16.0/9.0) < ratioTolerance:
		return ClassificationLandscape
	case math.Abs(ratio-9.0/16.0) < ratioTolerance:
		return ClassificationPortrait
	default:
		return ClassificationOther
	}
}
