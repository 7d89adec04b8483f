package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/RigelNana/arkvideo/probe"
)

// generateObjectKey 生成对象存储 key：32 字节加密随机数的十六进制编码，
// 按分类前缀分目录，如 landscape/<hex>.mp4。
// 这是系统唯一的防碰撞机制，不做存在性检查。
func generateObjectKey(classification probe.Classification) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate object key: %w", err)
	}
	name := hex.EncodeToString(buf) + ".mp4"
	if classification != "" {
		return fmt.Sprintf("%s/%s", classification, name), nil
	}
	return name, nil
}
