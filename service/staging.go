package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// StagedFile 上传请求期间的临时落盘文件。
// 调用方必须在所有返回路径上调用 Release（defer）。
type StagedFile struct {
	path   string
	logger *logrus.Logger
}

// stageFile 把上传内容完整写入 dir 下一个随机命名的临时文件。
// 文件名带 16 字节加密随机后缀，并发上传共享同一临时目录也不会冲突。
func stageFile(dir string, data []byte, logger *logrus.Logger) (*StagedFile, error) {
	suffix := make([]byte, 16)
	if _, err := rand.Read(suffix); err != nil {
		return nil, fmt.Errorf("failed to generate staging filename: %w", err)
	}
	path := filepath.Join(dir, "upload-"+hex.EncodeToString(suffix)+".mp4")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	return &StagedFile{path: path, logger: logger}, nil
}

func (f *StagedFile) Path() string {
	return f.path
}

// Release 删除临时文件。可重复调用；删除失败只记日志，
// 不能覆盖调用方的主结果。
func (f *StagedFile) Release() {
	if f == nil || f.path == "" {
		return
	}
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) && f.logger != nil {
		f.logger.WithError(err).WithField("path", f.path).Warn("failed to remove staged file")
	}
	f.path = ""
}
