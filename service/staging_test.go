package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestStageFileWritesPayload(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("fake mp4 payload")

	staged, err := stageFile(dir, payload, testLogger())
	require.NoError(t, err)
	defer staged.Release()

	assert.True(t, strings.HasPrefix(filepath.Base(staged.Path()), "upload-"))
	assert.Equal(t, dir, filepath.Dir(staged.Path()))

	got, err := os.ReadFile(staged.Path())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStagedFileRelease(t *testing.T) {
	dir := t.TempDir()
	staged, err := stageFile(dir, []byte("data"), testLogger())
	require.NoError(t, err)

	path := staged.Path()
	staged.Release()

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "staged file must be gone after release")
}

func TestStagedFileReleaseIdempotent(t *testing.T) {
	dir := t.TempDir()
	staged, err := stageFile(dir, []byte("data"), testLogger())
	require.NoError(t, err)

	staged.Release()
	staged.Release() // 第二次调用不 panic 不报错
}

func TestStagedFileReleasedOnFailurePath(t *testing.T) {
	dir := t.TempDir()

	// 模拟暂存之后的步骤失败：defer 的 Release 仍要清掉文件
	var path string
	func() {
		staged, err := stageFile(dir, []byte("data"), testLogger())
		require.NoError(t, err)
		defer staged.Release()
		path = staged.Path()
		// 这里假装 probe/上传失败并提前返回
	}()

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStagedFileNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		staged, err := stageFile(dir, []byte("x"), testLogger())
		require.NoError(t, err)
		assert.False(t, seen[staged.Path()])
		seen[staged.Path()] = true
		staged.Release()
	}
}
