package service

import (
	"strings"
	"testing"

	"github.com/RigelNana/arkvideo/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObjectKeyClassificationPrefix(t *testing.T) {
	key, err := generateObjectKey(probe.ClassificationLandscape)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "landscape/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))

	// 32 字节随机数的 hex 编码是 64 个字符
	name := strings.TrimSuffix(strings.TrimPrefix(key, "landscape/"), ".mp4")
	assert.Len(t, name, 64)
}

func TestGenerateObjectKeyWithoutClassification(t *testing.T) {
	key, err := generateObjectKey("")
	require.NoError(t, err)
	assert.NotContains(t, key, "/")
	assert.True(t, strings.HasSuffix(key, ".mp4"))
}

func TestGenerateObjectKeyPairwiseDistinct(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		key, err := generateObjectKey(probe.ClassificationOther)
		require.NoError(t, err)
		require.False(t, seen[key], "generated keys must not collide")
		seen[key] = true
	}
}
