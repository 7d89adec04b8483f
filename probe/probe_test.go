package probe

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFProbeMissingBinary(t *testing.T) {
	p := NewFFProbe("/nonexistent/ffprobe")
	_, err := p.Probe(context.Background(), "whatever.mp4")
	assert.Error(t, err)
}

func TestFFProbeUnparseableOutput(t *testing.T) {
	// echo 成功退出但输出不是 ffprobe 的 JSON
	p := NewFFProbe("echo")
	_, err := p.Probe(context.Background(), "whatever.mp4")
	assert.ErrorContains(t, err, "parse")
}

func TestFFProbeOutputDecoding(t *testing.T) {
	raw := `{"streams":[{"codec_type":"video","width":1920,"height":1080}]}`
	var out ffprobeOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.Len(t, out.Streams, 1)
	assert.Equal(t, "video", out.Streams[0].CodecType)
	assert.Equal(t, 1920, out.Streams[0].Width)
	assert.Equal(t, 1080, out.Streams[0].Height)
}
