package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// StreamInfo 视频流的宽高信息
type StreamInfo struct {
	Width  int
	Height int
}

// Prober 媒体探测能力，可在测试中替换为假实现
type Prober interface {
	Probe(ctx context.Context, path string) (StreamInfo, error)
}

// FFProbe 调用外部 ffprobe 可执行文件提取流信息
type FFProbe struct {
	BinaryPath string
}

func NewFFProbe(binaryPath string) *FFProbe {
	if binaryPath == "" {
		binaryPath = "ffprobe"
	}
	return &FFProbe{BinaryPath: binaryPath}
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func (p *FFProbe) Probe(ctx context.Context, path string) (StreamInfo, error) {
	cmd := exec.CommandContext(ctx, p.BinaryPath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_type,width,height",
		"-of", "json",
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return StreamInfo{}, fmt.Errorf("ffprobe failed: %w: %s", err, stderr.String())
	}

	var out ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return StreamInfo{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	for _, s := range out.Streams {
		if s.CodecType != "video" {
			continue
		}
		if s.Width <= 0 || s.Height <= 0 {
			return StreamInfo{}, fmt.Errorf("ffprobe returned invalid dimensions %dx%d", s.Width, s.Height)
		}
		return StreamInfo{Width: s.Width, Height: s.Height}, nil
	}
	return StreamInfo{}, fmt.Errorf("no video stream found in %s", path)
}
