package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/RigelNana/arkvideo/config"
	"github.com/RigelNana/arkvideo/models"
	"github.com/RigelNana/arkvideo/pkg/metrics"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// uploadedEvent 发布到 Kafka 的上传完成消息，下游转码/分析服务消费
type uploadedEvent struct {
	VideoID        string `json:"video_id"`
	UserID         string `json:"user_id"`
	ObjectKey      string `json:"object_key"`
	Classification string `json:"classification"`
	SizeBytes      int64  `json:"size_bytes"`
}

type EventPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *logrus.Logger
}

// NewEventPublisher 未配置 broker 时返回 nil，调用处做 nil 判断即可
func NewEventPublisher(cfg config.KafkaConfig, logger *logrus.Logger) *EventPublisher {
	if cfg.Brokers == "" || cfg.Topic == "" {
		logger.Info("kafka publisher disabled (missing config)")
		return nil
	}
	w := &kafka.Writer{
		Addr:     kafka.TCP(splitBrokers(cfg.Brokers)...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &EventPublisher{writer: w, topic: cfg.Topic, logger: logger}
}

// PublishUploaded 尽力而为：发布失败只记日志，不影响上传结果
func (p *EventPublisher) PublishUploaded(ctx context.Context, video *models.Video) {
	if p == nil {
		return
	}
	evt := uploadedEvent{
		VideoID:        video.ID.String(),
		UserID:         video.UserID.String(),
		ObjectKey:      video.ObjectKey,
		Classification: video.Classification,
		SizeBytes:      video.SizeBytes,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.WithError(err).Error("failed to marshal uploaded event")
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.VideoID),
		Value: payload,
	})
	if err != nil {
		metrics.KafkaMessagesTotal.WithLabelValues("arkvideo", p.topic, "error").Inc()
		p.logger.WithError(err).WithField("video_id", evt.VideoID).Warn("failed to publish uploaded event")
		return
	}
	metrics.KafkaMessagesTotal.WithLabelValues("arkvideo", p.topic, "ok").Inc()
}

func (p *EventPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
