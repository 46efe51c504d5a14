package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prompthub-go/internal/config"
	"prompthub-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 提示词事件动作
const (
	PromptActionUpsert = "upsert"
	PromptActionDelete = "delete"
)

// PromptEvent 提示词变更事件消息体，由索引同步 worker 消费
type PromptEvent struct {
	PromptID int64  `json:"prompt_id"`
	Action   string `json:"action"`
	Reason   string `json:"reason,omitempty"` // created / liked / favorited ...
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// Ready 生产者是否已初始化
func Ready() bool {
	return producer != nil
}

// SendPromptEvent 发送提示词变更事件到 Kafka
func SendPromptEvent(ctx context.Context, topic string, event *PromptEvent) error {
	if producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal prompt event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("prompt-%d", event.PromptID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send prompt event: %w", err)
	}

	logger.Debug("Prompt event sent",
		zap.Int64("prompt_id", event.PromptID),
		zap.String("action", event.Action),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭 Kafka 生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
