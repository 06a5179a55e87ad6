package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/constants"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	Type        string       `json:"type"`
	OrderID     uint         `json:"orderId"`
	OrderNo     string       `json:"orderNo"`
	UserID      uint         `json:"userId"`
	TotalAmount models.Money `json:"totalAmount"`
	ItemCount   int          `json:"itemCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	PublishedAt time.Time    `json:"publishedAt"`
}

// NewOrderCreatedEvent 由订单构建事件
func NewOrderCreatedEvent(order *models.Order, now time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{
		Type:        constants.EventOrderCreated,
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		ItemCount:   order.ItemCount,
		CreatedAt:   order.CreatedAt.UTC(),
		PublishedAt: now.UTC(),
	}
}

// Publisher 订单事件发布
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	Close() error
}

// NewPublisher 按配置创建发布器，未启用 Kafka 时仅记录日志
func NewPublisher(cfg *config.KafkaConfig) Publisher {
	if cfg == nil || !cfg.Enabled {
		return LogPublisher{}
	}
	brokers := normalizeBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		logger.Warnw("kafka_publisher_no_brokers", "fallback", "log")
		return LogPublisher{}
	}
	timeout := defaultWriteTimeout
	if cfg.WriteTimeoutMS > 0 {
		timeout = time.Duration(cfg.WriteTimeoutMS) * time.Millisecond
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        strings.TrimSpace(cfg.Topic),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: timeout,
		},
		timeout: timeout,
	}
}

// KafkaPublisher 基于 kafka-go 的发布器
type KafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// PublishOrderCreated 以订单号为 key 写入，保证同一订单的事件有序
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	msg, err := encodeMessage(event)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("kafka: write order event failed: %w", err)
	}
	return nil
}

// Close 关闭 writer
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// LogPublisher 仅输出日志
type LogPublisher struct{}

// PublishOrderCreated 记录事件
func (LogPublisher) PublishOrderCreated(_ context.Context, event OrderCreatedEvent) error {
	logger.Infow("order_event_logged",
		"type", event.Type,
		"order_id", event.OrderID,
		"order_no", event.OrderNo,
		"user_id", event.UserID,
		"total_amount", event.TotalAmount.String(),
	)
	return nil
}

// Close 无需释放资源
func (LogPublisher) Close() error {
	return nil
}

func encodeMessage(event OrderCreatedEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: marshal order event failed: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.OrderNo),
		Value: data,
		Time:  event.PublishedAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

func normalizeBrokers(brokers []string) []string {
	result := make([]string, 0, len(brokers))
	for _, entry := range brokers {
		for _, b := range strings.Split(entry, ",") {
			b = strings.TrimSpace(b)
			if b != "" {
				result = append(result, b)
			}
		}
	}
	return result
}
