package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/constants"
	"github.com/minishop/internal/models"

	"github.com/shopspring/decimal"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:          12,
		OrderNo:     "MS20260101000000123456",
		UserID:      7,
		Status:      constants.OrderStatusCreated,
		TotalAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("25.5")),
		ItemCount:   2,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEncodeMessageUsesOrderNoKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 5, 0, time.UTC)
	event := NewOrderCreatedEvent(sampleOrder(), now)

	msg, err := encodeMessage(event)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(msg.Key) != "MS20260101000000123456" {
		t.Fatalf("unexpected key %s", msg.Key)
	}
	if !msg.Time.Equal(now) {
		t.Fatalf("message time want %s got %s", now, msg.Time)
	}
	if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != constants.EventOrderCreated {
		t.Fatalf("unexpected headers: %+v", msg.Headers)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode value failed: %v", err)
	}
	if decoded["totalAmount"] != "25.50" || decoded["type"] != constants.EventOrderCreated {
		t.Fatalf("unexpected payload: %v", decoded)
	}
	if decoded["orderId"].(float64) != 12 || decoded["userId"].(float64) != 7 {
		t.Fatalf("unexpected ids in payload: %v", decoded)
	}
}

func TestNewPublisherFallsBackToLog(t *testing.T) {
	if _, ok := NewPublisher(nil).(LogPublisher); !ok {
		t.Fatalf("nil config should produce log publisher")
	}
	if _, ok := NewPublisher(&config.KafkaConfig{Enabled: false}).(LogPublisher); !ok {
		t.Fatalf("disabled kafka should produce log publisher")
	}
	if _, ok := NewPublisher(&config.KafkaConfig{Enabled: true, Brokers: []string{" ", ""}}).(LogPublisher); !ok {
		t.Fatalf("kafka without brokers should produce log publisher")
	}
	publisher := NewPublisher(&config.KafkaConfig{Enabled: true, Brokers: []string{"k1:9092,k2:9092"}, Topic: "orders"})
	kp, ok := publisher.(*KafkaPublisher)
	if !ok {
		t.Fatalf("enabled kafka should produce kafka publisher")
	}
	if kp.timeout != defaultWriteTimeout || kp.writer.Topic != "orders" {
		t.Fatalf("unexpected kafka publisher settings: timeout=%s topic=%s", kp.timeout, kp.writer.Topic)
	}
	if err := kp.Close(); err != nil {
		t.Fatalf("close kafka publisher failed: %v", err)
	}
}

func TestLogPublisher(t *testing.T) {
	p := LogPublisher{}
	if err := p.PublishOrderCreated(context.Background(), NewOrderCreatedEvent(sampleOrder(), time.Now())); err != nil {
		t.Fatalf("log publisher should not fail: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("log publisher close should not fail: %v", err)
	}
}

func TestNormalizeBrokers(t *testing.T) {
	got := normalizeBrokers([]string{" a:1 , b:2", "", "c:3"})
	if len(got) != 3 || got[0] != "a:1" || got[1] != "b:2" || got[2] != "c:3" {
		t.Fatalf("unexpected brokers: %v", got)
	}
}
