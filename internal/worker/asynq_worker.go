package worker

import (
	"context"
	"errors"
	"time"

	"github.com/minishop/internal/events"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/provider"
	"github.com/minishop/internal/queue"
	"github.com/minishop/internal/service"

	"github.com/hibiken/asynq"
)

const (
	taskResultSuccess = "success"
	taskResultSkipped = "skipped"
	taskResultFailed  = "failed"
)

// OrderLoader 订单读取
type OrderLoader interface {
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
}

// TaskRecorder 任务指标记录
type TaskRecorder interface {
	ObserveTask(taskType, result string)
}

// Consumer 异步任务消费者
type Consumer struct {
	Orders    OrderLoader
	Publisher events.Publisher
	Recorder  TaskRecorder
	now       func() time.Time
}

// NewConsumer 由容器创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	consumer := &Consumer{now: time.Now}
	if c == nil {
		return consumer
	}
	consumer.Orders = c.OrderService
	consumer.Publisher = c.EventPublisher
	if c.Metrics != nil {
		consumer.Recorder = c.Metrics
	}
	return consumer
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
}

// handleOrderCreated 读取已提交的订单并发布订单创建事件
// 返回错误时由 asynq 按重试策略重新投递
func (c *Consumer) handleOrderCreated(ctx context.Context, task *asynq.Task) error {
	payload, err := queue.ParseOrderCreatedPayload(task)
	if err != nil {
		logger.Warnw("worker_order_created_invalid_payload", "error", err)
		c.observe(taskResultSkipped)
		return nil
	}
	if c.Orders == nil || c.Publisher == nil {
		logger.Warnw("worker_order_created_skip_unconfigured", "order_id", payload.OrderID)
		c.observe(taskResultSkipped)
		return nil
	}

	order, err := c.Orders.GetOrder(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debugw("worker_order_created_skip_order_not_found", "order_id", payload.OrderID)
			c.observe(taskResultSkipped)
			return nil
		}
		logger.Warnw("worker_order_created_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		c.observe(taskResultFailed)
		return err
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	event := events.NewOrderCreatedEvent(order, now())
	if err := c.Publisher.PublishOrderCreated(ctx, event); err != nil {
		logger.Warnw("worker_order_created_publish_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
		c.observe(taskResultFailed)
		return err
	}
	logger.Infow("worker_order_created_published", "order_id", order.ID, "order_no", order.OrderNo)
	c.observe(taskResultSuccess)
	return nil
}

func (c *Consumer) observe(result string) {
	if c.Recorder == nil {
		return
	}
	c.Recorder.ObserveTask(queue.TaskOrderCreated, result)
}
