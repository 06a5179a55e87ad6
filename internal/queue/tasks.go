package queue

import (
	"encoding/json"
	"fmt"

	"github.com/minishop/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderCreated 订单创建后处理任务
const TaskOrderCreated = constants.TaskOrderCreated

// OrderCreatedPayload 订单创建任务载荷
type OrderCreatedPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	UserID  uint   `json:"user_id"`
}

// NewOrderCreatedTask 创建订单创建任务
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	if payload.OrderID == 0 {
		return nil, fmt.Errorf("order created task requires order id")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}

// ParseOrderCreatedPayload 解析订单创建任务载荷
func ParseOrderCreatedPayload(task *asynq.Task) (OrderCreatedPayload, error) {
	var payload OrderCreatedPayload
	if task == nil {
		return payload, fmt.Errorf("nil task")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	if payload.OrderID == 0 {
		return payload, fmt.Errorf("order created payload missing order id")
	}
	return payload, nil
}
