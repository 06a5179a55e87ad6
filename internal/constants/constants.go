package constants

// 订单状态常量
const (
	OrderStatusCreated = "created"
)

// 订单编号前缀
const OrderNoPrefix = "MS"

// 队列与任务常量
const (
	QueueDefault     = "default"
	QueueCritical    = "critical"
	TaskOrderCreated = "order:created"
)

// 订单事件类型
const (
	EventOrderCreated = "order.created"
)

// 上下文 key
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyExpiresAt = "token_expires_at"
)
