package worker

import (
	"context"
	"errors"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/queue"

	"github.com/hibiken/asynq"
)

// ErrQueueDisabled 队列未启用时无法启动 worker
var ErrQueueDisabled = errors.New("queue disabled")

// Service 订单任务消费服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	queues map[string]int
}

// NewService 创建 worker 服务，consumer 负责注册具体任务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, ErrQueueDisabled
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}

	opt, serverCfg := queue.BuildServerConfig(cfg)
	serverCfg.Logger = logger.S()
	serverCfg.ErrorHandler = asynq.ErrorHandlerFunc(logTaskFailure)
	serverCfg.HealthCheckFunc = func(err error) {
		if err != nil {
			logger.Warnw("worker_redis_unhealthy", "error", err)
		}
	}

	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server: asynq.NewServer(opt, serverCfg),
		mux:    mux,
		queues: serverCfg.Queues,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 阻塞运行直到 Stop 被调用
func (s *Service) Start(_ context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	logger.Infow("worker_start", "queues", s.queues)
	return s.server.Run(s.mux)
}

// Stop 等待进行中的任务结束后退出
func (s *Service) Stop(_ context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}

func logTaskFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	taskID, _ := asynq.GetTaskID(ctx)
	logger.Warnw("worker_task_failed",
		"task_type", task.Type(),
		"task_id", taskID,
		"retried", retried,
		"max_retry", maxRetry,
		"error", err,
	)
}
