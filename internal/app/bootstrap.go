package app

import (
	"errors"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/provider"
	"github.com/minishop/internal/router"
	"github.com/minishop/internal/worker"

	"gorm.io/gorm"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}

	mode, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	// 初始化 Worker 服务，all 模式下队列未启用时跳过
	if mode == ModeWorker || (mode == ModeAll && cfg.Queue.Enabled) {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options, db *gorm.DB) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}
	if db == nil {
		return errors.New("db is nil")
	}

	container := provider.NewContainer(opts.Config, db)
	defer container.Close()

	runner, err := BuildRunner(opts.Config, container, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode, "queue_enabled", opts.Config.Queue.Enabled)
	return RunWithOptions(runner, opts)
}
