package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/foodie-app/internal/config"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/provider"
	"github.com/foodie-app/internal/router"
	"github.com/foodie-app/internal/worker"

	"go.uber.org/zap"
)

const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// normalizeOptions 补齐默认参数
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}

// App 应用实例：一个 HTTP 服务，外加可选的队列 worker。
type App struct {
	httpServer *http.Server
	worker     *worker.Service
	logger     *zap.SugaredLogger
}

// Build 按模式装配应用
func Build(opts Options) (*App, error) {
	opts = normalizeOptions(opts)
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	a := &App{logger: opts.Logger}

	if opts.Mode == ModeAll || opts.Mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		a.httpServer = &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: engine,
		}
	}

	// 队列未启用时跳过 worker
	if (opts.Mode == ModeAll || opts.Mode == ModeWorker) && cfg.Queue.Enabled {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		a.worker = workerService
	}

	if a.httpServer == nil && a.worker == nil {
		return nil, errors.New("nothing to run (check mode and queue config)")
	}
	return a, nil
}

// HTTPAddr 返回 HTTP 监听地址，未启用 HTTP 时为空
func (a *App) HTTPAddr() string {
	if a == nil || a.httpServer == nil {
		return ""
	}
	return a.httpServer.Addr
}

// WorkerEnabled 是否装配了队列 worker
func (a *App) WorkerEnabled() bool {
	return a != nil && a.worker != nil
}

// Run 应用启动入口：装配、监听信号、运行到退出。
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	a, err := Build(opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}

	opts.Logger.Infow("app_start", "addr", a.HTTPAddr(), "mode", opts.Mode, "worker", a.WorkerEnabled())
	return a.run(ctx, opts.ShutdownTimeout)
}

// run 运行到收到信号或任一部件出错，然后限时停机。
func (a *App) run(ctx context.Context, stopTimeout time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)

	if a.httpServer != nil {
		go func() {
			a.logger.Infow("http_listen", "addr", a.httpServer.Addr)
			err := a.httpServer.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errCh <- err
		}()
	}

	if a.worker != nil {
		go func() {
			a.logger.Infow("worker_start")
			errCh <- a.worker.Start(ctx)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(stopCtx); err != nil {
			a.logger.Errorw("http_shutdown_failed", "error", err)
		}
	}
	if a.worker != nil {
		if err := a.worker.Stop(stopCtx); err != nil {
			a.logger.Errorw("worker_stop_failed", "error", err)
		}
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
