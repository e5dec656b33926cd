package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/config"
	"github.com/locey/BurnWin/service/svc"
)

const shutdownTimeout = 15 * time.Second

type Platform struct {
	config    *config.Config
	server    *http.Server
	serverCtx *svc.ServerCtx
}

func NewPlatform(config *config.Config, router *gin.Engine, serverCtx *svc.ServerCtx) (*Platform, error) {
	if config == nil || router == nil || serverCtx == nil {
		return nil, errors.New("platform needs config, router and server context")
	}
	return &Platform{
		config: config,
		server: &http.Server{
			Addr:              config.Api.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		serverCtx: serverCtx,
	}, nil
}

// Start 运行http服务直到ctx结束，然后优雅退出
func (p *Platform) Start(ctx context.Context) error {
	xzap.WithContext(ctx).Info("BurnWin verifier run",
		zap.String("port", p.config.Api.Port),
		zap.Bool("mock_mode", p.serverCtx.Orchestrator.MockMode()))

	errCh := make(chan error, 1)
	go func() {
		if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		p.serverCtx.Close()
		return errors.Wrap(err, "http server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := p.server.Shutdown(shutdownCtx)
	p.serverCtx.Close()
	xzap.WithContext(ctx).Info("BurnWin verifier stopped")
	return err
}
