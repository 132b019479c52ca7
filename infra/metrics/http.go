package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyakuten55/rikuso-demo/infra/logger"
)

const shutdownGrace = 5 * time.Second

// StartPromServer exposes the registered collectors under /metrics on addr and
// blocks until the context is canceled. A dedicated mux keeps the endpoint off
// the default ServeMux.
func StartPromServer(ctx context.Context, addr string) error {
	log := logger.New("metrics-server")
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("metrics server shutdown: %v", err)
		}
	}()

	log.Infof("serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
