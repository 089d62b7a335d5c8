package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hava-distribution/catalog/config"
	"github.com/hava-distribution/catalog/internal/adapter/httphandler"
	"github.com/hava-distribution/catalog/internal/adapter/jsonstore"
	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/service"
	"github.com/hava-distribution/catalog/internal/observability/metrics"
	"github.com/hava-distribution/catalog/pkg/sigctx"
)

const serviceName = "catalog"

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	initLogger(cfg.LogLevel)

	catalog := loadCatalog(cfg.DataDir)
	svc := service.New(catalog, domain.DefaultHierarchy)

	m := metrics.NewHTTPServerMetrics(serviceName)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, svc, svc, m)
	httphandler.RegisterBrands(mux, svc)
	httphandler.RegisterCategories(mux, svc, m)
	httphandler.RegisterStats(mux, svc)
	httphandler.RegisterSmartFind(mux, svc, svc, m)
	mux.Handle("GET /metrics", m.Handler())

	handler := httphandler.AccessLog(m.Middleware(serviceName, mux))
	httpServer := httphandler.NewHTTPServer(cfg.HTTPServerAddr, handler)

	go httpServer.Run(closeApp)
	slog.Info("application is running", "addr", cfg.HTTPServerAddr)

	<-sigCtx.Done()
	slog.Info("application is closing...")

	shutdownCtx, cancelTimeout := context.WithTimeout(
		context.Background(), 10*time.Second,
	)
	defer cancelTimeout()

	httpServer.Close(shutdownCtx)

	slog.Info("application is closed")
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// The core cannot operate without the product collection: a failed load
// stops the process.
func loadCatalog(dir string) domain.Catalog {
	const op = "main.loadCatalog"

	c, err := jsonstore.Load(dir)
	if err != nil {
		die(op, err)
	}
	return c
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
