package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/clients/exchangerate"
	"github.com/habeeblht17/mcp-tools-server/internal/clients/openweather"
	"github.com/habeeblht17/mcp-tools-server/internal/clients/worldtime"
	"github.com/habeeblht17/mcp-tools-server/internal/config"
	"github.com/habeeblht17/mcp-tools-server/internal/metrics"
	"github.com/habeeblht17/mcp-tools-server/internal/server"
	"github.com/habeeblht17/mcp-tools-server/internal/tools"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	metrics.Init()
	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Port, log)
	}

	registry := tools.NewRegistry()
	tools.RegisterAllTools(registry, buildDeps(cfg, log))

	srv := server.New(cfg.App.Name, version, registry, log)
	log.Infow("Serving MCP over stdio", "tools", registry.List())

	if err := srv.Serve(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildDeps wires the upstream API clients into the tool dependency bundle.
// Missing credentials are expected states: the client still gets wired and
// reports the missing key per invocation without calling out.
func buildDeps(cfg *config.Config, log *logger.Logger) shared.Deps {
	if !cfg.Weather.HasAPIKey() {
		log.Warn("OPENWEATHER_API_KEY not set; get_weather will report a configuration error")
	}
	if !cfg.Currency.HasAPIKey() {
		log.Warn("EXCHANGERATE_API_KEY not set; convert_currency will report a configuration error")
	}

	return shared.Deps{
		Weather:   openweather.New(cfg.Weather),
		Currency:  exchangerate.New(cfg.Currency),
		WorldTime: worldtime.New(cfg.WorldTime),
		Now:       time.Now,
		Log:       log,
	}
}

func serveMetrics(port int, log *logger.Logger) {
	addr := fmt.Sprintf(":%d", port)
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	log.Infow("Metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorw("Metrics listener stopped", "error", err)
	}
}
