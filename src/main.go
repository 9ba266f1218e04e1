package main

import (
	_ "Mergington-Activities/docs"
	"Mergington-Activities/src/config"
	"Mergington-Activities/src/logger"
	"Mergington-Activities/src/server"
	"Mergington-Activities/src/services/activities"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// สร้าง registry จากข้อมูลกิจกรรมเริ่มต้น
	registry, err := activities.NewSeededRegistry()
	if err != nil {
		zlog.Fatal("failed to seed activities", zap.Error(err))
	}
	zlog.Info("✅ activities loaded", zap.Strings("activities", registry.Names()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := server.New(cfg, zlog, registry, reg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	zlog.Info("Server is running", zap.String("addr", cfg.App.Addr()))
	if err := app.Listen(cfg.App.Addr()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
