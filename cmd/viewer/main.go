package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"Scene3D/internal/config"
	"Scene3D/internal/engine"
	"Scene3D/internal/logger"

	"go.uber.org/zap"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML file overriding the built-in settings")
	debug := flag.Bool("debug", false, "enable debug logging")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Error("Could not load configuration", zap.String("path", *configPath), zap.Error(err))
		return 1
	}
	logger.SetDebug(*debug || cfg.Debug)

	if *dumpConfig {
		data, err := config.Encode(cfg)
		if err != nil {
			logger.Log.Error("Could not encode configuration", zap.Error(err))
			return 1
		}
		fmt.Print(string(data))
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Scene3D starting", zap.String("config", *configPath))
	if err := engine.New(cfg).Run(ctx); err != nil {
		logger.Log.Error("Viewer failed", zap.Error(err))
		return 1
	}
	return 0
}
