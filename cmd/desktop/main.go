package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"AeroLab/internal/desktop"

	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	paths := []string{"."}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}
	cfg, err := desktop.LoadConfig(paths...)
	if err != nil {
		logger.Fatal("config error", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	launcher := desktop.NewLauncher(cfg, logger)
	if err := launcher.Run(ctx); err != nil {
		logger.Fatal("launcher failed", zap.Error(err))
	}
}
