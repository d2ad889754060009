package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"GopherVR/internal/config"
	"GopherVR/internal/injector"
	"GopherVR/internal/logger"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are used when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.InitWithConfig(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Log.Info("Starting GopherVR", zap.String("config", *configPath))

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		logger.Log.Error("Could not set up the scene", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		logger.Log.Error("Engine stopped with an error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
