// File: cmd/s3ls/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"s3ls/internal/config"
	"s3ls/internal/logger"
	"s3ls/internal/provider/factory"
)

func main() {
	cfgManager, err := config.NewConfigManager("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	cfg, err := cfgManager.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	log := logger.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	log.Debug("Configuration loaded", "path", cfgManager.ConfigPath())

	app := newApp(cfg, factory.NewFactory(cfg, log), log)
	os.Exit(Execute(context.Background(), app, os.Args[1:], os.Stdout, os.Stderr))
}
