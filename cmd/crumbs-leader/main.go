// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// crumbs-leader sends CRUMBS messages to, and requests them from,
// peripherals on an I²C bus. Commands are read from stdin, one per line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/FEASTorg/crumbs/internal/config"
	"github.com/FEASTorg/crumbs/internal/log"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file")
	busName := flag.String("bus", "", "I²C bus to use, overrides the configuration file")
	level := flag.String("log", "", "Log level, overrides the configuration file")
	noColor := flag.Bool("nocolor", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *busName != "" {
		cfg.Bus = *busName
	}
	if *level != "" {
		cfg.Log = *level
	}
	color := *cfg.Color && !*noColor

	logger := log.NewLogger(cfg.Log, color)

	if _, err := host.Init(); err != nil {
		logger.Fatal("Failed to initialize host: %v", err)
	}
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		logger.Fatal("Failed to open I2C bus %q: %v", cfg.Bus, err)
	}
	defer bus.Close()
	if f, err := cfg.Frequency(); err == nil {
		if err := bus.SetSpeed(f); err != nil {
			logger.Warn("Failed to set bus speed to %s: %v", f, err)
		}
	}
	logger.Info("I2C bus %s opened as leader.", bus)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := &leader{bus: bus, cfg: cfg, log: logger, out: os.Stdout}
	if color {
		l.strip = newStrip(colorable.NewColorableStdout(), nil)
	}
	if err := l.run(ctx, os.Stdin); err != nil {
		logger.Error("Error reading commands: %v", err)
	}
	logger.Info("Exiting.")
}
