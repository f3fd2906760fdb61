// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package log is the console logger of the crumbs-leader command.
package log

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// Logger prints leveled, printf style messages to the console.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger returns a Logger writing to stdout at level. An unknown level
// falls back to info.
func NewLogger(level string, color bool) *Logger {
	var out io.Writer = colorable.NewColorableStdout()
	if !color {
		out = colorable.NewNonColorable(out)
	}
	return New(out, level, color)
}

// New returns a Logger writing to out.
func New(out io.Writer, level string, color bool) *Logger {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		if err != nil {
			fmt.Fprintf(out, "Invalid log level '%s', defaulting to 'info'\n", level)
		}
		logLevel = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
	}

	zlog := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	return &Logger{zlog: zlog}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.zlog.Debug().Msgf(msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.zlog.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.zlog.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.zlog.Error().Msgf(msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.zlog.Fatal().Msgf(msg, args...)
}

// Frame logs a CRUMBS frame exchanged with the peripheral at addr.
func (l *Logger) Frame(dir string, addr uint16, frame []byte) {
	l.zlog.Debug().
		Str("dir", dir).
		Str("addr", fmt.Sprintf("%#04x", addr)).
		Hex("frame", frame).
		Msg("frame")
}
