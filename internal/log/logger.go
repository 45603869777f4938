/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log provides centralized slog-based logging for the application:
// a human-friendly console handler, an optional JSON console format, and an
// optional rotating JSON file sink, fanned out behind one slog.Logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"goslides/internal/version"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Values can be provided directly or via environment variables:
//   - GOSLIDES_LOG_LEVEL=debug|info|warn|error
//   - GOSLIDES_LOG_FORMAT=console|json
//   - GOSLIDES_LOG_FILE=<path> (enables rotated file logging)
//   - GOSLIDES_LOG_SOURCE=true|false
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string
	// Console overrides the console sink; nil means os.Stderr.
	Console io.Writer
}

var (
	mu       sync.RWMutex
	current  *slog.Logger
	level    = new(slog.LevelVar)
	fileSink *lj.Logger
)

// L returns the application logger, initializing from env on first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Init configures the global logger and installs it as slog.Default.
// Calling Init again replaces the logger and closes a previous file sink.
func Init(opts Options) *slog.Logger {
	level.Set(parseLevel(opts.Level))
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(console, &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}))
	} else {
		handlers = append(handlers, &prettyTextHandler{opts: prettyOpts{Level: level, AddSource: opts.AddSource}, w: console, mu: &sync.Mutex{}})
	}

	var sink *lj.Logger
	if f := strings.TrimSpace(opts.File); f != "" {
		sink = &lj.Logger{Filename: f, MaxSize: 5, MaxBackups: 3, MaxAge: 14, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = fanout(handlers...)
	}
	logger := slog.New(h).With(
		slog.String("app", "goslides"),
		slog.String("ver", version.Version),
	)

	mu.Lock()
	old := fileSink
	current = logger
	fileSink = sink
	mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	slog.SetDefault(logger)
	return logger
}

// Close flushes and closes the rotating file sink, if any.
func Close() error {
	mu.Lock()
	s := fileSink
	fileSink = nil
	mu.Unlock()
	if s == nil {
		return nil
	}
	return s.Close()
}

// SetLevel changes the minimum level of the active logger at runtime.
func SetLevel(s string) { level.Set(parseLevel(s)) }

// FromEnv builds Options from environment variables.
func FromEnv() Options {
	return Options{
		Level:     getenv("GOSLIDES_LOG_LEVEL", "info"),
		Format:    getenv("GOSLIDES_LOG_FORMAT", "console"),
		AddSource: strings.EqualFold(getenv("GOSLIDES_LOG_SOURCE", "false"), "true"),
		File:      os.Getenv("GOSLIDES_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation annotates the logger with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
