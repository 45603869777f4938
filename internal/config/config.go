/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are read-only overrides applied at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type GeneralConfig struct {
	// InitialMode is "display" (the default; both mode buttons start enabled) or "edit".
	InitialMode string `yaml:"initial_mode"`
}

type CanvasConfig struct {
	BaselineWidth  float64 `yaml:"baseline_width"`
	BaselineHeight float64 `yaml:"baseline_height"`
	ElementWidth   float64 `yaml:"element_width"`
	ElementHeight  float64 `yaml:"element_height"`
	FontSize       float64 `yaml:"font_size"`
	Padding        float64 `yaml:"padding"`
	// Scaling is "baseline" (rescale from unscaled bounds) or "cumulative" (legacy delta rescaling).
	Scaling string `yaml:"scaling"`
}

type WindowConfig struct {
	SidebarWidth float64 `yaml:"sidebar_width"`
	Title        string  `yaml:"title"`
}

type UndoConfig struct {
	MaxBytes      int `yaml:"max_bytes"`
	MaxPerSlide   int `yaml:"max_per_slide"`
	MinIntervalMs int `yaml:"min_interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Window        WindowConfig  `yaml:"window"`
	Undo          UndoConfig    `yaml:"undo"`
	Logging       LoggingConfig `yaml:"logging"`
}

const (
	ModeDisplay = "display"
	ModeEdit    = "edit"

	ScalingBaseline   = "baseline"
	ScalingCumulative = "cumulative"
)

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{InitialMode: ModeDisplay},
		Canvas: CanvasConfig{
			BaselineWidth:  800,
			BaselineHeight: 600,
			ElementWidth:   200,
			ElementHeight:  30,
			FontSize:       24,
			Padding:        20,
			Scaling:        ScalingBaseline,
		},
		Window:  WindowConfig{SidebarWidth: 150, Title: "Simple Slide Editor"},
		Undo:    UndoConfig{MaxBytes: 8 * 1024 * 1024, MaxPerSlide: 50, MinIntervalMs: 0},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvInitialMode = "GOSLIDES_INITIAL_MODE"
	EnvScaling     = "GOSLIDES_SCALING"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "GOSLIDES_LOG_LEVEL"
	EnvLogFormat = "GOSLIDES_LOG_FORMAT"
	EnvLogSource = "GOSLIDES_LOG_SOURCE"
	EnvLogFile   = "GOSLIDES_LOG_FILE"
)

// ErrInvalidConfig marks a config file that failed schema validation.
var ErrInvalidConfig = errors.New("invalid config file")

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoSlides")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoSlides")
	default:
		home := os.Getenv("HOME")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "goslides")
		} else if home != "" {
			base = filepath.Join(home, ".config", "goslides")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
// If the file fails validation it is skipped and the returned error wraps ErrInvalidConfig;
// the returned config is still complete and usable in that case.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	var fileErr error
	if data, rerr := os.ReadFile(path); rerr == nil {
		if verr := Validate(data); verr != nil {
			fileErr = fmt.Errorf("%s: %w", path, verr)
		} else {
			var fileCfg AppConfig
			if uerr := yaml.Unmarshal(data, &fileCfg); uerr == nil {
				mergeInto(&cfg, &fileCfg)
			}
		}
	}
	applyEnvOverrides(&cfg)
	normalize(&cfg)
	return cfg, fileErr
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// WriteDefaultsIfMissing creates the user config file with default values on
// first run, so there is a file to edit. An existing file is left untouched.
func WriteDefaultsIfMissing() (path string, created bool, err error) {
	path, err = ConfigPath()
	if err != nil {
		return "", false, err
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		return path, false, statErr
	}
	if err := Save(Defaults()); err != nil {
		return path, false, err
	}
	return path, true, nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if v := strings.TrimSpace(src.General.InitialMode); v != "" {
		dst.General.InitialMode = strings.ToLower(v)
	}
	mergeFloat(&dst.Canvas.BaselineWidth, src.Canvas.BaselineWidth)
	mergeFloat(&dst.Canvas.BaselineHeight, src.Canvas.BaselineHeight)
	mergeFloat(&dst.Canvas.ElementWidth, src.Canvas.ElementWidth)
	mergeFloat(&dst.Canvas.ElementHeight, src.Canvas.ElementHeight)
	mergeFloat(&dst.Canvas.FontSize, src.Canvas.FontSize)
	mergeFloat(&dst.Canvas.Padding, src.Canvas.Padding)
	if v := strings.TrimSpace(src.Canvas.Scaling); v != "" {
		dst.Canvas.Scaling = strings.ToLower(v)
	}
	mergeFloat(&dst.Window.SidebarWidth, src.Window.SidebarWidth)
	if v := strings.TrimSpace(src.Window.Title); v != "" {
		dst.Window.Title = v
	}
	if src.Undo.MaxBytes > 0 {
		dst.Undo.MaxBytes = src.Undo.MaxBytes
	}
	if src.Undo.MaxPerSlide > 0 {
		dst.Undo.MaxPerSlide = src.Undo.MaxPerSlide
	}
	if src.Undo.MinIntervalMs > 0 {
		dst.Undo.MinIntervalMs = src.Undo.MinIntervalMs
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func mergeFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvInitialMode)); v != "" {
		cfg.General.InitialMode = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvScaling)); v != "" {
		cfg.Canvas.Scaling = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// normalize replaces unknown enum values coming from the environment with defaults.
func normalize(cfg *AppConfig) {
	d := Defaults()
	switch cfg.General.InitialMode {
	case ModeDisplay, ModeEdit:
	default:
		cfg.General.InitialMode = d.General.InitialMode
	}
	switch cfg.Canvas.Scaling {
	case ScalingBaseline, ScalingCumulative:
	default:
		cfg.Canvas.Scaling = d.Canvas.Scaling
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	if b, err := strconv.ParseBool(lv); err == nil {
		return b
	}
	return lv == "on" || lv == "yes"
}

// OverridableKeys lists the config keys that have an environment override.
var OverridableKeys = []string{
	"general.initial_mode",
	"canvas.scaling",
	"logging.level",
	"logging.format",
	"logging.source",
	"logging.file",
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "general.initial_mode":
		env = EnvInitialMode
	case "canvas.scaling":
		env = EnvScaling
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}
