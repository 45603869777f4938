/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package editor

import (
	"time"

	"goslides/internal/config"
	"goslides/internal/undo"
)

// Config holds the canvas constants and policies the editor runs with.
type Config struct {
	BaselineWidth  float64
	BaselineHeight float64
	ElementWidth   float64
	ElementHeight  float64
	FontSize       float64
	Padding        float64
	Scaling        string
	InitialMode    string
	Undo           undo.Config
}

// DefaultConfig mirrors config.Defaults().
func DefaultConfig() Config { return ConfigFrom(config.Defaults()) }

// ConfigFrom extracts the editor settings from the application config.
func ConfigFrom(c config.AppConfig) Config {
	return Config{
		BaselineWidth:  c.Canvas.BaselineWidth,
		BaselineHeight: c.Canvas.BaselineHeight,
		ElementWidth:   c.Canvas.ElementWidth,
		ElementHeight:  c.Canvas.ElementHeight,
		FontSize:       c.Canvas.FontSize,
		Padding:        c.Canvas.Padding,
		Scaling:        c.Canvas.Scaling,
		InitialMode:    c.General.InitialMode,
		Undo: undo.Config{
			MaxBytes:    c.Undo.MaxBytes,
			MaxPerSlide: c.Undo.MaxPerSlide,
			MinInterval: time.Duration(c.Undo.MinIntervalMs) * time.Millisecond,
		},
	}
}

func (c Config) withDefaults() Config {
	d := config.Defaults().Canvas
	if c.BaselineWidth <= 0 {
		c.BaselineWidth = d.BaselineWidth
	}
	if c.BaselineHeight <= 0 {
		c.BaselineHeight = d.BaselineHeight
	}
	if c.ElementWidth <= 0 {
		c.ElementWidth = d.ElementWidth
	}
	if c.ElementHeight <= 0 {
		c.ElementHeight = d.ElementHeight
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.Padding < 0 {
		c.Padding = d.Padding
	}
	return c
}
