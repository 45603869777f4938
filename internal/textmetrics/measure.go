/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textmetrics measures rendered text width for live element auto-sizing.
// The application uses a single fixed font family (Go Regular); the UI theme
// renders with the same TTF so measured widths match what is drawn.
package textmetrics

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FamilyName is the logical name of the one font family the editor uses.
const FamilyName = "Go Regular"

// Measurer returns the advance width in pixels of text set at size.
type Measurer interface {
	Width(text string, size float64) float64
}

// FaceMeasurer measures with OpenType faces of a single font, cached per size.
// It is safe for concurrent use.
type FaceMeasurer struct {
	font *opentype.Font
	dpi  float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer parses TTF/OTF data. dpi defaults to 72 so one point equals one pixel.
func NewFaceMeasurer(data []byte, dpi float64) (*FaceMeasurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if dpi <= 0 {
		dpi = 72
	}
	return &FaceMeasurer{font: f, dpi: dpi, faces: make(map[float64]font.Face)}, nil
}

var (
	defaultOnce sync.Once
	defaultM    Measurer
)

// Default returns the Go Regular measurer, falling back to BasicMeasurer if the
// embedded font cannot be parsed.
func Default() Measurer {
	defaultOnce.Do(func() {
		m, err := NewFaceMeasurer(goregular.TTF, 72)
		if err != nil {
			defaultM = BasicMeasurer{}
			return
		}
		defaultM = m
	})
	return defaultM
}

// FontTTF exposes the raw font bytes so the UI can render with the same font.
func FontTTF() []byte { return goregular.TTF }

func (m *FaceMeasurer) Width(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	if size <= 0 || math.IsNaN(size) {
		size = 12
	}
	face, err := m.face(size)
	if err != nil {
		return BasicMeasurer{}.Width(text, size)
	}
	m.mu.Lock()
	adv := font.MeasureString(face, text)
	m.mu.Unlock()
	return fixedToFloat(adv)
}

// faceStep is the size granularity of cached faces; resizing the canvas produces
// a new fractional font size on nearly every step.
const faceStep = 0.5

func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	size = math.Max(faceStep, math.Round(size/faceStep)*faceStep)
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{Size: size, DPI: m.dpi, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// BasicMeasurer uses basicfont.Face7x13 and ignores size. Deterministic, for tests.
type BasicMeasurer struct{}

func (BasicMeasurer) Width(text string, _ float64) float64 {
	return fixedToFloat(font.MeasureString(basicfont.Face7x13, text))
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
