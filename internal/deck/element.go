/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package deck

import (
	"math"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle in slide-local pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.Width && y <= r.Y+r.Height
}

// Scale multiplies position and size by sx, sy.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// Trunc drops the fractional part of every field, like an int cast.
func (r Rect) Trunc() Rect {
	return Rect{X: math.Trunc(r.X), Y: math.Trunc(r.Y), Width: math.Trunc(r.Width), Height: math.Trunc(r.Height)}
}

// Phase tags which variant an Element currently is.
type Phase int

const (
	// PhaseEditable is a text-entry field whose text can change.
	PhaseEditable Phase = iota
	// PhaseCommitted is a display-only label; clicking it in edit mode re-enters PhaseEditable.
	PhaseCommitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditable:
		return "editable"
	case PhaseCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Element is a positioned text item. Both phases share ID, Bounds and FontSize,
// so swapping phase is a single in-place replacement in the owning list.
type Element struct {
	ID       string  `json:"id"`
	Phase    Phase   `json:"phase"`
	Text     string  `json:"text"`
	Bounds   Rect    `json:"bounds"`
	FontSize float64 `json:"fontSize"`
}

// NewEditable returns an empty editable element with a fresh ID.
func NewEditable(bounds Rect, fontSize float64) Element {
	return Element{ID: uuid.NewString(), Phase: PhaseEditable, Bounds: bounds, FontSize: fontSize}
}

// Committed returns the label variant of e carrying text.
func (e Element) Committed(text string) Element {
	e.Phase = PhaseCommitted
	e.Text = text
	return e
}

// Editable returns the entry variant of e, keeping its text.
func (e Element) Editable() Element {
	e.Phase = PhaseEditable
	return e
}

func (e Element) IsEditable() bool { return e.Phase == PhaseEditable }
