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
	"math"

	"goslides/internal/config"
	"goslides/internal/deck"
)

// Scale is the ratio of the canvas size to the baseline size.
type Scale struct{ X, Y float64 }

var unitScale = Scale{X: 1, Y: 1}

// Font is the factor applied to font sizes.
func (s Scale) Font() float64 { return math.Min(s.X, s.Y) }

// Scaler decides how element geometry follows canvas resizes.
type Scaler interface {
	Name() string
	// Rescale updates stored geometry of live elements when the scale changes.
	Rescale(live []deck.Element, prev, next Scale)
	// ToScreen maps stored geometry to canvas pixels at scale s.
	ToScreen(e deck.Element, s Scale) (deck.Rect, float64)
	// FromScreen maps canvas pixels at scale s to stored geometry.
	FromScreen(r deck.Rect, fontSize float64, s Scale) (deck.Rect, float64)
}

// NewScaler returns the policy named by a config value; unknown names get baseline.
func NewScaler(name string) Scaler {
	if name == config.ScalingCumulative {
		return cumulativeScaler{}
	}
	return baselineScaler{}
}

// baselineScaler stores unscaled geometry and derives screen geometry from it,
// so repeated resizes never accumulate rounding error.
type baselineScaler struct{}

func (baselineScaler) Name() string { return config.ScalingBaseline }

func (baselineScaler) Rescale([]deck.Element, Scale, Scale) {}

func (baselineScaler) ToScreen(e deck.Element, s Scale) (deck.Rect, float64) {
	return e.Bounds.Scale(s.X, s.Y), e.FontSize * s.Font()
}

func (baselineScaler) FromScreen(r deck.Rect, fontSize float64, s Scale) (deck.Rect, float64) {
	if s.X <= 0 || s.Y <= 0 {
		return r, fontSize
	}
	return r.Scale(1/s.X, 1/s.Y), fontSize / s.Font()
}

// cumulativeScaler stores screen geometry and multiplies it by the ratio between
// successive scales, truncating to whole pixels each time. Repeated resizes drift.
type cumulativeScaler struct{}

func (cumulativeScaler) Name() string { return config.ScalingCumulative }

func (cumulativeScaler) Rescale(live []deck.Element, prev, next Scale) {
	if prev.X <= 0 || prev.Y <= 0 {
		return
	}
	rx, ry := next.X/prev.X, next.Y/prev.Y
	for i := range live {
		live[i].Bounds = live[i].Bounds.Scale(rx, ry).Trunc()
		live[i].FontSize = math.Trunc(live[i].FontSize * math.Min(rx, ry))
	}
}

func (cumulativeScaler) ToScreen(e deck.Element, _ Scale) (deck.Rect, float64) {
	return e.Bounds, e.FontSize
}

func (cumulativeScaler) FromScreen(r deck.Rect, fontSize float64, _ Scale) (deck.Rect, float64) {
	return r, fontSize
}
