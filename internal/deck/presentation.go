/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package deck

import (
	"errors"
	"fmt"
)

// ErrSlideOutOfRange is returned when a slide index does not exist.
var ErrSlideOutOfRange = errors.New("slide index out of range")

// Slide is an ordered collection of elements; order is insertion (z) order.
type Slide struct {
	elements []Element
}

// Elements returns a copy of the slide's elements.
func (s *Slide) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// SetElements replaces the slide content with a copy of els.
func (s *Slide) SetElements(els []Element) {
	s.elements = append(s.elements[:0:0], els...)
}

func (s *Slide) Len() int { return len(s.elements) }

// Presentation is the ordered slide list plus the index of the current slide.
// It always holds at least one slide and 0 <= current < Len().
type Presentation struct {
	slides  []*Slide
	current int
}

// New returns a presentation with a single empty slide.
func New() *Presentation {
	return &Presentation{slides: []*Slide{{}}}
}

func (p *Presentation) Len() int { return len(p.slides) }

func (p *Presentation) CurrentIndex() int { return p.current }

func (p *Presentation) Current() *Slide { return p.slides[p.current] }

// Slide returns the slide at i.
func (p *Presentation) Slide(i int) (*Slide, error) {
	if i < 0 || i >= len(p.slides) {
		return nil, fmt.Errorf("slide %d of %d: %w", i, len(p.slides), ErrSlideOutOfRange)
	}
	return p.slides[i], nil
}

// AddSlide appends an empty slide, makes it current and returns its index.
func (p *Presentation) AddSlide() int {
	p.slides = append(p.slides, &Slide{})
	p.current = len(p.slides) - 1
	return p.current
}

// Select makes slide i current. The caller is responsible for saving the
// canvas content into the old current slide first.
func (p *Presentation) Select(i int) error {
	if i < 0 || i >= len(p.slides) {
		return fmt.Errorf("select slide %d of %d: %w", i, len(p.slides), ErrSlideOutOfRange)
	}
	p.current = i
	return nil
}

// Label is the sidebar caption for slide i.
func Label(i int) string { return fmt.Sprintf("Slide %d", i+1) }

// Labels returns the sidebar captions for every slide.
func (p *Presentation) Labels() []string {
	out := make([]string, len(p.slides))
	for i := range p.slides {
		out[i] = Label(i)
	}
	return out
}
