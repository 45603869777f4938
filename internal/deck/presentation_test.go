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
	"testing"
)

func TestNewHasOneEmptyCurrentSlide(t *testing.T) {
	p := New()
	if p.Len() != 1 || p.CurrentIndex() != 0 {
		t.Fatalf("expected 1 slide at index 0, got len=%d idx=%d", p.Len(), p.CurrentIndex())
	}
	if n := p.Current().Len(); n != 0 {
		t.Fatalf("first slide should be empty, has %d elements", n)
	}
}

func TestAddSlideAppendsEmptyAndMakesCurrent(t *testing.T) {
	p := New()
	p.Current().SetElements([]Element{NewEditable(R(1, 2, 3, 4), 24).Committed("x")})
	for i := 1; i <= 5; i++ {
		idx := p.AddSlide()
		if p.Len() != i+1 {
			t.Fatalf("after %d adds expected %d slides, got %d", i, i+1, p.Len())
		}
		if idx != i || p.CurrentIndex() != i {
			t.Fatalf("new slide should be current: idx=%d current=%d", idx, p.CurrentIndex())
		}
		if p.Current().Len() != 0 {
			t.Fatalf("new slide should be empty")
		}
	}
	first, _ := p.Slide(0)
	if first.Len() != 1 {
		t.Fatalf("first slide content lost")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	p := New()
	p.AddSlide()
	for _, i := range []int{-1, 2, 10} {
		err := p.Select(i)
		if !errors.Is(err, ErrSlideOutOfRange) {
			t.Fatalf("Select(%d) err = %v, want ErrSlideOutOfRange", i, err)
		}
		if p.CurrentIndex() != 1 {
			t.Fatalf("failed Select changed current index to %d", p.CurrentIndex())
		}
	}
	if err := p.Select(0); err != nil || p.CurrentIndex() != 0 {
		t.Fatalf("Select(0) err=%v idx=%d", err, p.CurrentIndex())
	}
}

func TestSlideElementsAreCopies(t *testing.T) {
	s := &Slide{}
	src := []Element{NewEditable(R(0, 0, 10, 10), 12)}
	s.SetElements(src)
	src[0].Text = "mutated"
	got := s.Elements()
	if got[0].Text != "" {
		t.Fatalf("SetElements kept a reference to caller slice")
	}
	got[0].Text = "also mutated"
	if s.Elements()[0].Text != "" {
		t.Fatalf("Elements returned internal slice")
	}
}

func TestLabels(t *testing.T) {
	p := New()
	p.AddSlide()
	p.AddSlide()
	labels := p.Labels()
	want := []string{"Slide 1", "Slide 2", "Slide 3"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
}
