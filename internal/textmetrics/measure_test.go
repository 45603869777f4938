/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textmetrics

import "testing"

func TestBasicMeasurerIsMonospace(t *testing.T) {
	m := BasicMeasurer{}
	if got := m.Width("Hello", 24); got != 35 {
		t.Fatalf("Width(Hello) = %v, want 35 (5 glyphs x 7px)", got)
	}
	if got := m.Width("", 24); got != 0 {
		t.Fatalf("empty width = %v", got)
	}
}

func TestDefaultMeasurerScalesWithSize(t *testing.T) {
	m := Default()
	small := m.Width("Presentation", 12)
	large := m.Width("Presentation", 24)
	if small <= 0 {
		t.Fatalf("expected positive width, got %v", small)
	}
	if large <= small*1.5 {
		t.Fatalf("24pt width %v should be roughly double 12pt width %v", large, small)
	}
	if m.Width("", 24) != 0 {
		t.Fatalf("empty string should measure 0")
	}
}

func TestDefaultMeasurerLongerTextIsWider(t *testing.T) {
	m := Default()
	if m.Width("ab", 24) >= m.Width("abcd", 24) {
		t.Fatalf("longer text should be wider")
	}
}

func TestNewFaceMeasurerRejectsGarbage(t *testing.T) {
	if _, err := NewFaceMeasurer([]byte("not a font"), 72); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFaceCacheRoundsSizes(t *testing.T) {
	m, err := NewFaceMeasurer(FontTTF(), 72)
	if err != nil {
		t.Fatalf("NewFaceMeasurer: %v", err)
	}
	for i := 0; i < 200; i++ {
		m.Width("Hello", 24+float64(i)*0.001)
	}
	if n := len(m.faces); n != 1 {
		t.Fatalf("cached %d faces for sizes within one step, want 1", n)
	}
	m.Width("Hello", 30)
	if n := len(m.faces); n != 2 {
		t.Fatalf("cached %d faces, want 2", n)
	}
	if m.Width("Hello", 24.1) != m.Width("Hello", 24) {
		t.Fatalf("sizes that round to the same step should measure the same")
	}
}
