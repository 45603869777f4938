/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package deck

import "testing"

func TestPhaseSwapKeepsIdentityAndGeometry(t *testing.T) {
	e := NewEditable(R(10, 10, 200, 30), 24)
	if e.ID == "" || !e.IsEditable() {
		t.Fatalf("unexpected new element: %+v", e)
	}
	c := e.Committed("Hello")
	if c.ID != e.ID || c.Bounds != e.Bounds || c.FontSize != e.FontSize {
		t.Fatalf("commit changed identity or geometry: %+v vs %+v", c, e)
	}
	if c.Phase != PhaseCommitted || c.Text != "Hello" {
		t.Fatalf("commit result: %+v", c)
	}
	back := c.Editable()
	if back.Phase != PhaseEditable || back.Text != "Hello" || back.ID != e.ID {
		t.Fatalf("re-edit result: %+v", back)
	}
}

func TestRectScaleAndTrunc(t *testing.T) {
	r := R(100, 100, 200, 30).Scale(2, 2)
	if r != R(200, 200, 400, 60) {
		t.Fatalf("Scale = %+v", r)
	}
	if got := R(1.9, 2.5, 3.99, 0.1).Trunc(); got != R(1, 2, 3, 0) {
		t.Fatalf("Trunc = %+v", got)
	}
	if !R(0, 0, 10, 10).Contains(10, 5) || R(0, 0, 10, 10).Contains(11, 5) {
		t.Fatalf("Contains boundary mismatch")
	}
}
