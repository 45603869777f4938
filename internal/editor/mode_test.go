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

import "testing"

func TestModeStartsInDisplayWithBothControlsEnabled(t *testing.T) {
	var m Mode
	if m.IsEditing() {
		t.Fatalf("initial mode should not be editing")
	}
	if !m.EditEnabled() || !m.DisplayEnabled() {
		t.Fatalf("both controls should start enabled: edit=%v display=%v", m.EditEnabled(), m.DisplayEnabled())
	}
	if m.String() != "display" {
		t.Fatalf("String() = %q", m.String())
	}
}

func TestModeTransitions(t *testing.T) {
	var m Mode
	m.EnterEdit()
	if !m.IsEditing() || m.EditEnabled() || !m.DisplayEnabled() {
		t.Fatalf("after EnterEdit: editing=%v edit=%v display=%v", m.IsEditing(), m.EditEnabled(), m.DisplayEnabled())
	}
	m.EnterDisplay()
	if m.IsEditing() || !m.EditEnabled() || m.DisplayEnabled() {
		t.Fatalf("after EnterDisplay: editing=%v edit=%v display=%v", m.IsEditing(), m.EditEnabled(), m.DisplayEnabled())
	}
	m.EnterEdit()
	if !m.IsEditing() {
		t.Fatalf("toggle back to edit failed")
	}
}
