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

// Mode is the Edit/Display toggle. The zero value is the startup state: not
// editing, yet both controls enabled because no transition has happened.
type Mode struct {
	editing      bool
	transitioned bool
}

func (m *Mode) EnterEdit() {
	m.editing = true
	m.transitioned = true
}

func (m *Mode) EnterDisplay() {
	m.editing = false
	m.transitioned = true
}

func (m Mode) IsEditing() bool { return m.editing }

// EditEnabled reports whether the Edit Mode control accepts presses.
func (m Mode) EditEnabled() bool { return !m.editing }

// DisplayEnabled reports whether the Display Mode control accepts presses.
func (m Mode) DisplayEnabled() bool { return m.editing || !m.transitioned }

func (m Mode) String() string {
	if m.editing {
		return "edit"
	}
	return "display"
}
