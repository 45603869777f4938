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

import "fmt"

// EventKind enumerates canvas input events.
type EventKind int

const (
	EventClick EventKind = iota
	EventFocusLost
	EventKeyReleased
	EventConfirm
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventFocusLost:
		return "focus_lost"
	case EventKeyReleased:
		return "key_released"
	case EventConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one input to Editor.Dispatch. X and Y are canvas (screen) coordinates
// and only matter for clicks. ElementID is empty for a click on bare canvas.
// Text carries the field content for EventKeyReleased.
type Event struct {
	Kind      EventKind
	X, Y      float64
	ElementID string
	Text      string
}

func Click(x, y float64) Event { return Event{Kind: EventClick, X: x, Y: y} }

func ClickElement(id string) Event { return Event{Kind: EventClick, ElementID: id} }

func FocusLost(id string) Event { return Event{Kind: EventFocusLost, ElementID: id} }

func KeyReleased(id, text string) Event {
	return Event{Kind: EventKeyReleased, ElementID: id, Text: text}
}

func Confirm(id string) Event { return Event{Kind: EventConfirm, ElementID: id} }
