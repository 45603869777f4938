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

import "goslides/internal/deck"

// ElementView is one element as the canvas should draw it, in canvas pixels.
type ElementView struct {
	ID       string
	Phase    deck.Phase
	Text     string
	Rect     deck.Rect
	FontSize float64
	Focused  bool
	// SelectAll asks the view to select the whole text when it builds the field.
	SelectAll bool
}

// View is a toolkit-free snapshot of everything the window shows.
type View struct {
	Elements       []ElementView
	Slides         []string
	Current        int
	Editing        bool
	EditEnabled    bool
	DisplayEnabled bool
	CanUndo        bool
	CanRedo        bool
}

// View renders the current state.
func (e *Editor) View() View {
	v := View{
		Elements:       make([]ElementView, 0, len(e.live)),
		Slides:         e.deck.Labels(),
		Current:        e.deck.CurrentIndex(),
		Editing:        e.mode.IsEditing(),
		EditEnabled:    e.mode.EditEnabled(),
		DisplayEnabled: e.mode.DisplayEnabled(),
		CanUndo:        e.history.CanUndo(e.deck.CurrentIndex()),
		CanRedo:        e.history.CanRedo(e.deck.CurrentIndex()),
	}
	for _, el := range e.live {
		r, font := e.scaler.ToScreen(el, e.scale)
		focused := el.ID == e.focus
		v.Elements = append(v.Elements, ElementView{
			ID:        el.ID,
			Phase:     el.Phase,
			Text:      el.Text,
			Rect:      r,
			FontSize:  font,
			Focused:   focused,
			SelectAll: focused && e.selectAll,
		})
	}
	return v
}
