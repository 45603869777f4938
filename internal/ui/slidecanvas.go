//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"goslides/internal/deck"
	"goslides/internal/editor"
)

// SlideCanvas shows the live elements of the current slide on a white page.
// Taps on empty space and canvas resizes are forwarded to the editor; the
// children are rebuilt from editor.View on every refresh and reused by element ID.
type SlideCanvas struct {
	widget.BaseWidget
	ed *editor.Editor

	entries map[string]*entrySlot
	labels  map[string]*elementLabel
	// focusedID is the element the canvas last moved keyboard focus to.
	focusedID string

	// focus and unfocus drive the window's focus manager; nil in headless tests.
	focus   func(fyne.Focusable)
	unfocus func()
}

type entrySlot struct {
	entry *elementEntry
	wrap  *container.ThemeOverride
	size  float32
}

func NewSlideCanvas(ed *editor.Editor) *SlideCanvas {
	sc := &SlideCanvas{
		ed:      ed,
		entries: map[string]*entrySlot{},
		labels:  map[string]*elementLabel{},
	}
	sc.ExtendBaseWidget(sc)
	ed.OnChange(func(ch editor.Change) {
		if ch&editor.ChangeCanvas != 0 {
			sc.Refresh()
		}
	})
	return sc
}

func (c *SlideCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	r := &slideCanvasRenderer{sc: c, bg: bg}
	r.sync()
	return r
}

// PreferredSize is the baseline slide size the element geometry is defined against.
func (c *SlideCanvas) PreferredSize() fyne.Size {
	w, h := c.ed.Size()
	return fyne.NewSize(float32(w), float32(h))
}

// Resize lays out the widget and rescales the slide content to the new size.
func (c *SlideCanvas) Resize(size fyne.Size) {
	c.BaseWidget.Resize(size)
	c.ed.Resize(float64(size.Width), float64(size.Height))
}

// Tapped on the background creates a text field in edit mode.
func (c *SlideCanvas) Tapped(e *fyne.PointEvent) {
	c.ed.Dispatch(editor.Click(float64(e.Position.X), float64(e.Position.Y)))
}

func (c *SlideCanvas) requestFocus(f fyne.Focusable) {
	if c.focus != nil {
		c.focus(f)
	}
}

func (c *SlideCanvas) dropFocus() {
	if c.unfocus != nil {
		c.unfocus()
	}
}

func (c *SlideCanvas) entrySlotFor(v editor.ElementView) *entrySlot {
	if s, ok := c.entries[v.ID]; ok {
		return s
	}
	e := newElementEntry(c, v.ID, v.Text)
	size := float32(v.FontSize)
	s := &entrySlot{entry: e, size: size, wrap: container.NewThemeOverride(e, textSizeTheme{Theme: theme.Current(), size: size})}
	c.entries[v.ID] = s
	return s
}

func (c *SlideCanvas) labelFor(v editor.ElementView) *elementLabel {
	if l, ok := c.labels[v.ID]; ok {
		return l
	}
	l := newElementLabel(c, v.ID)
	c.labels[v.ID] = l
	return l
}

type slideCanvasRenderer struct {
	sc      *SlideCanvas
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

// sync rebuilds the child list from the editor's view model.
func (r *slideCanvasRenderer) sync() {
	c := r.sc
	v := c.ed.View()
	objs := make([]fyne.CanvasObject, 0, len(v.Elements)+1)
	objs = append(objs, r.bg)
	seen := make(map[string]bool, len(v.Elements))
	var focusTarget *elementEntry
	var selectAll bool
	for _, ev := range v.Elements {
		seen[ev.ID] = true
		pos := fyne.NewPos(float32(ev.Rect.X), float32(ev.Rect.Y))
		size := fyne.NewSize(float32(ev.Rect.Width), float32(ev.Rect.Height))
		if ev.Phase == deck.PhaseCommitted {
			delete(c.entries, ev.ID)
			l := c.labelFor(ev)
			l.set(ev.Text, float32(ev.FontSize))
			l.Move(pos)
			l.Resize(size)
			objs = append(objs, l)
			continue
		}
		delete(c.labels, ev.ID)
		s := c.entrySlotFor(ev)
		if fs := float32(ev.FontSize); fs != s.size {
			s.size = fs
			s.wrap.Theme = textSizeTheme{Theme: theme.Current(), size: fs}
			s.wrap.Refresh()
		}
		if s.entry.Text != ev.Text {
			s.entry.SetText(ev.Text)
		}
		if v.Editing {
			s.entry.Enable()
		} else {
			s.entry.Disable()
		}
		s.wrap.Move(pos)
		s.wrap.Resize(size)
		objs = append(objs, s.wrap)
		if ev.Focused && c.focusedID != ev.ID {
			focusTarget, selectAll = s.entry, ev.SelectAll
		}
	}
	for id := range c.entries {
		if !seen[id] {
			delete(c.entries, id)
		}
	}
	for id := range c.labels {
		if !seen[id] {
			delete(c.labels, id)
		}
	}
	r.objects = objs
	if focusTarget != nil {
		c.focusedID = focusTarget.id
		c.requestFocus(focusTarget)
		if selectAll {
			focusTarget.TypedShortcut(&fyne.ShortcutSelectAll{})
		}
	} else if c.ed.Focused() == "" {
		c.focusedID = ""
	}
}

func (r *slideCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)
}

func (r *slideCanvasRenderer) MinSize() fyne.Size { return fyne.NewSize(160, 120) }

func (r *slideCanvasRenderer) Refresh() {
	r.sync()
	r.Layout(r.sc.Size())
	canvas.Refresh(r.sc)
}

func (r *slideCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *slideCanvasRenderer) Destroy()                     {}

// elementEntry is the editable phase of an element.
type elementEntry struct {
	widget.Entry
	sc *SlideCanvas
	id string
}

func newElementEntry(sc *SlideCanvas, id, text string) *elementEntry {
	e := &elementEntry{sc: sc, id: id}
	e.Text = text
	e.ExtendBaseWidget(e)
	e.OnChanged = func(s string) { sc.ed.Dispatch(editor.KeyReleased(id, s)) }
	e.OnSubmitted = func(string) {
		if sc.ed.Dispatch(editor.Confirm(id)) {
			sc.dropFocus()
		}
	}
	return e
}

// FocusLost commits the field the same way Enter does.
func (e *elementEntry) FocusLost() {
	e.Entry.FocusLost()
	e.sc.ed.Dispatch(editor.FocusLost(e.id))
}

// elementLabel is the committed phase of an element; tapping it in edit mode
// turns it back into a field.
type elementLabel struct {
	widget.BaseWidget
	sc   *SlideCanvas
	id   string
	text *canvas.Text
}

func newElementLabel(sc *SlideCanvas, id string) *elementLabel {
	l := &elementLabel{sc: sc, id: id, text: canvas.NewText("", color.Black)}
	l.ExtendBaseWidget(l)
	return l
}

func (l *elementLabel) set(text string, size float32) {
	if l.text.Text == text && l.text.TextSize == size {
		return
	}
	l.text.Text = text
	l.text.TextSize = size
	l.text.Refresh()
}

func (l *elementLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.text)
}

func (l *elementLabel) Tapped(*fyne.PointEvent) {
	l.sc.ed.Dispatch(editor.ClickElement(l.id))
}
