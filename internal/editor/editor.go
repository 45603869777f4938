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
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"goslides/internal/config"
	"goslides/internal/deck"
	applog "goslides/internal/log"
	"goslides/internal/textmetrics"
	"goslides/internal/undo"
)

// Change flags tell observers which parts of the view are stale.
type Change uint8

const (
	ChangeCanvas Change = 1 << iota
	ChangeSlides
	ChangeMode
	ChangeAll = ChangeCanvas | ChangeSlides | ChangeMode
)

// Editor owns the presentation and, for the current slide, the live element set
// shown on the canvas. The live set is copied back into the slide only by
// SaveCurrent, which every slide switch performs first.
//
// Editor is not safe for concurrent use; drive it from the UI event thread.
type Editor struct {
	cfg     Config
	log     *slog.Logger
	deck    *deck.Presentation
	mode    Mode
	scaler  Scaler
	measure textmetrics.Measurer
	history *undo.Manager

	live      []deck.Element
	focus     string
	selectAll bool
	// sessionBase is the live set before the current edit session began;
	// it becomes the undo snapshot when the session changes the slide.
	sessionBase  []deck.Element
	sessionScale Scale
	inSession    bool

	width, height float64
	scale         Scale

	observers []func(Change)
}

// New builds an editor over a fresh one-slide presentation. A nil measurer
// selects textmetrics.Default().
func New(cfg Config, m textmetrics.Measurer) *Editor {
	cfg = cfg.withDefaults()
	if m == nil {
		m = textmetrics.Default()
	}
	e := &Editor{
		cfg:     cfg,
		log:     applog.WithComponent("editor"),
		deck:    deck.New(),
		scaler:  NewScaler(cfg.Scaling),
		measure: m,
		history: undo.NewManager(cfg.Undo),
		width:   cfg.BaselineWidth,
		height:  cfg.BaselineHeight,
		scale:   unitScale,
	}
	if strings.EqualFold(cfg.InitialMode, config.ModeEdit) {
		e.mode.EnterEdit()
	}
	e.RenderSlide()
	e.log.Debug("editor ready", slog.String("mode", e.mode.String()), slog.String("scaling", e.scaler.Name()))
	return e
}

// OnChange registers an observer called after every state change.
func (e *Editor) OnChange(fn func(Change)) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

func (e *Editor) notify(c Change) {
	for _, fn := range e.observers {
		fn(c)
	}
}

func (e *Editor) Presentation() *deck.Presentation { return e.deck }

func (e *Editor) Mode() Mode { return e.mode }

func (e *Editor) Scale() Scale { return e.scale }

// Live returns a copy of the canvas's live element set.
func (e *Editor) Live() []deck.Element { return append([]deck.Element(nil), e.live...) }

// Focused returns the ID of the element holding input focus, if any.
func (e *Editor) Focused() string { return e.focus }

// EnterEdit switches to Edit mode.
func (e *Editor) EnterEdit() {
	e.mode.EnterEdit()
	e.log.Info("mode changed", slog.String("mode", e.mode.String()))
	e.notify(ChangeMode | ChangeCanvas)
}

// EnterDisplay switches to Display mode. Fields being edited stay as they are;
// commits are gated on Edit mode.
func (e *Editor) EnterDisplay() {
	e.mode.EnterDisplay()
	e.log.Info("mode changed", slog.String("mode", e.mode.String()))
	e.notify(ChangeMode | ChangeCanvas)
}

// Dispatch applies one input event and reports whether state changed.
func (e *Editor) Dispatch(ev Event) bool {
	var changed bool
	switch ev.Kind {
	case EventClick:
		changed = e.click(ev)
	case EventFocusLost, EventConfirm:
		changed = e.commit(ev.ElementID)
	case EventKeyReleased:
		changed = e.typed(ev.ElementID, ev.Text)
	default:
		e.log.Warn("unknown event", slog.String("kind", ev.Kind.String()))
	}
	if changed {
		e.notify(ChangeCanvas)
	}
	return changed
}

func (e *Editor) click(ev Event) bool {
	if !e.mode.IsEditing() {
		return false
	}
	id := ev.ElementID
	if id == "" {
		id = e.hitTest(ev.X, ev.Y)
	}
	if id != "" {
		return e.reedit(id)
	}
	return e.create(ev.X, ev.Y)
}

// hitTest returns the top-most element under a canvas point.
func (e *Editor) hitTest(x, y float64) string {
	for i := len(e.live) - 1; i >= 0; i-- {
		r, _ := e.scaler.ToScreen(e.live[i], e.scale)
		if r.Contains(x, y) {
			return e.live[i].ID
		}
	}
	return ""
}

func (e *Editor) indexOf(id string) int {
	for i := range e.live {
		if e.live[i].ID == id {
			return i
		}
	}
	return -1
}

// releaseFocus commits the focused element, as the toolkit would on focus transfer.
func (e *Editor) releaseFocus() {
	if e.focus != "" {
		e.commit(e.focus)
	}
}

func (e *Editor) beginSession() {
	if !e.inSession {
		e.sessionBase = e.Live()
		e.sessionScale = e.scale
		e.inSession = true
	}
}

func (e *Editor) create(x, y float64) bool {
	e.releaseFocus()
	e.beginSession()
	screen := deck.R(x, y, e.cfg.ElementWidth, e.cfg.ElementHeight)
	bounds, font := e.scaler.FromScreen(screen, e.cfg.FontSize, e.scale)
	el := deck.NewEditable(bounds, font)
	e.live = append(e.live, el)
	e.focus = el.ID
	e.selectAll = false
	e.log.Debug("element created", slog.String("id", el.ID), slog.Float64("x", x), slog.Float64("y", y))
	return true
}

func (e *Editor) reedit(id string) bool {
	if e.focus != "" && e.focus != id {
		e.releaseFocus()
	}
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	if e.live[i].IsEditable() {
		if e.focus == id {
			return false
		}
		e.beginSession()
		e.focus = id
		e.selectAll = false
		return true
	}
	e.beginSession()
	e.live[i] = e.live[i].Editable()
	e.focus = id
	e.selectAll = true
	e.log.Debug("element re-edited", slog.String("id", id))
	return true
}

// commit turns an editable element into a label, or drops it when its trimmed
// text is empty. Only applies in Edit mode.
func (e *Editor) commit(id string) bool {
	if !e.mode.IsEditing() {
		return false
	}
	i := e.indexOf(id)
	if i < 0 || !e.live[i].IsEditable() {
		return false
	}
	text := strings.TrimSpace(e.live[i].Text)
	if text == "" {
		e.live = append(e.live[:i], e.live[i+1:]...)
		e.log.Debug("empty element discarded", slog.String("id", id))
	} else {
		e.live[i] = e.live[i].Committed(text)
		e.log.Debug("element committed", slog.String("id", id), slog.Int("len", len(text)))
	}
	if e.focus == id {
		e.focus = ""
		e.selectAll = false
	}
	e.endSession()
	return true
}

func (e *Editor) endSession() {
	if e.focus != "" || !e.inSession {
		return
	}
	e.inSession = false
	base := e.sessionBase
	e.sessionBase = nil
	if sameElements(base, e.live) {
		return
	}
	blob, err := json.Marshal(snapshot{Scale: e.sessionScale, Elements: base})
	if err != nil {
		e.log.Error("snapshot encode failed", slog.Any("err", err))
		return
	}
	e.history.PushSnapshot(undo.Snapshot{Slide: e.deck.CurrentIndex(), Blob: blob})
}

// snapshot is the undo blob of a slide: the live elements and the scale their
// stored geometry was valid at.
type snapshot struct {
	Scale    Scale          `json:"scale"`
	Elements []deck.Element `json:"elements"`
}

func sameElements(a, b []deck.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// typed updates an editable element's text and fits its width to the text.
func (e *Editor) typed(id, text string) bool {
	i := e.indexOf(id)
	if i < 0 || !e.live[i].IsEditable() {
		return false
	}
	el := e.live[i]
	screen, font := e.scaler.ToScreen(el, e.scale)
	screen.Width = e.measure.Width(text, font) + e.cfg.Padding
	bounds, _ := e.scaler.FromScreen(screen, font, e.scale)
	el.Text = text
	el.Bounds.Width = bounds.Width
	e.live[i] = el
	e.selectAll = false
	return true
}

// Resize rescales the canvas against the baseline size.
func (e *Editor) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == e.width && h == e.height {
		return
	}
	next := Scale{X: w / e.cfg.BaselineWidth, Y: h / e.cfg.BaselineHeight}
	prev := e.scale
	e.width, e.height = w, h
	if next == prev {
		return
	}
	e.scaler.Rescale(e.live, prev, next)
	e.scale = next
	e.log.Debug("canvas resized", slog.Float64("w", w), slog.Float64("h", h),
		slog.Float64("sx", next.X), slog.Float64("sy", next.Y))
	e.notify(ChangeCanvas)
}

// Size returns the last canvas size passed to Resize.
func (e *Editor) Size() (float64, float64) { return e.width, e.height }

// RenderSlide replaces the live set with the current slide's elements.
func (e *Editor) RenderSlide() {
	e.live = e.deck.Current().Elements()
	e.focus = ""
	e.selectAll = false
	e.inSession = false
	e.sessionBase = nil
}

// SaveCurrent hands the live set back to the current slide, committing the
// focused field first.
func (e *Editor) SaveCurrent() {
	e.releaseFocus()
	e.deck.Current().SetElements(e.live)
}

// SelectSlide saves the current slide, switches to slide i and re-renders.
func (e *Editor) SelectSlide(i int) error {
	if _, err := e.deck.Slide(i); err != nil {
		return err
	}
	from := e.deck.CurrentIndex()
	e.SaveCurrent()
	if err := e.deck.Select(i); err != nil {
		return err
	}
	e.RenderSlide()
	e.log.Info("slide selected", slog.Int("from", from), slog.Int("to", i))
	e.notify(ChangeCanvas | ChangeSlides)
	return nil
}

// NewSlide saves the current slide, appends an empty one and makes it current.
func (e *Editor) NewSlide() int {
	e.SaveCurrent()
	idx := e.deck.AddSlide()
	e.RenderSlide()
	e.log.Info("slide added", slog.Int("index", idx), slog.Int("count", e.deck.Len()))
	e.notify(ChangeAll)
	return idx
}

// Undo restores the current slide to its state before the last edit session.
func (e *Editor) Undo() bool { return e.travel(e.history.Undo, "undo") }

// Redo re-applies the last undone edit session of the current slide.
func (e *Editor) Redo() bool { return e.travel(e.history.Redo, "redo") }

func (e *Editor) travel(step func(int, []byte) (undo.Snapshot, bool), op string) bool {
	e.releaseFocus()
	cur, err := json.Marshal(snapshot{Scale: e.scale, Elements: e.live})
	if err != nil {
		e.log.Error("snapshot encode failed", slog.String("op", op), slog.Any("err", err))
		return false
	}
	s, ok := step(e.deck.CurrentIndex(), cur)
	if !ok {
		return false
	}
	var snap snapshot
	if err := json.Unmarshal(s.Blob, &snap); err != nil {
		e.log.Error("snapshot decode failed", slog.String("op", op), slog.Any("err", err))
		return false
	}
	els := snap.Elements
	if snap.Scale != e.scale {
		e.scaler.Rescale(els, snap.Scale, e.scale)
	}
	e.live = els
	e.focus = ""
	e.selectAll = false
	// a field left open outside edit mode ends its session here without a commit
	e.inSession = false
	e.sessionBase = nil
	e.log.Debug("history applied", slog.String("op", op), slog.Int("elements", len(els)))
	e.notify(ChangeCanvas)
	return true
}

// CrashSummary describes editor state for crash reports.
func (e *Editor) CrashSummary() string {
	return fmt.Sprintf("slides=%d current=%d mode=%s live=%d scaling=%s scale=%.3fx%.3f",
		e.deck.Len(), e.deck.CurrentIndex(), e.mode, len(e.live), e.scaler.Name(), e.scale.X, e.scale.Y)
}
