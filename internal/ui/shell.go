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
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"goslides/internal/editor"
	applog "goslides/internal/log"
)

// shell is the window content: slide sidebar on the left, the slide canvas in
// the centre and the mode/new-slide control strip at the bottom.
type shell struct {
	ed     *editor.Editor
	canvas *SlideCanvas
	log    *slog.Logger

	editBtn    *widget.Button
	displayBtn *widget.Button
	newBtn     *widget.Button

	sidebar   *fyne.Container
	slideBtns []*widget.Button

	root fyne.CanvasObject
}

func newShell(ed *editor.Editor, sc *SlideCanvas, sidebarWidth float32) *shell {
	s := &shell{ed: ed, canvas: sc, log: applog.WithComponent("ui")}
	s.editBtn = widget.NewButton("Edit Mode", ed.EnterEdit)
	s.displayBtn = widget.NewButton("Display Mode", ed.EnterDisplay)
	s.newBtn = widget.NewButton("New Slide", func() { ed.NewSlide() })
	controls := container.NewHBox(layout.NewSpacer(), s.editBtn, s.displayBtn, s.newBtn, layout.NewSpacer())

	s.sidebar = container.NewVBox()
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(sidebarWidth, 0))
	left := container.NewStack(strut, container.NewVScroll(s.sidebar))

	s.root = container.NewBorder(nil, controls, left, nil, sc)
	s.apply(editor.ChangeAll)
	ed.OnChange(s.apply)
	return s
}

// apply brings the sidebar and control strip in line with the editor.
func (s *shell) apply(ch editor.Change) {
	if ch&(editor.ChangeSlides|editor.ChangeMode) == 0 {
		return
	}
	v := s.ed.View()
	if ch&editor.ChangeSlides != 0 {
		s.syncSidebar(v)
	}
	if ch&editor.ChangeMode != 0 {
		setEnabled(s.editBtn, v.EditEnabled)
		setEnabled(s.displayBtn, v.DisplayEnabled)
	}
}

func (s *shell) syncSidebar(v editor.View) {
	if len(s.slideBtns) != len(v.Slides) {
		s.slideBtns = s.slideBtns[:0]
		s.sidebar.RemoveAll()
		for i, label := range v.Slides {
			idx := i
			b := widget.NewButton(label, func() { s.selectSlide(idx) })
			s.slideBtns = append(s.slideBtns, b)
			s.sidebar.Add(b)
		}
	}
	for i, b := range s.slideBtns {
		want := widget.MediumImportance
		if i == v.Current {
			want = widget.HighImportance
		}
		if b.Importance != want {
			b.Importance = want
			b.Refresh()
		}
	}
}

func (s *shell) selectSlide(i int) {
	if err := s.ed.SelectSlide(i); err != nil {
		s.log.Error("select slide failed", slog.Int("index", i), slog.Any("err", err))
	}
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
