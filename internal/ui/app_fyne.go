//go:build fyne && cgo

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
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"goslides/internal/config"
	"goslides/internal/crash"
	"goslides/internal/editor"
	applog "goslides/internal/log"
	"goslides/internal/textmetrics"
	"goslides/internal/version"
)

// controlStripHeight is added to the baseline canvas height for the first window size.
const controlStripHeight = 48

// Run starts the Fyne-based slide editor window and blocks until it is closed.
func Run() error {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer func() { _ = applog.Close() }()
	l := applog.WithComponent("ui")
	if cfgErr != nil {
		l.Warn("config file ignored", slog.Any("err", cfgErr))
	}
	l.Info("starting UI", slog.String("version", version.String()), slog.String("font", textmetrics.FamilyName))
	if path, created, err := config.WriteDefaultsIfMissing(); err != nil {
		l.Warn("default config not written", slog.Any("err", err))
	} else if created {
		l.Info("default config written", slog.String("path", path))
	}
	for _, key := range config.OverridableKeys {
		if env, ok := config.EnvOverrideFor(key); ok {
			l.Info("config overridden by environment", slog.String("key", key), slog.String("env", env))
		}
	}

	ed := editor.New(editor.ConfigFrom(cfg), textmetrics.Default())
	defer crash.Recover(ed)

	fyneApp := app.NewWithID("goslides")
	fyneApp.Settings().SetTheme(newSlideTheme())
	w := fyneApp.NewWindow(cfg.Window.Title)

	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	sidebarW := float32(cfg.Window.SidebarWidth)
	winW := prefs.IntWithFallback("window.width", int(cfg.Canvas.BaselineWidth+cfg.Window.SidebarWidth))
	winH := prefs.IntWithFallback("window.height", int(cfg.Canvas.BaselineHeight)+controlStripHeight)
	if winW < 400 {
		winW = 400
	}
	if winH < 300 {
		winH = 300
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	sc := NewSlideCanvas(ed)
	sc.focus = w.Canvas().Focus
	sc.unfocus = w.Canvas().Unfocus
	sh := newShell(ed, sc, sidebarW)
	w.SetContent(sh.root)

	undoItem := fyne.NewMenuItem("Undo", func() {
		if !ed.Undo() {
			dialog.ShowInformation("Undo", "Nothing to undo.", w)
		}
	})
	redoItem := fyne.NewMenuItem("Redo", func() {
		if !ed.Redo() {
			dialog.ShowInformation("Redo", "Nothing to redo.", w)
		}
	})
	undoKey := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoKey := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	undoItem.Shortcut = undoKey
	redoItem.Shortcut = redoKey
	w.Canvas().AddShortcut(undoKey, func(fyne.Shortcut) { ed.Undo() })
	w.Canvas().AddShortcut(redoKey, func(fyne.Shortcut) { ed.Redo() })

	aboutItem := fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About", cfg.Window.Title+"\nVersion "+version.String(), w)
	})
	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Edit", undoItem, redoItem),
		fyne.NewMenu("Help", aboutItem),
	))

	// Persist preferences on close
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.Info("closing", slog.String("state", ed.CrashSummary()))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}
