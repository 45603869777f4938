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
	"fyne.io/fyne/v2/theme"

	"goslides/internal/textmetrics"
)

// slideTheme renders regular text with the same Go Regular face the editor
// measures with, so auto-sized fields fit their text.
type slideTheme struct {
	regular fyne.Resource
}

func newSlideTheme() fyne.Theme {
	return &slideTheme{regular: fyne.NewStaticResource(textmetrics.FamilyName+".ttf", textmetrics.FontTTF())}
}

func (t *slideTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(n, v)
}

func (t *slideTheme) Font(s fyne.TextStyle) fyne.Resource {
	if s.Bold || s.Italic || s.Monospace || s.Symbol {
		return theme.DefaultTheme().Font(s)
	}
	return t.regular
}

func (t *slideTheme) Icon(n fyne.ThemeIconName) fyne.Resource { return theme.DefaultTheme().Icon(n) }

func (t *slideTheme) Size(n fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(n) }

// textSizeTheme overrides only the text size of its parent theme; each
// editable field gets one matching its scaled font.
type textSizeTheme struct {
	fyne.Theme
	size float32
}

func (t textSizeTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText && t.size > 0 {
		return t.size
	}
	return t.Theme.Size(n)
}
