/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"testing"
	"time"
)

func TestStatsCountUndoDepth(t *testing.T) {
	m := NewManager(Config{MaxBytes: 1024, MaxPerSlide: 10})
	sl := 7
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("abcdef"), TS: time.Now()})
	_, _ = m.Undo(sl, []byte("gh"))
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("ij"), TS: time.Now()})
	tb, slides, depth := m.Stats()
	// the push dropped the redo entry "gh", leaving only "ij"
	if tb != 2 || slides != 1 || depth != 1 {
		t.Fatalf("unexpected stats: tb=%d slides=%d depth=%d", tb, slides, depth)
	}
}

func TestByteCapPrunesRedoOnceUndoIsEmpty(t *testing.T) {
	m := NewManager(Config{MaxBytes: 10})
	t0 := time.Now()
	tick := t0
	m.now = func() time.Time { tick = tick.Add(time.Minute); return tick }
	m.PushSnapshot(Snapshot{Slide: 1, Blob: []byte("aaaa"), TS: t0})
	m.PushSnapshot(Snapshot{Slide: 2, Blob: []byte("bbbb"), TS: t0.Add(time.Second)})
	if _, ok := m.Undo(2, []byte("cccccc")); !ok {
		t.Fatalf("undo on slide 2 failed")
	}
	// 4 (slide 1 undo) + 6 (slide 2 redo) fits exactly
	if tb, _, _ := m.Stats(); tb != 10 {
		t.Fatalf("total bytes = %d, want 10", tb)
	}
	if _, ok := m.Undo(1, []byte("dddddddddddd")); !ok {
		t.Fatalf("undo on slide 1 failed")
	}
	tb, _, depth := m.Stats()
	if tb > 10 {
		t.Fatalf("byte cap exceeded with only redo history left: %d", tb)
	}
	if depth != 0 {
		t.Fatalf("undo depth = %d, want 0", depth)
	}
	if m.CanRedo(2) {
		t.Fatalf("older redo entry of slide 2 should have been pruned first")
	}
}

func TestGlobalPruneAcrossSlides(t *testing.T) {
	m := NewManager(Config{MaxBytes: 8})
	t0 := time.Now()
	m.PushSnapshot(Snapshot{Slide: 1, Blob: []byte("xxxx"), TS: t0})
	m.PushSnapshot(Snapshot{Slide: 2, Blob: []byte("yyyy"), TS: t0.Add(time.Second)})
	// exceeds the cap; slide 1 holds the oldest entry
	m.PushSnapshot(Snapshot{Slide: 2, Blob: []byte("zzzz"), TS: t0.Add(2 * time.Second)})

	if m.CanUndo(1) {
		t.Fatalf("expected slide 1 to have been pruned")
	}
	if !m.CanUndo(2) {
		t.Fatalf("expected slide 2 to keep snapshots")
	}
	if tb, _, _ := m.Stats(); tb > 8 {
		t.Fatalf("byte cap exceeded: %d", tb)
	}
}
