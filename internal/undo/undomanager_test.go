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

func TestUndoRedoRoundTrip(t *testing.T) {
	m := NewManager(Config{MaxBytes: 1024 * 1024, MaxPerSlide: 10, MinInterval: 10 * time.Millisecond})
	sl := 1
	t0 := time.Now()
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("a"), TS: t0})
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("b"), TS: t0.Add(20 * time.Millisecond)})
	if _, slides, depth := m.Stats(); slides != 1 || depth != 2 {
		t.Fatalf("expected 1 slide and depth 2, got slides=%d depth=%d", slides, depth)
	}
	s, ok := m.Undo(sl, []byte("c"))
	if !ok || string(s.Blob) != "b" {
		t.Fatalf("undo expected 'b', got ok=%v blob=%q", ok, string(s.Blob))
	}
	if !m.CanRedo(sl) {
		t.Fatalf("expected redo to be available")
	}
	s, ok = m.Redo(sl, []byte("b"))
	if !ok || string(s.Blob) != "c" {
		t.Fatalf("redo expected 'c', got ok=%v blob=%q", ok, string(s.Blob))
	}
	s, ok = m.Undo(sl, []byte("c"))
	if !ok || string(s.Blob) != "b" {
		t.Fatalf("second undo expected 'b', got ok=%v blob=%q", ok, string(s.Blob))
	}
}

func TestCoalesceKeepsEarliestState(t *testing.T) {
	m := NewManager(Config{MaxBytes: 1024 * 1024, MaxPerSlide: 10, MinInterval: 50 * time.Millisecond})
	sl := 2
	t0 := time.Now()
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("1"), TS: t0})
	m.PushSnapshot(Snapshot{Slide: sl, Blob: []byte("2"), TS: t0.Add(10 * time.Millisecond)})
	if _, _, depth := m.Stats(); depth != 1 {
		t.Fatalf("expected coalesced to 1 snapshot, got %d", depth)
	}
	s, ok := m.Undo(sl, []byte("3"))
	if !ok || string(s.Blob) != "1" {
		t.Fatalf("expected the pre-burst snapshot '1', got ok=%v blob=%q", ok, string(s.Blob))
	}
}

func TestPushClearsRedo(t *testing.T) {
	m := NewManager(Config{})
	m.PushSnapshot(Snapshot{Slide: 0, Blob: []byte("a")})
	if _, ok := m.Undo(0, []byte("b")); !ok {
		t.Fatalf("undo failed")
	}
	m.PushSnapshot(Snapshot{Slide: 0, Blob: []byte("x")})
	if m.CanRedo(0) {
		t.Fatalf("new change should clear redo")
	}
}

func TestPerSlideCap(t *testing.T) {
	m := NewManager(Config{MaxBytes: 1024, MaxPerSlide: 2})
	t0 := time.Now()
	for i := 0; i < 10; i++ {
		m.PushSnapshot(Snapshot{Slide: 3, Blob: []byte("xxxxx"), TS: t0.Add(time.Duration(i) * time.Millisecond)})
	}
	if _, _, depth := m.Stats(); depth != 2 {
		t.Fatalf("expected MaxPerSlide cap to limit to 2, got %d", depth)
	}
}

func TestSlidesAreIndependent(t *testing.T) {
	m := NewManager(Config{})
	m.PushSnapshot(Snapshot{Slide: 0, Blob: []byte("zero")})
	if m.CanUndo(1) {
		t.Fatalf("slide 1 should have no history")
	}
	if _, ok := m.Undo(1, nil); ok {
		t.Fatalf("undo on empty slide should fail")
	}
	if !m.CanUndo(0) {
		t.Fatalf("slide 0 should have history")
	}
}
