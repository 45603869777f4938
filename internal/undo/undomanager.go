/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps bounded, per-slide undo/redo history of opaque state blobs.
package undo

import (
	"sync"
	"time"
)

// Snapshot is a reversible state blob for one slide, captured at TS.
// The manager never looks inside Blob; its size is estimated as len(Blob).
type Snapshot struct {
	Slide int
	Blob  []byte
	TS    time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap over all undo entries; the oldest are pruned when exceeded.
	MaxBytes int
	// MaxPerSlide limits undo depth per slide (0 means unlimited).
	MaxPerSlide int
	// MinInterval coalesces snapshots pushed for the same slide within the interval:
	// the earlier snapshot is kept, since it is the state before the burst.
	MinInterval time.Duration
}

// Manager holds per-slide undo and redo stacks. It is safe for concurrent use.
type Manager struct {
	cfg Config
	mu  sync.Mutex
	now func() time.Time

	undo map[int][]Snapshot
	redo map[int][]Snapshot
	// lastPush is when the newest undo entry of a slide was last pushed or coalesced.
	lastPush   map[int]time.Time
	totalBytes int
}

func NewManager(cfg Config) *Manager {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 8 * 1024 * 1024
	}
	if cfg.MinInterval < 0 {
		cfg.MinInterval = 0
	}
	return &Manager{
		cfg:      cfg,
		now:      time.Now,
		undo:     make(map[int][]Snapshot),
		redo:     make(map[int][]Snapshot),
		lastPush: make(map[int]time.Time),
	}
}

// PushSnapshot records the state of a slide before a change and clears that
// slide's redo stack.
func (m *Manager) PushSnapshot(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.TS.IsZero() {
		s.TS = m.now()
	}
	m.dropRedoLocked(s.Slide)
	stack := m.undo[s.Slide]
	if n := len(stack); n > 0 && m.cfg.MinInterval > 0 {
		if last, ok := m.lastPush[s.Slide]; ok && s.TS.Sub(last) < m.cfg.MinInterval {
			m.lastPush[s.Slide] = s.TS
			return
		}
	}
	m.undo[s.Slide] = append(stack, s)
	m.lastPush[s.Slide] = s.TS
	m.totalBytes += len(s.Blob)
	m.enforceCapsLocked(s.Slide)
}

// Undo pops the newest snapshot of a slide and parks current on the redo stack.
// The returned snapshot is the state to restore.
func (m *Manager) Undo(slide int, current []byte) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stack := m.undo[slide]
	if len(stack) == 0 {
		return Snapshot{}, false
	}
	s := stack[len(stack)-1]
	m.undo[slide] = stack[:len(stack)-1]
	m.totalBytes -= len(s.Blob)
	delete(m.lastPush, slide)
	m.redo[slide] = append(m.redo[slide], Snapshot{Slide: slide, Blob: current, TS: m.now()})
	m.totalBytes += len(current)
	m.enforceCapsLocked(slide)
	return s, true
}

// Redo pops the newest redo entry of a slide and pushes current back to undo.
func (m *Manager) Redo(slide int, current []byte) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.redo[slide]
	if len(r) == 0 {
		return Snapshot{}, false
	}
	s := r[len(r)-1]
	m.redo[slide] = r[:len(r)-1]
	m.totalBytes -= len(s.Blob)
	m.undo[slide] = append(m.undo[slide], Snapshot{Slide: slide, Blob: current, TS: m.now()})
	m.totalBytes += len(current)
	delete(m.lastPush, slide)
	m.enforceCapsLocked(slide)
	return s, true
}

func (m *Manager) CanUndo(slide int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo[slide]) > 0
}

func (m *Manager) CanRedo(slide int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo[slide]) > 0
}

// Stats returns current sizes for diagnostics.
func (m *Manager) Stats() (totalBytes int, slides int, undoDepth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.undo {
		if len(v) > 0 {
			slides++
		}
		undoDepth += len(v)
	}
	return m.totalBytes, slides, undoDepth
}

func (m *Manager) dropRedoLocked(slide int) {
	for _, s := range m.redo[slide] {
		m.totalBytes -= len(s.Blob)
	}
	delete(m.redo, slide)
}

func (m *Manager) enforceCapsLocked(slide int) {
	if m.cfg.MaxPerSlide > 0 {
		stack := m.undo[slide]
		if len(stack) > m.cfg.MaxPerSlide {
			toDrop := len(stack) - m.cfg.MaxPerSlide
			for i := 0; i < toDrop; i++ {
				m.totalBytes -= len(stack[i].Blob)
			}
			m.undo[slide] = append([]Snapshot{}, stack[toDrop:]...)
		}
	}
	// prune the oldest undo entry across all slides until under the cap;
	// once no undo history is left, the furthest redo entries go next
	for m.totalBytes > m.cfg.MaxBytes {
		if m.pruneOldestLocked(m.undo) {
			continue
		}
		if !m.pruneOldestLocked(m.redo) {
			break
		}
	}
}

// pruneOldestLocked drops the bottom entry of whichever stack in stacks holds
// the oldest one. It reports false when every stack is empty.
func (m *Manager) pruneOldestLocked(stacks map[int][]Snapshot) bool {
	oldest := -1
	var oldestTS time.Time
	for sl, stack := range stacks {
		if len(stack) == 0 {
			continue
		}
		if oldest == -1 || stack[0].TS.Before(oldestTS) {
			oldest = sl
			oldestTS = stack[0].TS
		}
	}
	if oldest == -1 {
		return false
	}
	stack := stacks[oldest]
	m.totalBytes -= len(stack[0].Blob)
	stacks[oldest] = stack[1:]
	if len(stacks[oldest]) == 0 {
		delete(stacks, oldest)
	}
	return true
}
