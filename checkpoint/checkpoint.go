// Copyright 2023-2026 The pyscanner Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package checkpoint stores serialized scanner snapshots keyed by input
// position, so a host can rewind to the nearest checkpoint at or before the
// point it needs to re-scan from, whether for speculative parsing or after
// an edit invalidates downstream tokens.
package checkpoint

import (
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from input offsets to scanner snapshots.
//
// A zero value is ready to use. Map is not synchronized; like the scanner
// itself, it belongs to a single parse session on a single goroutine.
type Map[K constraints.Integer] struct {
	tree btree.Map[K, []byte]
}

// Set records a snapshot taken at the given offset, replacing any previous
// snapshot at that offset.
//
// The snapshot is copied; callers may reuse their buffer.
func (m *Map[K]) Set(offset K, snapshot []byte) {
	buf := make([]byte, len(snapshot))
	copy(buf, snapshot)
	m.tree.Set(offset, buf)
}

// Before returns the checkpoint with the greatest offset at or before the
// given offset.
//
// If no such checkpoint exists, ok is false and the host should restore the
// initial state instead.
func (m *Map[K]) Before(offset K) (at K, snapshot []byte, ok bool) {
	iter := m.tree.Iter()

	// Seek lands on the first checkpoint at or after offset; anything later
	// than offset means we want its predecessor.
	found := iter.Seek(offset)
	switch {
	case found && iter.Key() == offset:
	case found:
		if !iter.Prev() {
			return 0, nil, false
		}
	default:
		if !iter.Last() {
			return 0, nil, false
		}
	}

	return iter.Key(), iter.Value(), true
}

// Invalidate drops every checkpoint at or after the given offset. Hosts call
// this when an edit makes downstream state stale.
func (m *Map[K]) Invalidate(from K) {
	var stale []K
	m.tree.Ascend(from, func(key K, _ []byte) bool {
		stale = append(stale, key)
		return true
	})
	for _, key := range stale {
		m.tree.Delete(key)
	}
}

// Len returns the number of checkpoints recorded.
func (m *Map[K]) Len() int {
	return m.tree.Len()
}
