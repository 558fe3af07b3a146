// Copyright The go-tableau Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package store provides the key→blob persistence surface that proof results
// are handed to.  The core provers know nothing about storage; callers derive
// a content key for a proof request and hand the serialised record to a
// Store.  Identical concurrent requests follow an at-most-once-wins
// discipline: the first write under a key sticks, later writes are no-ops.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/proof"
)

// Store is a minimal key→blob persistence surface.
type Store interface {
	// Put stores a blob under a key.  If the key is already bound, the
	// existing blob wins and the call is a no-op.
	Put(key string, blob []byte) error
	// Get retrieves the blob bound to a key, reporting whether the key was
	// bound at all.
	Get(key string) ([]byte, bool, error)
	// Close releases any resources held by the store.
	Close() error
}

// Key derives the deterministic content key for a proof request.  Identical
// requests always derive identical keys, which is what makes the
// first-write-wins discipline a memoisation.
func Key(l logic.Logic, goal logic.Formula, assumptions []logic.Formula) string {
	h := sha256.New()
	//
	h.Write([]byte(l.String()))
	h.Write([]byte{0})
	h.Write([]byte(goal))
	//
	for _, a := range assumptions {
		h.Write([]byte{0})
		h.Write([]byte(a))
	}
	//
	return hex.EncodeToString(h.Sum(nil))
}

// Record is the serialised outcome of a proof request.
type Record struct {
	Logic       string       `json:"logic"`
	Goal        string       `json:"goal"`
	Assumptions []string     `json:"assumptions,omitempty"`
	Proved      bool         `json:"proved"`
	Worlds      uint         `json:"worlds"`
	Steps       []proof.Step `json:"steps,omitempty"`
}

// Marshal serialises this record into a storable blob.
func (r Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalRecord deserialises a blob previously produced by Marshal.
func UnmarshalRecord(blob []byte) (Record, error) {
	var r Record
	//
	err := json.Unmarshal(blob, &r)
	//
	return r, err
}

// ============================================================================
// In-memory store
// ============================================================================

// Memory is an in-memory store, suitable for tests and single-process use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory constructs a fresh in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Put implementation for the Store interface.
func (p *Memory) Put(key string, blob []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	// First write wins
	if _, ok := p.blobs[key]; !ok {
		p.blobs[key] = blob
	}
	//
	return nil
}

// Get implementation for the Store interface.
func (p *Memory) Get(key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	//
	blob, ok := p.blobs[key]
	//
	return blob, ok, nil
}

// Close implementation for the Store interface.
func (p *Memory) Close() error {
	return nil
}
