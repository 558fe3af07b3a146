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

package store

import (
	"sync"
	"testing"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_01(t *testing.T) {
	// Identical requests derive identical keys.
	k1 := Key(logic.S4, "□P", []logic.Formula{"P", "Q"})
	k2 := Key(logic.S4, "□P", []logic.Formula{"P", "Q"})
	assert.Equal(t, k1, k2)
}

func Test_Store_02(t *testing.T) {
	// Any component changing changes the key.
	base := Key(logic.K, "P", []logic.Formula{"Q"})
	assert.NotEqual(t, base, Key(logic.T, "P", []logic.Formula{"Q"}))
	assert.NotEqual(t, base, Key(logic.K, "Q", []logic.Formula{"Q"}))
	assert.NotEqual(t, base, Key(logic.K, "P", []logic.Formula{"R"}))
	assert.NotEqual(t, base, Key(logic.K, "P", nil))
}

func Test_Store_03(t *testing.T) {
	// Record survives a marshal round trip.
	r := Record{
		Logic:       "S5",
		Goal:        "□◇P",
		Assumptions: []string{"◇P"},
		Proved:      true,
		Worlds:      2,
		Steps:       []proof.Step{proof.New("5", []string{"◇P"}, "□◇P", "euclidean property")},
	}
	//
	blob, err := r.Marshal()
	require.NoError(t, err)
	//
	back, err := UnmarshalRecord(blob)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func Test_Store_04(t *testing.T) {
	checkStore(t, NewMemory())
}

func Test_Store_05(t *testing.T) {
	db, err := OpenBadger("")
	require.NoError(t, err)
	//
	checkStore(t, db)
}

func Test_Store_06(t *testing.T) {
	// Concurrent writers under one key, exactly one blob wins.
	var (
		s  = NewMemory()
		wg sync.WaitGroup
	)
	//
	for i := 0; i < 8; i++ {
		wg.Add(1)
		//
		go func(n byte) {
			defer wg.Done()
			_ = s.Put("contended", []byte{n})
		}(byte(i))
	}
	//
	wg.Wait()
	//
	blob, ok, err := s.Get("contended")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, blob, 1)
}

// checkStore exercises the Store contract against a given implementation.
func checkStore(t *testing.T, s Store) {
	defer s.Close()
	// Missing keys report unbound without error.
	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	// First write binds.
	require.NoError(t, s.Put("k", []byte("first")))
	//
	blob, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("first"), blob)
	// Second write is a no-op.
	require.NoError(t, s.Put("k", []byte("second")))
	//
	blob, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("first"), blob)
}
