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
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Badger is a store backed by an on-disk badger database, giving proof
// results persistence across processes.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger-backed store rooted at the given
// directory.  An empty directory name opens an in-memory database instead,
// which is what the tests use.
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	//
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	//
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	//
	return &Badger{db: db}, nil
}

// Put implementation for the Store interface.
func (p *Badger) Put(key string, blob []byte) error {
	return p.db.Update(func(txn *badger.Txn) error {
		// First write wins
		_, err := txn.Get([]byte(key))
		//
		if errors.Is(err, badger.ErrKeyNotFound) {
			return txn.Set([]byte(key), blob)
		}
		//
		return err
	})
}

// Get implementation for the Store interface.
func (p *Badger) Get(key string) ([]byte, bool, error) {
	var blob []byte
	//
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		//
		blob, err = item.ValueCopy(nil)
		//
		return err
	})
	//
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	//
	return blob, true, nil
}

// Close implementation for the Store interface.
func (p *Badger) Close() error {
	return p.db.Close()
}
