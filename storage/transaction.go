// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - the write set of one registry operation
//
// all writes are queued into a LevelDB batch and either commit
// together or never reach the database; Get sees the queued writes
// before the committed state
type Transaction struct {
	batch *leveldb.Batch
	cache Cache
}

// NewTransaction - start collecting a write set
func NewTransaction() *Transaction {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("storage.NewTransaction nil database")
	}
	return &Transaction{
		batch: new(leveldb.Batch),
		cache: poolData.cache,
	}
}

// Put - queue a key/value store
func (trx *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	prefixed := pool.prefixKey(key)
	trx.cache.Set(dbPut, string(prefixed), value)
	trx.batch.Put(prefixed, value)
}

// PutN - queue a big endian uint64 store
func (trx *Transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

// Delete - queue a key removal
func (trx *Transaction) Delete(pool *PoolHandle, key []byte) {
	prefixed := pool.prefixKey(key)
	trx.cache.Set(dbDelete, string(prefixed), nil)
	trx.batch.Delete(prefixed)
}

// Get - read a value, seeing queued writes before committed state
func (trx *Transaction) Get(pool *PoolHandle, key []byte) []byte {
	prefixed := pool.prefixKey(key)
	if value, op, found := trx.cache.Get(string(prefixed)); found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	return pool.Get(key)
}

// GetN - read a big endian uint64, seeing queued writes first
func (trx *Transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	prefixed := pool.prefixKey(key)
	if value, op, found := trx.cache.Get(string(prefixed)); found {
		if dbDelete == op {
			return 0, false
		}
		if 8 != len(value) {
			logger.Panicf("transaction.GetN truncated record for: %x: %x", key, value)
		}
		return binary.BigEndian.Uint64(value), true
	}
	return pool.GetN(key)
}

// Commit - write the whole batch to the database
func (trx *Transaction) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("transaction.Commit nil database")
	}
	err := poolData.db.Write(trx.batch, nil)
	trx.cache.Clear()
	return err
}

// Abort - discard all queued writes
func (trx *Transaction) Abort() {
	trx.batch.Reset()
	trx.cache.Clear()
}
