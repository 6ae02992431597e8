// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package catalog persists enumerated De Bruijn sequences in a LevelDB
// instance, keyed by their canonical ordinal. Since the enumeration always
// runs from ordinal 1 upward, a catalog holds a contiguous prefix of the
// canonical order and its size doubles as its enumeration progress.
package catalog

//go:generate mockgen -source catalog.go -destination catalog_mocks.go -package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/debruijn"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// ErrNotFound is reported when a requested ordinal has not been stored.
var ErrNotFound = errors.New("ordinal not in catalog")

// Store is the write/read interface of a sequence catalog as used by the
// enumeration tooling.
type Store interface {
	// Put records the sequence with the given canonical ordinal. Writes are
	// batched; they are only guaranteed durable after Flush or Close.
	Put(ordinal uint64, seq debruijn.Sequence) error

	// Get returns the stored sequence for the ordinal, or ErrNotFound.
	// Unflushed writes are not visible.
	Get(ordinal uint64) (debruijn.Sequence, error)

	// Count returns the highest flushed ordinal, which for a catalog filled
	// by the enumeration equals the number of stored sequences.
	Count() (uint64, error)

	// Flush commits all buffered writes.
	Flush() error

	// Close flushes and releases the underlying database.
	Close() error
}

const (
	// tableSequences prefixes ordinal-to-sequence rows.
	tableSequences = byte('s')

	// batchLimit is the number of buffered Put calls that triggers an
	// automatic commit.
	batchLimit = 4096
)

// Catalog is a LevelDB backed Store.
type Catalog struct {
	db    *leveldb.DB
	batch leveldb.Batch
}

// Open creates or reopens a catalog in the given directory.
func Open(directory string) (*Catalog, error) {
	db, err := leveldb.OpenFile(directory, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog in %s: %w", directory, err)
	}
	return &Catalog{db: db}, nil
}

func sequenceKey(ordinal uint64) [9]byte {
	var key [9]byte
	key[0] = tableSequences
	binary.BigEndian.PutUint64(key[1:], ordinal)
	return key
}

func (c *Catalog) Put(ordinal uint64, seq debruijn.Sequence) error {
	key := sequenceKey(ordinal)
	var value [8]byte
	binary.BigEndian.PutUint64(value[:], uint64(seq))
	c.batch.Put(key[:], value[:])
	if c.batch.Len() >= batchLimit {
		return c.Flush()
	}
	return nil
}

func (c *Catalog) Get(ordinal uint64) (debruijn.Sequence, error) {
	key := sequenceKey(ordinal)
	value, err := c.db.Get(key[:], nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, fmt.Errorf("ordinal %d: %w", ordinal, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read ordinal %d: %w", ordinal, err)
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("corrupted catalog entry for ordinal %d", ordinal)
	}
	return debruijn.Sequence(binary.BigEndian.Uint64(value)), nil
}

func (c *Catalog) Count() (uint64, error) {
	iter := c.db.NewIterator(nil, nil)
	defer iter.Release()
	if !iter.Last() {
		return 0, iter.Error()
	}
	key := iter.Key()
	if len(key) != 9 || key[0] != tableSequences {
		return 0, fmt.Errorf("corrupted catalog key %x", key)
	}
	return binary.BigEndian.Uint64(key[1:]), iter.Error()
}

func (c *Catalog) Flush() error {
	if c.batch.Len() == 0 {
		return nil
	}
	if err := c.db.Write(&c.batch, nil); err != nil {
		return fmt.Errorf("failed to commit catalog batch: %w", err)
	}
	c.batch.Reset()
	return nil
}

func (c *Catalog) Close() error {
	return errors.Join(c.Flush(), c.db.Close())
}
