/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements the hash-bucketed cache from a
// position's Zobrist key to its last computed {score, depth}. Storage
// is separate chaining: a fixed array of buckets, each a small
// collision list, the simplest correct scheme and the one the earliest
// draft of the original dictionary used.
package transpositiontable

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/nazarovsa/franky/logging"
	"github.com/nazarovsa/franky/zobrist"
)

var log = logging.GetLog()

// recordSize is the on-disk width of one entry: 8 byte key, 4 byte
// score, 1 byte depth, packed with no padding.
const recordSize = 13

// Entry is a single cached position evaluation.
type Entry struct {
	Key   zobrist.Key
	Score int32
	Depth uint8
}

// Stats counts table activity for diagnostics.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Overwrites uint64
}

// Table is the transposition table: buckets of Entry collision lists
// plus an insertion-order log used to make Save deterministic.
type Table struct {
	buckets [][]Entry
	order   []zobrist.Key
	Stats   Stats
}

// New creates an empty table with the given number of buckets. More
// buckets means shorter collision lists at the cost of more memory;
// config.Settings.TT.Buckets holds the engine's default.
func New(numBuckets int) *Table {
	if numBuckets < 1 {
		numBuckets = 1
	}
	return &Table{buckets: make([][]Entry, numBuckets)}
}

func (t *Table) index(k zobrist.Key) int {
	return int(uint64(k) % uint64(len(t.buckets)))
}

// Probe looks up key and reports whether an entry exists. Callers
// implementing the search contract must additionally check
// entry.Depth against the depth they need - probe returns whatever is
// cached, shallow or deep.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	for _, e := range t.buckets[t.index(key)] {
		if e.Key == key {
			t.Stats.Hits++
			return e, true
		}
	}
	t.Stats.Misses++
	return Entry{}, false
}

// get looks up key without touching Stats, used internally by Save.
func (t *Table) get(key zobrist.Key) (Entry, bool) {
	for _, e := range t.buckets[t.index(key)] {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Store records (key, score, depth), overwriting unconditionally if
// an entry for key already exists - the source does not gate stores
// by depth, so neither does this.
func (t *Table) Store(key zobrist.Key, score int32, depth uint8) {
	idx := t.index(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Score = score
			bucket[i].Depth = depth
			t.Stats.Overwrites++
			return
		}
	}
	t.buckets[idx] = append(bucket, Entry{Key: key, Score: score, Depth: depth})
	t.order = append(t.order, key)
}

// Len returns the number of distinct keys currently stored.
func (t *Table) Len() int { return len(t.order) }

// Save writes every entry to path in insertion order as a flat stream
// of fixed-width 13-byte records in little-endian byte order.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var buf [recordSize]byte
	for _, k := range t.order {
		e, ok := t.get(k)
		if !ok {
			continue
		}
		binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Key))
		binary.LittleEndian.PutUint32(buf[8:12], uint32(e.Score))
		buf[12] = e.Depth
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Load reads records from path until EOF, inserting each one;
// duplicate keys in the file overwrite earlier ones, same as Store.
// A missing or malformed file is not fatal - the caller proceeds with
// an empty table, per the spec's persistence error policy.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var buf [recordSize]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				log.Warningf("transpositiontable: truncated record at end of %s, ignoring", path)
				return nil
			}
			return err
		}
		key := zobrist.Key(binary.LittleEndian.Uint64(buf[0:8]))
		score := int32(binary.LittleEndian.Uint32(buf[8:12]))
		depth := buf[12]
		t.Store(key, score, depth)
	}
}
