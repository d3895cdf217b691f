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

package transpositiontable

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazarovsa/franky/zobrist"
)

func TestNewHasRequestedBuckets(t *testing.T) {
	tt := New(16)
	assert.Equal(t, 16, len(tt.buckets))
	assert.Equal(t, 0, tt.Len())
}

func TestNewClampsBelowOne(t *testing.T) {
	tt := New(0)
	assert.Equal(t, 1, len(tt.buckets))
}

func TestStoreAndProbe(t *testing.T) {
	tt := New(64)
	key := zobrist.Key(12345)

	_, ok := tt.Probe(key)
	assert.False(t, ok)
	assert.EqualValues(t, 1, tt.Stats.Misses)

	tt.Store(key, 99, 4)
	e, ok := tt.Probe(key)
	require.True(t, ok)
	assert.Equal(t, key, e.Key)
	assert.EqualValues(t, 99, e.Score)
	assert.EqualValues(t, 4, e.Depth)
	assert.EqualValues(t, 1, tt.Stats.Hits)
	assert.Equal(t, 1, tt.Len())
}

func TestStoreOverwritesExistingKey(t *testing.T) {
	tt := New(1)
	key := zobrist.Key(7)

	tt.Store(key, 10, 2)
	tt.Store(key, 20, 3)

	assert.Equal(t, 1, tt.Len(), "overwriting an existing key must not grow the table")
	assert.EqualValues(t, 1, tt.Stats.Overwrites)
	e, ok := tt.Probe(key)
	require.True(t, ok)
	assert.EqualValues(t, 20, e.Score)
	assert.EqualValues(t, 3, e.Depth)
}

func TestCollisionsShareABucket(t *testing.T) {
	tt := New(4)
	a, b := zobrist.Key(1), zobrist.Key(5) // 1 % 4 == 5 % 4

	tt.Store(a, 1, 1)
	tt.Store(b, 2, 2)

	assert.Equal(t, 2, tt.Len())
	ea, ok := tt.Probe(a)
	require.True(t, ok)
	assert.EqualValues(t, 1, ea.Score)
	eb, ok := tt.Probe(b)
	require.True(t, ok)
	assert.EqualValues(t, 2, eb.Score)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tt := New(8)
	tt.Store(zobrist.Key(1), 100, 1)
	tt.Store(zobrist.Key(2), -200, 2)
	tt.Store(zobrist.Key(3), 0, 3)

	path := t.TempDir() + "/tt.dat"
	require.NoError(t, tt.Save(path))

	loaded := New(8)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, tt.Len(), loaded.Len())

	for _, k := range []zobrist.Key{1, 2, 3} {
		want, ok := tt.Probe(k)
		require.True(t, ok)
		got, ok := loaded.Probe(k)
		require.True(t, ok)
		assert.Equal(t, want.Score, got.Score)
		assert.Equal(t, want.Depth, got.Depth)
	}
}

func TestSaveDoesNotPolluteStats(t *testing.T) {
	tt := New(8)
	tt.Store(zobrist.Key(1), 1, 1)
	tt.Store(zobrist.Key(2), 2, 2)

	path := t.TempDir() + "/tt.dat"
	require.NoError(t, tt.Save(path))
	assert.Zero(t, tt.Stats.Hits, "serializing the table must not count as search probes")
	assert.Zero(t, tt.Stats.Misses)
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	tt := New(8)
	err := tt.Load("/nonexistent/path/to/tt.dat")
	assert.Error(t, err)
	assert.Equal(t, 0, tt.Len(), "caller proceeds with an empty table on load failure")
}

func TestLoadOverwritesDuplicateKeys(t *testing.T) {
	tt := New(8)
	tt.Store(zobrist.Key(9), 1, 1)
	path := t.TempDir() + "/tt.dat"
	require.NoError(t, tt.Save(path))

	dst := New(8)
	dst.Store(zobrist.Key(9), 999, 9)
	require.NoError(t, dst.Load(path))

	e, ok := dst.Probe(zobrist.Key(9))
	require.True(t, ok)
	assert.EqualValues(t, 1, e.Score, "loaded record overwrites the pre-existing entry for the same key")

	_ = os.Remove(path)
}
