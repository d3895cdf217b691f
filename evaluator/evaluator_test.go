/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/transpositiontable"
	. "github.com/nazarovsa/franky/types"
)

func TestEvaluateStartPosIsSymmetric(t *testing.T) {
	e := NewEvaluator(nil)
	p := position.NewStartPos(1)
	assert.Zero(t, e.Evaluate(p), "the start position has no material, mobility or PST imbalance")
}

func TestEvaluateMissingKingIsInfinite(t *testing.T) {
	e := NewEvaluator(nil)
	p, err := position.New("8/8/8/8/8/8/8/4K3 w - - 0 1", 1)
	require.NoError(t, err)
	assert.Equal(t, ValueInf, e.Evaluate(p), "White still has a king, Black does not")

	p2, err := position.New("4k3/8/8/8/8/8/8/8 w - - 0 1", 1)
	require.NoError(t, err)
	assert.Equal(t, -ValueInf, e.Evaluate(p2))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	e := NewEvaluator(nil)
	p, err := position.New("4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 1)
	require.NoError(t, err)
	assert.Positive(t, e.Evaluate(p), "an extra queen must score positively for White")
}

func TestEvaluateCastlingRightsPenalizeTheHolder(t *testing.T) {
	e := NewEvaluator(nil)
	withRights, err := position.New("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", 1)
	require.NoError(t, err)
	withoutRights, err := position.New("4k3/8/8/8/8/8/8/R3K2R w - - 0 1", 1)
	require.NoError(t, err)
	assert.Less(t, e.Evaluate(withRights), e.Evaluate(withoutRights),
		"holding castling rights costs the stand-in penalty until they're used or lost")
}

func TestEvaluateUsesTranspositionCacheWhenDeepEnough(t *testing.T) {
	tt := transpositiontable.New(64)
	e := NewEvaluator(tt)
	p := position.NewStartPos(3)

	tt.Store(p.Key(), 12345, 3)
	assert.EqualValues(t, 12345, e.Evaluate(p), "a cached entry at sufficient depth is returned verbatim")
}

func TestEvaluateRecomputesWhenCacheIsShallow(t *testing.T) {
	tt := transpositiontable.New(64)
	e := NewEvaluator(tt)
	p := position.NewStartPos(5)

	tt.Store(p.Key(), 12345, 2)
	assert.NotEqual(t, Value(12345), e.Evaluate(p), "a cache entry shallower than pos.Depth() must not be trusted")
}

func TestEvaluateStoresAfterComputing(t *testing.T) {
	tt := transpositiontable.New(64)
	e := NewEvaluator(tt)
	p, err := position.New("4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 2)
	require.NoError(t, err)

	want := e.Evaluate(p)
	entry, ok := tt.Probe(p.Key())
	require.True(t, ok)
	assert.EqualValues(t, want, entry.Score)
	assert.EqualValues(t, 2, entry.Depth)
}
