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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazarovsa/franky/evaluator"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/transpositiontable"
	. "github.com/nazarovsa/franky/types"
)

func TestBestMoveRespectsMinDepthEvenWithNoTimeBudget(t *testing.T) {
	s := newTestSearch()
	p := position.NewStartPos(1)
	limits := SearchLimits{MinDepth: 2, DepthStep: 1, TimeBudget: 0}

	result := s.BestMove(p, limits)

	require.NotEqual(t, MoveNone, result.BestMove, "a legal opening move must be returned")
	assert.GreaterOrEqual(t, result.SearchDepth, limits.MinDepth)
}

func TestBestMoveExpiresOnTimeBudget(t *testing.T) {
	s := newTestSearch()
	p := position.NewStartPos(1)
	limits := SearchLimits{MinDepth: 1, DepthStep: 1, TimeBudget: 50 * time.Millisecond}

	start := time.Now()
	result := s.BestMove(p, limits)
	elapsed := time.Since(start)

	require.NotEqual(t, MoveNone, result.BestMove)
	assert.Less(t, elapsed, 2*time.Second, "the iterative deepening loop must stop once the budget and min depth are both satisfied")
}

func TestBestMoveStopsEarlyOnForcedMate(t *testing.T) {
	s := newTestSearch()
	// King d6 boxes in the king on d8; Ra8 mates on the first move searched.
	p, err := position.New("3k4/8/3K4/8/8/8/8/R7 w - - 0 1", 1)
	require.NoError(t, err)
	limits := SearchLimits{MinDepth: 1, DepthStep: 1, TimeBudget: 2 * time.Second}

	result := s.BestMove(p, limits)

	assert.Equal(t, ValueMax, result.BestValue, "a forced mate must stop iterative deepening immediately")
}

func TestBestMoveWithNoLegalMovesReturnsZeroResult(t *testing.T) {
	s := newTestSearch()
	// Black to move, not in check, and every king move walks into the
	// queen or the white king: stalemate, no root moves to search.
	p, err := position.New("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", 1)
	require.NoError(t, err)
	limits := SearchLimits{MinDepth: 1, DepthStep: 1, TimeBudget: 50 * time.Millisecond}

	result := s.BestMove(p, limits)

	assert.Equal(t, MoveNone, result.BestMove, "stalemate leaves no root move to play")
}

func TestBestMoveUsesSharedTranspositionTable(t *testing.T) {
	tt := transpositiontable.New(1024)
	s := NewSearch(evaluator.NewEvaluator(tt), tt)
	p := position.NewStartPos(2)
	limits := SearchLimits{MinDepth: 2, DepthStep: 1, TimeBudget: time.Second}

	result := s.BestMove(p, limits)

	require.NotEqual(t, MoveNone, result.BestMove)
	assert.Positive(t, tt.Len(), "search and evaluation share the table and must populate it")
}

