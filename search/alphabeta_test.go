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
	. "github.com/nazarovsa/franky/types"
)

func newTestSearch() *Search {
	return NewSearch(evaluator.NewEvaluator(nil), nil)
}

func TestMinimaxFindsMateInOne(t *testing.T) {
	s := newTestSearch()
	// King d6 boxes in the king on d8; Ra8 along the open a-file mates.
	p, err := position.New("3k4/8/3K4/8/8/8/8/R7 w - - 0 1", 2)
	require.NoError(t, err)
	val := s.Minimax(p, ValueMin, ValueMax, true, time.Now().Add(time.Second), true)
	assert.Equal(t, ValueMax, val, "White mates Black within two plies")
}

func TestMinimaxStalemateIsZero(t *testing.T) {
	s := newTestSearch()
	// Black king on a8, no legal moves, not in check.
	p, err := position.New("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", 2)
	require.NoError(t, err)
	val := s.Minimax(p, ValueMin, ValueMax, false, time.Now().Add(time.Second), true)
	assert.Equal(t, ValueDraw, val)
}

func TestMinimaxExpiredDeadlineReturnsGiveUpValue(t *testing.T) {
	s := newTestSearch()
	p := position.NewStartPos(4)
	past := time.Now().Add(-time.Second)
	assert.Equal(t, ValueMin, s.Minimax(p, ValueMin, ValueMax, true, past, false))
	assert.Equal(t, ValueMax, s.Minimax(p, ValueMin, ValueMax, false, past, false))
}

func TestMinimaxMustFinishIgnoresExpiredDeadline(t *testing.T) {
	s := newTestSearch()
	p := position.NewStartPos(1)
	past := time.Now().Add(-time.Second)
	val := s.Minimax(p, ValueMin, ValueMax, true, past, true)
	assert.NotEqual(t, ValueMin, val, "mustFinish must search a real value even past the deadline")
}

func TestMinimaxCaptureExtendsQuiescence(t *testing.T) {
	s := newTestSearch()
	p, err := position.New("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", 1)
	require.NoError(t, err)
	s.Minimax(p, ValueMin, ValueMax, true, time.Now().Add(time.Second), true)
	assert.Positive(t, s.Stats.CaptureExtensions, "exd5 at the search horizon must extend one more ply")
}
