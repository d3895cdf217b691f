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
	"github.com/nazarovsa/franky/evaluator"
	"github.com/nazarovsa/franky/movegen"
	"github.com/nazarovsa/franky/position"
	. "github.com/nazarovsa/franky/types"
)

// This file holds the move-ordering support too fiddly to live inline
// in the main search loop: a scratch-board shallow evaluation per
// candidate move and a stable sort over the result.

// scoredMove pairs a legal move with the static evaluation of the
// position it leads to, the shallow pass spec 4.H's move ordering runs
// before the main search loop.
type scoredMove struct {
	move  Move
	score Value
}

// orderedMoves applies every move in ml to a scratch copy of pos,
// evaluates the result, and returns the moves sorted by descending
// score. The sort is unconditional - it always favors the maximizer's
// perspective even at minimizing nodes, matching the source exactly
// (spec 4.H calls this out as suboptimal for Black but kept for
// parity with the original behavior).
func orderedMoves(pos *position.Position, ml []Move, eval *evaluator.Evaluator) []scoredMove {
	scored := make([]scoredMove, len(ml))
	for i, m := range ml {
		child := pos.ApplyMove(m)
		scored[i] = scoredMove{move: m, score: eval.Evaluate(&child)}
	}
	mergeSortDescending(scored)
	return scored
}

// mergeSortDescending sorts scored by score, highest first, stably -
// moves with equal shallow scores keep the move generator's order.
func mergeSortDescending(scored []scoredMove) {
	if len(scored) < 2 {
		return
	}
	mid := len(scored) / 2
	left := append([]scoredMove(nil), scored[:mid]...)
	right := append([]scoredMove(nil), scored[mid:]...)
	mergeSortDescending(left)
	mergeSortDescending(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i].score >= right[j].score {
			scored[k] = left[i]
			i++
		} else {
			scored[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		scored[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		scored[k] = right[j]
		j++
		k++
	}
}

// legalMoves is a thin indirection so alphabeta.go reads like the
// teacher's search loop ("generate moves, iterate") without importing
// movegen directly in three places.
func legalMoves(pos *position.Position) []Move {
	return movegen.Generate(pos).Slice()
}
