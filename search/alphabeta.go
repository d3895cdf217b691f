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
	"time"

	"github.com/nazarovsa/franky/position"
	. "github.com/nazarovsa/franky/types"
)

// Minimax is a recursive alpha-beta search over a copy of pos. Scores
// are always from White's point of view - there is no negamax sign
// flip, since evaluate() never changes frame; only the maximizing flag
// tells the caller which side is choosing at this node.
func (s *Search) Minimax(pos *position.Position, alpha, beta Value, maximizing bool, deadline time.Time, mustFinish bool) Value {
	s.Stats.NodesVisited++

	if !mustFinish && !time.Now().Before(deadline) {
		s.Stats.TimeChecksGaveUp++
		if maximizing {
			return ValueMin
		}
		return ValueMax
	}

	if s.tt != nil {
		if entry, ok := s.tt.Probe(pos.Key()); ok && int(entry.Depth) >= pos.Depth() {
			return Value(entry.Score)
		}
	}

	if pos.Depth() == 0 {
		s.Stats.Leaves++
		return s.eval.Evaluate(pos)
	}

	ml := legalMoves(pos)
	if len(ml) == 0 {
		if pos.Checkers() == BbZero {
			return ValueDraw
		}
		if pos.Turn() == Black {
			return ValueMax
		}
		return ValueMin
	}

	ordered := orderedMoves(pos, ml, s.eval)

	best := ValueMax
	if maximizing {
		best = ValueMin
	}

	for _, sm := range ordered {
		capture := !pos.PieceOn(sm.move.To).IsEmpty()
		child := pos.ApplyMove(sm.move)
		if child.Depth() == 0 && capture {
			child.SetDepth(1)
			s.Stats.CaptureExtensions++
		}

		val := s.Minimax(&child, alpha, beta, !maximizing, deadline, mustFinish)

		if maximizing {
			if val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if val < best {
				best = val
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			s.Stats.BetaCutoffs++
			break
		}
	}

	if s.tt != nil {
		s.tt.Store(pos.Key(), int32(best), uint8(pos.Depth()))
	}
	return best
}
