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

// Package search implements iterative-deepening alpha-beta search over
// positions produced by movegen, scored by evaluator, cached in a
// shared transpositiontable.Table.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nazarovsa/franky/evaluator"
	myLogging "github.com/nazarovsa/franky/logging"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/transpositiontable"
	. "github.com/nazarovsa/franky/types"
)

var out = message.NewPrinter(language.English)

// Search represents the data structure for a chess engine search.
// Create a new instance with NewSearch().
type Search struct {
	log   *logging.Logger
	eval  *evaluator.Evaluator
	tt    *transpositiontable.Table
	Stats Statistics
}

// NewSearch creates a Search bound to the given evaluator and
// transposition table. tt may be nil to run without caching.
func NewSearch(eval *evaluator.Evaluator, tt *transpositiontable.Table) *Search {
	return &Search{
		log:  myLogging.GetSearchLog(),
		eval: eval,
		tt:   tt,
	}
}

// BestMove runs iterative deepening from root until timeBudget expires
// and at least minDepth has completed, advancing the search frontier
// by depthStep plies each round.
func (s *Search) BestMove(root *position.Position, limits SearchLimits) Result {
	start := time.Now()
	deadline := start.Add(limits.TimeBudget)

	rootMoves := legalMoves(root)
	if len(rootMoves) == 0 {
		return Result{BestMove: MoveNone, SearchTime: time.Since(start)}
	}

	depthFrontier := root.Depth()
	bestMove := MoveNone
	var bestVal Value
	haveBest := false
	committedDepth := 0
	rootMaximizing := root.Turn() == White

	for time.Now().Before(deadline) || depthFrontier <= limits.MinDepth {
		mustFinish := depthFrontier <= limits.MinDepth

		var roundMove Move
		var roundVal Value
		roundHas := false

		for _, m := range rootMoves {
			child := root.ApplyMove(m)
			child.SetDepth(depthFrontier)
			val := s.Minimax(&child, ValueMin, ValueMax, !rootMaximizing, deadline, mustFinish)

			improves := !roundHas
			if roundHas {
				if rootMaximizing {
					improves = val > roundVal
				} else {
					improves = val < roundVal
				}
			}
			if improves {
				roundMove, roundVal, roundHas = m, val, true
			}
		}

		if roundHas && (time.Now().Before(deadline) || depthFrontier <= limits.MinDepth) {
			bestMove, bestVal, haveBest = roundMove, roundVal, true
			committedDepth = depthFrontier
			if limits.Verbose {
				s.log.Infof("depth %d bestmove %s value %s", depthFrontier, bestMove, bestVal)
			}
		}

		depthFrontier += limits.DepthStep
		if bestVal == ValueMax || bestVal == ValueMin {
			break
		}
	}

	if !haveBest {
		bestMove = rootMoves[0]
	}

	return Result{
		BestMove:    bestMove,
		BestValue:   bestVal,
		SearchDepth: committedDepth,
		SearchTime:  time.Since(start),
	}
}
