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

// Package evaluator computes a static score for a chess position, used
// by search both at leaf nodes and for shallow move ordering.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/nazarovsa/franky/config"
	myLogging "github.com/nazarovsa/franky/logging"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/transpositiontable"
	. "github.com/nazarovsa/franky/types"
)

// Evaluator computes a static score for a position from White's point
// of view (positive favors White), combining material, mobility,
// castling rights and piece-square terms against an optional
// transposition cache.
type Evaluator struct {
	log *logging.Logger
	tt  *transpositiontable.Table
}

// NewEvaluator creates an Evaluator. tt may be nil, in which case the
// transposition-caching term (spec 4.G.6) is skipped entirely.
func NewEvaluator(tt *transpositiontable.Table) *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
		tt:  tt,
	}
}

// Evaluate scores pos from White's perspective. A position missing
// either king returns a bounded infinity for the side that still has
// one - legal play never reaches this state, but the move generator's
// guarantees are not this function's to trust.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	whiteKing := pos.King(White)
	blackKing := pos.King(Black)
	if whiteKing == SqNone {
		return -ValueInf
	}
	if blackKing == SqNone {
		return ValueInf
	}

	useCache := e.tt != nil && config.Settings.Eval.UseTTCache
	if useCache {
		if entry, ok := e.tt.Probe(pos.Key()); ok && int(entry.Depth) >= pos.Depth() {
			return Value(entry.Score)
		}
	}

	var value Value
	value += e.material(pos)
	if config.Settings.Eval.UseAttacks {
		value += e.mobility(pos)
	}
	if config.Settings.Eval.UseCastling {
		value += e.castlingTerm(pos)
	}
	if config.Settings.Eval.UsePST {
		value += e.pst(pos)
	}

	if useCache {
		e.tt.Store(pos.Key(), int32(value), uint8(pos.Depth()))
	}
	return value
}

// colorSign is 1 for White, -1 for Black, i.e. 1-2*color.
func colorSign(c Color) Value {
	if c == White {
		return 1
	}
	return -1
}

func (e *Evaluator) material(pos *position.Position) Value {
	var value Value
	factor := Value(config.Settings.Eval.PieceFactor)
	for pt := Pawn; pt < PtLength; pt++ {
		if pt == King {
			continue
		}
		for _, c := range [2]Color{White, Black} {
			n := pos.Pieces(MakePiece(c, pt)).PopCount()
			value += Value(n) * Value(pt.ValueOf()) * colorSign(c) * factor
		}
	}
	return value
}

func (e *Evaluator) mobility(pos *position.Position) Value {
	var value Value
	factor := Value(config.Settings.Eval.AttackFactor)
	for pt := Pawn; pt < PtLength; pt++ {
		if pt == King {
			continue
		}
		for _, c := range [2]Color{White, Black} {
			opp := pos.OccupiedBy(c.Flip())
			bb := pos.Pieces(MakePiece(c, pt))
			for bb != BbZero {
				sq := bb.PopLSB()
				var atk Bitboard
				if pt == Pawn {
					atk = attacksOfPawn(c, sq)
				} else {
					atk = attacksOf(pt, sq, opp)
				}
				n := (atk & opp).PopCount()
				value += Value(n) * Value(pt.ValueOf()) * colorSign(c) * factor
			}
		}
	}
	return value
}

func (e *Evaluator) castlingTerm(pos *position.Position) Value {
	bonus := Value(config.Settings.Eval.CastlingBonus)
	var value Value
	if pos.Castling().Has(CastlingSqWhiteOO) {
		value -= bonus
	}
	if pos.Castling().Has(CastlingSqWhiteOOO) {
		value -= bonus
	}
	if pos.Castling().Has(CastlingSqBlackOO) {
		value += bonus
	}
	if pos.Castling().Has(CastlingSqBlackOOO) {
		value += bonus
	}
	return value
}

// mirrorRank flips a square's rank while keeping its file - used to
// reuse one White-oriented piece-square table for Black. The board's
// square numbering already runs a8..h1 (rank 8 first), the same
// top-down order the table is authored in, so White pieces index it
// directly and only Black needs the flip.
func mirrorRank(sq Square) Square {
	return SquareOf(sq.FileOf(), Rank(7-int(sq.RankOf())))
}

func (e *Evaluator) pst(pos *position.Position) Value {
	var value Value
	for pt := Pawn; pt < PtLength; pt++ {
		white := pos.Pieces(MakePiece(White, pt))
		for white != BbZero {
			sq := white.PopLSB()
			value += Value(pieceSquareTables[pt][int(sq)])
		}
		black := pos.Pieces(MakePiece(Black, pt))
		for black != BbZero {
			sq := black.PopLSB()
			value -= Value(pieceSquareTables[pt][int(mirrorRank(sq))])
		}
	}
	return value
}
