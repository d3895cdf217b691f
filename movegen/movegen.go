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

// Package movegen enumerates legal moves for the side to move,
// accounting for pins, checks, castling legality and en-passant
// discovered checks. It never emits a pseudo-legal move that still
// needs filtering by the caller.
package movegen

import (
	"github.com/nazarovsa/franky/assert"
	"github.com/nazarovsa/franky/attacks"
	"github.com/nazarovsa/franky/movearray"
	"github.com/nazarovsa/franky/position"
	. "github.com/nazarovsa/franky/types"
)

// Generate returns every legal move for the side to move in pos.
func Generate(pos *position.Position) *movearray.MoveArray {
	ml := movearray.New()

	us := pos.Turn()
	them := us.Flip()
	kingSq := pos.King(us)
	if assert.DEBUG {
		assert.Assert(kingSq.IsValid(), "MoveGen Generate: side to move has no king")
	}
	checkers := pos.Checkers()
	attacked := pos.AttackedByOpponent()
	occ := pos.Occupied()
	ownOcc := pos.OccupiedBy(us)

	checkMask := checkMaskFor(pos, kingSq, checkers)
	numCheckers := checkers.PopCount()

	if numCheckers < 2 {
		generatePawnMoves(pos, ml, us, them, checkMask, occ)
		generatePieceMoves(pos, ml, us, Knight, checkMask, occ, ownOcc)
		generatePieceMoves(pos, ml, us, Bishop, checkMask, occ, ownOcc)
		generatePieceMoves(pos, ml, us, Rook, checkMask, occ, ownOcc)
		generatePieceMoves(pos, ml, us, Queen, checkMask, occ, ownOcc)
	}

	generateKingMoves(ml, us, kingSq, attacked, ownOcc)

	if numCheckers == 0 {
		generateCastling(pos, ml, us, attacked, occ)
	}

	return ml
}

// checkMaskFor computes the set of destination squares that resolve
// the current check: every square when not in check, the checker's
// square plus the blocking squares when in check from a single
// slider, and nothing (king moves only) under double check.
func checkMaskFor(pos *position.Position, kingSq Square, checkers Bitboard) Bitboard {
	switch checkers.PopCount() {
	case 0:
		return BbAll
	case 1:
		checkerSq := checkers.GetLSB()
		mask := checkerSq.Bb()
		switch pos.PieceOn(checkerSq).TypeOf() {
		case Bishop, Rook, Queen:
			mask |= attacks.Between(kingSq, checkerSq)
		}
		return mask
	default:
		return BbZero
	}
}

func generatePieceMoves(pos *position.Position, ml *movearray.MoveArray, us Color, pt PieceType, checkMask, occ, ownOcc Bitboard) {
	pieces := pos.Pieces(MakePiece(us, pt))
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacks.Attacks(pt, from, occ) &^ ownOcc & checkMask
		if line := pos.PinLine(from); line != 0 {
			targets &= line
		}
		for targets != 0 {
			ml.Push(Move{From: from, To: targets.PopLSB(), Moved: MakePiece(us, pt)})
		}
	}
}

func generateKingMoves(ml *movearray.MoveArray, us Color, kingSq Square, attacked, ownOcc Bitboard) {
	targets := attacks.PseudoAttacks(King, kingSq) &^ ownOcc &^ attacked
	for targets != 0 {
		ml.Push(Move{From: kingSq, To: targets.PopLSB(), Moved: MakePiece(us, King)})
	}
}

func generatePawnMoves(pos *position.Position, ml *movearray.MoveArray, us, them Color, checkMask, occ Bitboard) {
	forward := North
	startRank := Rank2
	if us == Black {
		forward = South
		startRank = Rank7
	}

	pawns := pos.Pieces(MakePiece(us, Pawn))
	for pawns != 0 {
		from := pawns.PopLSB()
		restrict := checkMask
		if line := pos.PinLine(from); line != 0 {
			restrict &= line
		}

		moved := MakePiece(us, Pawn)

		if to := from.To(forward); to.IsValid() && !occ.Has(to) {
			if restrict.Has(to) {
				ml.Push(Move{From: from, To: to, Moved: moved})
			}
			if from.RankOf() == startRank {
				if to2 := to.To(forward); to2.IsValid() && !occ.Has(to2) && restrict.Has(to2) {
					ml.Push(Move{From: from, To: to2, Moved: moved})
				}
			}
		}

		for _, d := range pawnCaptureDirections(us) {
			to := from.To(d)
			if !to.IsValid() || !occ.Has(to) {
				continue
			}
			if pos.PieceOn(to).ColorOf() != them {
				continue
			}
			if restrict.Has(to) {
				ml.Push(Move{From: from, To: to, Moved: moved})
			}
		}
	}

	generateEnPassant(pos, ml, us, them)
}

func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

// generateEnPassant handles the en-passant capture separately: the
// destination square is empty (it is the square jumped over, not the
// captured pawn's square), so it cannot be screened by checkMask the
// way ordinary captures are. A capture of the pawn that just gave
// check, or a capture that unpins a second attacker along the 4th/5th
// rank, both need the actual resulting position checked - so legality
// here is always decided by applying the move and testing it.
func generateEnPassant(pos *position.Position, ml *movearray.MoveArray, us, them Color) {
	ep := pos.EnPassant()
	if ep == SqNone {
		return
	}
	candidates := pos.Pieces(MakePiece(us, Pawn)) & attacks.PawnAttacks(them, ep)
	for candidates != 0 {
		from := candidates.PopLSB()
		m := Move{From: from, To: ep, Moved: MakePiece(us, Pawn)}
		child := pos.ApplyMove(m)
		if child.AttackersTo(child.King(us), child.Occupied())&child.OccupiedBy(them) == 0 {
			ml.Push(m)
		}
	}
}

func generateCastling(pos *position.Position, ml *movearray.MoveArray, us Color, attacked, occ Bitboard) {
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingSq := SquareOf(FileE, rank)
	if pos.King(us) != kingSq {
		return
	}
	castling := pos.Castling()

	ooFlag, oooFlag := CastlingSqWhiteOO, CastlingSqWhiteOOO
	if us == Black {
		ooFlag, oooFlag = CastlingSqBlackOO, CastlingSqBlackOOO
	}

	if castling.Has(ooFlag) {
		f1, g1, h1 := SquareOf(FileF, rank), SquareOf(FileG, rank), SquareOf(FileH, rank)
		if assert.DEBUG {
			assert.Assert(pos.PieceOn(h1) == MakePiece(us, Rook), "MoveGen Castling: king side rook missing on %s", h1.String())
		}
		between := f1.Bb() | g1.Bb()
		transit := kingSq.Bb() | between
		if occ&between == 0 && attacked&transit == 0 {
			ml.Push(Move{From: kingSq, To: g1, Moved: MakePiece(us, King)})
		}
	}
	if castling.Has(oooFlag) {
		d1, c1, b1, a1 := SquareOf(FileD, rank), SquareOf(FileC, rank), SquareOf(FileB, rank), SquareOf(FileA, rank)
		if assert.DEBUG {
			assert.Assert(pos.PieceOn(a1) == MakePiece(us, Rook), "MoveGen Castling: queen side rook missing on %s", a1.String())
		}
		empty := d1.Bb() | c1.Bb() | b1.Bb()
		transit := kingSq.Bb() | d1.Bb() | c1.Bb()
		if occ&empty == 0 && attacked&transit == 0 {
			ml.Push(Move{From: kingSq, To: c1, Moved: MakePiece(us, King)})
		}
	}
}
