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

package attacks

import . "github.com/nazarovsa/franky/types"

var (
	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
	betweenBb     [SqLength][SqLength]Bitboard

	knightDeltas = [8]Direction{-17, -15, -10, -6, 6, 10, 15, 17}
	kingDeltas   = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
)

// fileDistance returns the absolute file distance between two squares,
// used to reject knight/king deltas that wrap around a board edge.
func fileDistance(a, b Square) int {
	d := int(a.FileOf()) - int(b.FileOf())
	if d < 0 {
		d = -d
	}
	return d
}

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		for _, d := range knightDeltas {
			to := sq.To(d)
			if to.IsValid() && fileDistance(sq, to) <= 2 {
				pseudoAttacks[Knight][sq] = SetBit(pseudoAttacks[Knight][sq], to)
			}
		}
		for _, d := range kingDeltas {
			to := sq.To(d)
			if to.IsValid() {
				pseudoAttacks[King][sq] = SetBit(pseudoAttacks[King][sq], to)
			}
		}
		pseudoAttacks[Bishop][sq] = slidingAttack(bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]

		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] = SetBit(pawnAttacks[White][sq], to)
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] = SetBit(pawnAttacks[White][sq], to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] = SetBit(pawnAttacks[Black][sq], to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] = SetBit(pawnAttacks[Black][sq], to)
		}
	}

	allDirections := [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	for sq := Square(0); sq < SqLength; sq++ {
		for _, d := range allDirections {
			var ray Bitboard
			s := sq
			for {
				next := s.To(d)
				if !next.IsValid() {
					break
				}
				s = next
				betweenBb[sq][s] = ray
				ray = SetBit(ray, s)
			}
		}
	}
}

// Attacks returns the squares a piece of type pt on sq attacks, given
// the full board occupancy. Sliders consult the magic-bitboard tables;
// knight and king use the pre-computed pseudo attacks (occupied is
// ignored for them). Pawn is not a valid argument; use PawnAttacks.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.attacks[mb.index(occupied)] | mr.attacks[mr.index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// PseudoAttacks returns the attacks of a piece of type pt on sq as if
// the board were empty (used for knight and king; sliders ignore
// occupancy entirely only here, callers needing real slider attacks
// must use Attacks instead).
func PseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Between returns the squares strictly between a and b if they share a
// rank, file or diagonal, or BbZero otherwise.
func Between(a, b Square) Bitboard {
	return betweenBb[a][b]
}
