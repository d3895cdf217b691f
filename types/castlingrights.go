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

package types

// CastlingRights is a bitboard whose only meaningful bits are the four
// castling destination squares (the king's landing square for each of
// the two sides, for each color). A set bit means that castling is
// still available; source material keeps the flags on the back-rank
// squares rather than in an abstract four-bit field.
type CastlingRights Bitboard

// The four castling destination squares, in Zobrist castling[] order:
// White king-side, White queen-side, Black king-side, Black queen-side.
var (
	CastlingSqWhiteOO  = SquareOf(FileG, Rank1)
	CastlingSqWhiteOOO = SquareOf(FileC, Rank1)
	CastlingSqBlackOO  = SquareOf(FileG, Rank8)
	CastlingSqBlackOOO = SquareOf(FileC, Rank8)
)

// CastlingSquares lists the four flag squares in Zobrist castling[] order.
var CastlingSquares = [4]Square{CastlingSqWhiteOO, CastlingSqWhiteOOO, CastlingSqBlackOO, CastlingSqBlackOOO}

// CastlingClearTrigger pairs a king or rook home square with the flag
// that a move touching that square (as source or destination) must
// clear - a move away from, or a capture on, a king's or rook's own
// home square loses the right even when it lands somewhere other than
// the king's final castled square.
type CastlingClearTrigger struct {
	Home Square
	Flag Square
}

// CastlingClearTriggers lists every (home square, flag) pair that must
// be checked when applying a move, grounded on
// original_source/src/ChessBoard.c's KINGSIDE_CASTLING/
// QUEENSIDE_CASTLING masks, which sit on e1/h1/a1 (and the black
// equivalents) rather than on the king's destination square.
var CastlingClearTriggers = [8]CastlingClearTrigger{
	{SquareOf(FileE, Rank1), CastlingSqWhiteOO},
	{SquareOf(FileE, Rank1), CastlingSqWhiteOOO},
	{SquareOf(FileH, Rank1), CastlingSqWhiteOO},
	{SquareOf(FileA, Rank1), CastlingSqWhiteOOO},
	{SquareOf(FileE, Rank8), CastlingSqBlackOO},
	{SquareOf(FileE, Rank8), CastlingSqBlackOOO},
	{SquareOf(FileH, Rank8), CastlingSqBlackOO},
	{SquareOf(FileA, Rank8), CastlingSqBlackOOO},
}

// CastlingNone is the empty set of castling rights.
const CastlingNone CastlingRights = 0

// CastlingAny has every flag square set; used as the initial state for
// a position with full starting rights.
var CastlingAny = func() CastlingRights {
	var c CastlingRights
	for _, sq := range CastlingSquares {
		c |= CastlingRights(sq.Bb())
	}
	return c
}()

// Has reports whether the castling flag on sq is still available.
func (c CastlingRights) Has(sq Square) bool {
	return Bitboard(c)&sq.Bb() != 0
}

// Clear returns c with the flag on sq cleared, a no-op if sq carries no flag.
func (c CastlingRights) Clear(sq Square) CastlingRights {
	return c &^ CastlingRights(sq.Bb())
}

// Bit reports whether the i-th flag square (per CastlingSquares order,
// i.e. Zobrist castling[] order) is still set.
func (c CastlingRights) Bit(i int) bool {
	return c.Has(CastlingSquares[i])
}

// String renders the rights in canonical FEN "KQkq" order, "-" if none.
func (c CastlingRights) String() string {
	s := ""
	if c.Has(CastlingSqWhiteOO) {
		s += "K"
	}
	if c.Has(CastlingSqWhiteOOO) {
		s += "Q"
	}
	if c.Has(CastlingSqBlackOO) {
		s += "k"
	}
	if c.Has(CastlingSqBlackOOO) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
