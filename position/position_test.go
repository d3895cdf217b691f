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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/nazarovsa/franky/types"
)

func TestNewStartPos(t *testing.T) {
	p := NewStartPos(4)
	assert.Equal(t, White, p.Turn())
	assert.Equal(t, CastlingAny, p.Castling())
	assert.Equal(t, SqNone, p.EnPassant())
	assert.Equal(t, 4, p.Depth())
	assert.Equal(t, StartFen, p.String())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/2k5/5Pp1/8/8/4K3 b - f3 0 1",
		"8/4P3/8/8/8/8/8/4K2k w - - 0 1",
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := New(fen, 1)
		require.NoError(t, err)
		assert.Equal(t, fen, p.String())
	}
}

func TestInvalidFen(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range cases {
		_, err := New(fen, 1)
		assert.Errorf(t, err, "expected error for FEN %q", fen)
	}
}

func TestApplyMoveSimplePush(t *testing.T) {
	p := NewStartPos(4)
	child := p.ApplyMove(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Moved: MakePiece(White, Pawn)})
	assert.Equal(t, Black, child.Turn())
	assert.Equal(t, MakeSquare("e3"), child.EnPassant())
	assert.Equal(t, Empty, child.PieceOn(MakeSquare("e2")))
	assert.Equal(t, MakePiece(White, Pawn), child.PieceOn(MakeSquare("e4")))
	assert.Equal(t, 3, child.Depth())
	assert.Equal(t, White, p.Turn(), "original position must not be mutated")
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	p, err := New("8/8/8/2k5/5Pp1/8/8/4K3 b - f3 0 1", 1)
	require.NoError(t, err)
	child := p.ApplyMove(Move{From: MakeSquare("g4"), To: MakeSquare("f3"), Moved: MakePiece(Black, Pawn)})
	assert.Equal(t, Empty, child.PieceOn(MakeSquare("g4")))
	assert.Equal(t, Empty, child.PieceOn(MakeSquare("f4")), "captured pawn must be removed")
	assert.Equal(t, MakePiece(Black, Pawn), child.PieceOn(MakeSquare("f3")))
}

func TestApplyMovePromotion(t *testing.T) {
	p, err := New("8/4P3/8/8/8/8/8/4K2k w - - 0 1", 1)
	require.NoError(t, err)
	child := p.ApplyMove(Move{From: MakeSquare("e7"), To: MakeSquare("e8"), Moved: MakePiece(White, Pawn)})
	assert.Equal(t, MakePiece(White, Queen), child.PieceOn(MakeSquare("e8")))
	assert.Equal(t, Empty, child.PieceOn(MakeSquare("e7")))
}

func TestApplyMoveCastlingMovesRook(t *testing.T) {
	p, err := New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 1)
	require.NoError(t, err)
	child := p.ApplyMove(Move{From: MakeSquare("e1"), To: MakeSquare("g1"), Moved: MakePiece(White, King)})
	assert.Equal(t, MakePiece(White, King), child.PieceOn(MakeSquare("g1")))
	assert.Equal(t, MakePiece(White, Rook), child.PieceOn(MakeSquare("f1")))
	assert.Equal(t, Empty, child.PieceOn(MakeSquare("h1")))
	assert.False(t, child.Castling().Has(CastlingSqWhiteOO))
	assert.False(t, child.Castling().Has(CastlingSqWhiteOOO))
}

func TestCastlingRightsClearedByRookMove(t *testing.T) {
	p, err := New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 1)
	require.NoError(t, err)
	child := p.ApplyMove(Move{From: MakeSquare("a1"), To: MakeSquare("a2"), Moved: MakePiece(White, Rook)})
	assert.False(t, child.Castling().Has(CastlingSqWhiteOOO))
	assert.True(t, child.Castling().Has(CastlingSqWhiteOO))
}

func TestCheckers(t *testing.T) {
	p, err := New("4k3/8/8/8/8/8/4r3/4K2R w K - 0 1", 1)
	require.NoError(t, err)
	checkers := p.Checkers()
	assert.Equal(t, 1, checkers.PopCount())
	assert.True(t, checkers.Has(MakeSquare("e2")))
}

func TestPinnedOnlySameColorBlocker(t *testing.T) {
	// White king on e1, white knight on e2 pinned by black rook on e8.
	p, err := New("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1", 1)
	require.NoError(t, err)
	assert.True(t, p.Pinned().Has(MakeSquare("e2")))

	// Same geometry but the blocker is black - it is merely a blocker,
	// never a pin, since moving it cannot expose white's king to an
	// attack it wasn't already exposed to.
	p2, err := New("4r3/8/8/8/8/8/4n3/4K3 w - - 0 1", 1)
	require.NoError(t, err)
	assert.False(t, p2.Pinned().Has(MakeSquare("e2")))
}

func TestKeyEqualForEqualPositions(t *testing.T) {
	a := NewStartPos(1)
	b, err := New(StartFen, 5)
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key(), "depth must not affect the hash")

	c := a.ApplyMove(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Moved: MakePiece(White, Pawn)})
	assert.NotEqual(t, a.Key(), c.Key())
}
