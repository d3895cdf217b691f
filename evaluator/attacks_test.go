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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nazarovsa/franky/types"
)

func TestAttacksOfRookOpenFile(t *testing.T) {
	atk := attacksOf(Rook, MakeSquare("a1"), BbZero)
	assert.True(t, atk.Has(MakeSquare("a8")))
	assert.True(t, atk.Has(MakeSquare("h1")))
}

func TestAttacksOfPawnDiagonals(t *testing.T) {
	atk := attacksOfPawn(White, MakeSquare("e4"))
	assert.True(t, atk.Has(MakeSquare("d5")))
	assert.True(t, atk.Has(MakeSquare("f5")))
	assert.False(t, atk.Has(MakeSquare("e5")), "pawns never attack the square directly ahead")
}

func TestPieceSquareTablesRewardAdvancedPawns(t *testing.T) {
	// Squares are numbered a8..h1, the same top-down order the table is
	// authored in, so a White pawn deep into Black's territory (rank 7)
	// indexes straight into the table's high-reward row.
	rank2 := pieceSquareTables[Pawn][int(MakeSquare("a2"))]
	rank7 := pieceSquareTables[Pawn][int(MakeSquare("a7"))]
	assert.Greater(t, rank7, rank2, "a pawn closer to promotion scores higher")
}

func TestMirrorRankKeepsFileFlipsRank(t *testing.T) {
	assert.Equal(t, MakeSquare("a7"), mirrorRank(MakeSquare("a2")))
	assert.Equal(t, MakeSquare("e1"), mirrorRank(MakeSquare("e8")))
}

func TestPieceSquareTablesCoverEveryPieceType(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		table := pieceSquareTables[pt]
		assert.Len(t, table, 64)
	}
}
