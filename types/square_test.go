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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareIndexing(t *testing.T) {
	assert.EqualValues(t, 0, SquareOf(FileA, Rank8))
	assert.EqualValues(t, 7, SquareOf(FileH, Rank8))
	assert.EqualValues(t, 56, SquareOf(FileA, Rank1))
	assert.EqualValues(t, 63, SquareOf(FileH, Rank1))
}

func TestMakeSquareAndString(t *testing.T) {
	tests := []struct {
		algebraic string
		sq        Square
	}{
		{"a8", 0},
		{"h8", 7},
		{"a1", 56},
		{"h1", 63},
		{"e4", SquareOf(FileE, Rank4)},
		{"e2", SquareOf(FileE, Rank2)},
	}
	for _, test := range tests {
		got := MakeSquare(test.algebraic)
		assert.Equal(t, test.sq, got, "MakeSquare(%s)", test.algebraic)
		assert.Equal(t, test.algebraic, got.String())
	}
}

func TestMakeSquareInvalid(t *testing.T) {
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("a"))
}

func TestFileAndRankOf(t *testing.T) {
	sq := SquareOf(FileD, Rank5)
	assert.Equal(t, FileD, sq.FileOf())
	assert.Equal(t, Rank5, sq.RankOf())
}

func TestSquareTo(t *testing.T) {
	e4 := MakeSquare("e4")
	assert.Equal(t, MakeSquare("e5"), e4.To(North))
	assert.Equal(t, MakeSquare("e3"), e4.To(South))
	assert.Equal(t, MakeSquare("f4"), e4.To(East))
	assert.Equal(t, MakeSquare("d4"), e4.To(West))

	a1 := MakeSquare("a1")
	assert.Equal(t, SqNone, a1.To(South))
	assert.Equal(t, SqNone, a1.To(West))

	h8 := MakeSquare("h8")
	assert.Equal(t, SqNone, h8.To(North))
	assert.Equal(t, SqNone, h8.To(East))
}
