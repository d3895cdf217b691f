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

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{FileABb, 8},
		{Rank1Bb, 8},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PopCount())
	}
}

func TestRankFileMasks(t *testing.T) {
	assert.True(t, Rank8Bb.Has(MakeSquare("a8")))
	assert.True(t, Rank8Bb.Has(MakeSquare("h8")))
	assert.False(t, Rank8Bb.Has(MakeSquare("a1")))

	assert.True(t, Rank1Bb.Has(MakeSquare("a1")))
	assert.True(t, Rank1Bb.Has(MakeSquare("h1")))

	assert.True(t, FileABb.Has(MakeSquare("a1")))
	assert.True(t, FileABb.Has(MakeSquare("a8")))
	assert.False(t, FileABb.Has(MakeSquare("b1")))
}

func TestSetAndClearBit(t *testing.T) {
	sq := MakeSquare("e4")
	b := SetBit(BbZero, sq)
	assert.True(t, b.Has(sq))
	b = ClearBit(b, sq)
	assert.False(t, b.Has(sq))
}

func TestPopLSB(t *testing.T) {
	b := SetBit(SetBit(BbZero, MakeSquare("a8")), MakeSquare("h1"))
	first := b.PopLSB()
	assert.Equal(t, MakeSquare("a8"), first)
	second := b.PopLSB()
	assert.Equal(t, MakeSquare("h1"), second)
	assert.Equal(t, BbZero, b)
	assert.Equal(t, SqNone, b.PopLSB())
}

func TestShiftBitboard(t *testing.T) {
	e4 := SetBit(BbZero, MakeSquare("e4"))
	assert.True(t, ShiftBitboard(e4, North).Has(MakeSquare("e5")))
	assert.True(t, ShiftBitboard(e4, South).Has(MakeSquare("e3")))
	assert.True(t, ShiftBitboard(e4, East).Has(MakeSquare("f4")))
	assert.True(t, ShiftBitboard(e4, West).Has(MakeSquare("d4")))

	// shifting off the h-file must not wrap onto the a-file.
	h4 := SetBit(BbZero, MakeSquare("h4"))
	assert.Equal(t, BbZero, ShiftBitboard(h4, East))

	a4 := SetBit(BbZero, MakeSquare("a4"))
	assert.Equal(t, BbZero, ShiftBitboard(a4, West))
}
