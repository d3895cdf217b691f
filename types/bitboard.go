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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit value used as a set of squares, one bit per square.
type Bitboard uint64

// Constant bitboards for convenience.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank8Bb Bitboard = 0xFF
	Rank7Bb Bitboard = Rank8Bb << (8 * 1)
	Rank6Bb Bitboard = Rank8Bb << (8 * 2)
	Rank5Bb Bitboard = Rank8Bb << (8 * 3)
	Rank4Bb Bitboard = Rank8Bb << (8 * 4)
	Rank3Bb Bitboard = Rank8Bb << (8 * 5)
	Rank2Bb Bitboard = Rank8Bb << (8 * 6)
	Rank1Bb Bitboard = Rank8Bb << (8 * 7)
)

var fileBb = [8]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [8]Bitboard{Rank8Bb, Rank7Bb, Rank6Bb, Rank5Bb, Rank4Bb, Rank3Bb, Rank2Bb, Rank1Bb}

// sqBb is the pre computed square-to-bitboard lookup.
var sqBb [64]Bitboard

func initBb() {
	for sq := 0; sq < 64; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// SetBit returns b with the bit for sq set.
func SetBit(b Bitboard, sq Square) Bitboard {
	return b | sq.Bb()
}

// ClearBit returns b with the bit for sq cleared.
func ClearBit(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether b has the bit for sq set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// GetLSB returns the least significant set bit's square. Undefined if b==0.
func (b Bitboard) GetLSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the least significant set bit's square and clears it
// from *b. Returns SqNone if *b is empty.
func (b *Bitboard) PopLSB() Square {
	if *b == BbZero {
		return SqNone
	}
	sq := b.GetLSB()
	*b &= *b - 1
	return sq
}

// ShiftBitboard shifts all bits of b by one square in direction d,
// zeroing bits that would cross the board edge. An east shift clears
// file h before shifting; a west shift clears file a.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) >> 7
	case Northwest:
		return (b &^ FileABb) >> 9
	case Southeast:
		return (b &^ FileHBb) << 9
	case Southwest:
		return (b &^ FileABb) << 7
	}
	return b
}

// String returns the 64 bit binary representation of b.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r <= Rank1; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
