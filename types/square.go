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

// Square represents exactly one square on a chess board.
// Square 0 is rank 8 file a; square 63 is rank 1 file h - the same order
// a FEN string is scanned in, rank 8 down to rank 1.
type Square uint8

// SqNone is the reserved "no square" value (e.g. no en-passant target).
const SqNone Square = 64

// File represents a chess board file a-h.
type File uint8

// File constants.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// IsValid checks if f represents a valid file.
func (f File) IsValid() bool {
	return f < FileNone
}

const fileLabels = "abcdefgh"

// String returns the file letter, or "-" if invalid.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// Bb returns the bitboard of all squares on file f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Rank represents a chess board rank 1-8.
type Rank uint8

// Rank constants.
const (
	Rank8 Rank = iota // the rank FEN scanning starts from
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
	RankNone
)

// IsValid checks if r represents a valid rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels = "87654321"

// String returns the rank digit, or "-" if invalid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}

// Bb returns the bitboard of all squares on rank r.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// IsValid checks if sq represents a valid square (i.e. sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of the square (Rank8 at index 0).
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf returns a square from file and rank, or SqNone for an
// invalid file or rank.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// MakeSquare parses a two character square string (e.g. "e4") using
// conventional algebraic rank numbering (rank '1' is the White back
// rank). Returns SqNone if the string does not represent a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	algebraicRank := s[1] - '1' // 0 for rank 1, 7 for rank 8
	if !f.IsValid() || algebraicRank > 7 {
		return SqNone
	}
	return SquareOf(f, Rank(7-algebraicRank))
}

// String returns the algebraic notation of the square (e.g. "e4"), or
// "-" if sq is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	algebraicRank := '1' + (7 - byte(sq.RankOf()))
	return sq.FileOf().String() + string(algebraicRank)
}

// To returns the square reached by moving one step in direction d from
// sq, or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North, Northeast, Northwest:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South, Southeast, Southwest:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	}
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	next := int(sq) + int(d)
	if next < 0 || next >= 64 {
		return SqNone
	}
	return Square(next)
}
