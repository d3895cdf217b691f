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

// PieceType is a set of constants for piece types in chess.
type PieceType int8

// Piece type constants, ordered the way the position's FEN codec expects.
const (
	Pawn     PieceType = 0
	King     PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Queen    PieceType = 5
	PtLength PieceType = 6
)

var pieceTypeToString = [PtLength]string{"Pawn", "King", "Knight", "Bishop", "Rook", "Queen"}

// String returns a string representation of a piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "PKNBRQ"

// Char returns a single upper-case char for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// pieceValue is the material value in pawns, per spec's evaluator term 2.
var pieceValue = [PtLength]int{1, 0, 3, 3, 5, 9}

// ValueOf returns the material value of the piece type in pawns.
// Kings have no material value - the evaluator handles them via the
// terminal shortcut instead.
func (pt PieceType) ValueOf() int {
	return pieceValue[pt]
}

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PtLength
}
