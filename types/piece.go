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

// Piece is a set of constants for colored pieces in chess.
// Encoding: piece = pieceType*2 + color, giving 12 colored codes
// plus one reserved Empty code.
type Piece int8

// PieceLength is the number of piece codes including Empty.
const PieceLength = 13

// Empty is the reserved piece code for an empty square.
const Empty Piece = 12

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(pt)*2 + int(c))
}

// ColorOf returns the color of the given piece. Undefined for Empty.
func (p Piece) ColorOf() Color {
	return Color(p % 2)
}

// TypeOf returns the piece type of the given piece. Undefined for Empty.
func (p Piece) TypeOf() PieceType {
	return PieceType(p / 2)
}

// IsEmpty reports whether p is the reserved empty-square code.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// ValueOf returns the material value of the piece in pawns.
func (p Piece) ValueOf() int {
	if p.IsEmpty() {
		return 0
	}
	return p.TypeOf().ValueOf()
}

var pieceToChar = [PieceLength]string{
	"P", "p", "K", "k", "N", "n", "B", "b", "R", "r", "Q", "q", ".",
}

// String returns the FEN letter for the piece (upper-case White,
// lower-case Black), or "." for Empty.
func (p Piece) String() string {
	return pieceToChar[p]
}
