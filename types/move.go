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

// Move is a single chess move. Promotion and castling are both
// implicit in From/To/Moved rather than carried as separate fields:
// a pawn landing on the far back rank is always promoted to a queen,
// and a king moving two files is always a castle.
type Move struct {
	From  Square
	To    Square
	Moved Piece
}

// MoveNone is the reserved "no move" sentinel. Both of its squares are
// SqNone, so IsValid reports false for it. It is not the zero value:
// the all-zero Move is a8a8 with a White pawn.
var MoveNone = Move{From: SqNone, To: SqNone, Moved: Empty}

// IsValid reports whether m carries real From/To squares.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// IsCastling reports whether m moves a king two files, the only way a
// king ever changes file by more than one step.
func (m Move) IsCastling() bool {
	if m.Moved.TypeOf() != King {
		return false
	}
	df := int(m.From.FileOf()) - int(m.To.FileOf())
	return df == 2 || df == -2
}

// String renders m in pure coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	if !m.IsValid() {
		return "-"
	}
	return m.From.String() + m.To.String()
}
