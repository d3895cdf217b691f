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

// Package movearray provides a fixed-capacity move list used as the
// move generator's scratch buffer. The true maximum number of legal
// moves in any reachable chess position is 218, so a 256-entry backing
// array never needs to grow or allocate.
package movearray

import . "github.com/nazarovsa/franky/types"

// MoveArray is an append-only, fixed-capacity list of moves.
type MoveArray struct {
	moves [MaxMoves]Move
	len   int
}

// New returns an empty move array.
func New() *MoveArray {
	return &MoveArray{}
}

// Push appends m. Panics if the array is already at MaxMoves capacity,
// which would indicate a move generator bug rather than a legal position.
func (a *MoveArray) Push(m Move) {
	a.moves[a.len] = m
	a.len++
}

// Len returns the number of moves currently stored.
func (a *MoveArray) Len() int { return a.len }

// At returns the move at index i.
func (a *MoveArray) At(i int) Move { return a.moves[i] }

// Set overwrites the move at index i, used by move-ordering sorts.
func (a *MoveArray) Set(i int, m Move) { a.moves[i] = m }

// Swap exchanges the moves at indices i and j.
func (a *MoveArray) Swap(i, j int) { a.moves[i], a.moves[j] = a.moves[j], a.moves[i] }

// Slice returns the stored moves as a plain slice backed by the array.
func (a *MoveArray) Slice() []Move { return a.moves[:a.len] }

// Clear empties the array without releasing its backing storage.
func (a *MoveArray) Clear() { a.len = 0 }
