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

// Package types contains the primitive data types shared by every other
// package of the engine: squares, bitboards, pieces, moves and values.
// Many of these would be perfect enum candidates but Go does not provide enums.
package types

func init() {
	initBb()
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth the mate-value encoding supports.
	MaxDepth = 128

	// MaxMoves is a safe upper bound for a single position's legal move list
	// (the true maximum ever reached is 218).
	MaxMoves = 256

	// KB is 1024 bytes.
	KB uint64 = 1024

	// MB is KB*KB bytes.
	MB uint64 = KB * KB
)
