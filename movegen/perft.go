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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nazarovsa/franky/position"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaves of the legal-move tree rooted at pos to the
// given depth - the standard correctness benchmark for a move
// generator. Perft(pos, 0) is 1 (the position itself counts as a leaf).
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml := Generate(pos)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		child := pos.ApplyMove(ml.At(i))
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// Divide runs perft one ply at a time and reports the leaf count under
// each root move, useful for isolating which branch of a failing perft
// diverges from the expected count.
func Divide(pos *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	ml := Generate(pos)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		child := pos.ApplyMove(m)
		result[m.String()] = Perft(&child, depth-1)
	}
	return result
}

// Report runs Perft and prints timing and node-rate statistics in the
// package's message.Printer style, mirroring the teacher's CLI output.
func Report(pos *position.Position, depth int) uint64 {
	out.Printf("Performing perft to depth %d from %s\n", depth, pos.String())
	start := time.Now()
	nodes := Perft(pos, depth)
	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = nodes * uint64(time.Second.Nanoseconds()) / uint64(elapsed.Nanoseconds())
	}
	out.Printf("Nodes: %d  Time: %d ms  NPS: %d\n", nodes, elapsed.Milliseconds(), nps)
	return nodes
}
