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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nazarovsa/franky/position"
)

// TestPerftDepth4And5 is slow (nearly five million leaves at depth 5)
// and is skipped under -short.
func TestPerftDepth4And5(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 5 is slow, skipped under -short")
	}
	p := position.NewStartPos(1)
	assert.Equal(t, uint64(197281), Perft(p, 4))
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}

func TestDivideSumsToPerft(t *testing.T) {
	p := position.NewStartPos(1)
	divide := Divide(p, 3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	assert.Equal(t, Perft(p, 3), sum)
}
