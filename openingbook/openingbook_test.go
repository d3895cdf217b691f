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

package openingbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazarovsa/franky/config"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/zobrist"
)

func TestGenerateRootEntryHasTwentyOpeningMoves(t *testing.T) {
	b := NewBook()
	b.Reset()
	defer restoreBudget(setBudget(64, true))

	b.Generate()

	root := position.NewStartPos(0)
	entry, found := b.GetEntry(root.Key())
	require.True(t, found, "the root position must always be recorded")
	assert.Equal(t, 20, len(entry.Moves), "White has 20 legal opening moves")
}

func TestGenerateIsIdempotent(t *testing.T) {
	b := NewBook()
	defer restoreBudget(setBudget(64, true))

	b.Generate()
	first := b.NumberOfEntries()
	b.Generate()

	assert.Equal(t, first, b.NumberOfEntries(), "a second Generate call on an initialized book must be a no-op")
}

func TestResetAllowsRegeneration(t *testing.T) {
	b := NewBook()
	defer restoreBudget(setBudget(64, true))

	b.Generate()
	require.Positive(t, b.NumberOfEntries())

	b.Reset()
	assert.Equal(t, 0, b.NumberOfEntries())

	b.Generate()
	assert.Positive(t, b.NumberOfEntries())
}

func TestGenerateRespectsMaxBoardsBudget(t *testing.T) {
	b := NewBook()
	defer restoreBudget(setBudget(1, true))

	b.Generate()

	// A budget of one board only ever expands the root.
	assert.Equal(t, 21, b.NumberOfEntries(), "root plus its 20 immediate replies")
}

func TestBookMoveReturnsAKnownContinuation(t *testing.T) {
	b := NewBook()
	defer restoreBudget(setBudget(64, true))
	b.Generate()

	root := position.NewStartPos(0)
	move, ok := b.BookMove(root)
	require.True(t, ok)
	assert.True(t, move.IsValid())
}

func TestBookMoveMissesUnknownPosition(t *testing.T) {
	b := NewBook()
	defer restoreBudget(setBudget(1, true))
	b.Generate()

	p, err := position.New("8/8/8/8/8/8/8/K6k w - - 0 1", 0)
	require.NoError(t, err)
	_, ok := b.BookMove(p)
	assert.False(t, ok)
}

func TestGetEntryMissReturnsFalse(t *testing.T) {
	b := NewBook()
	_, ok := b.GetEntry(zobrist.Key(0xdeadbeef))
	assert.False(t, ok)
}

func TestSequentialGenerationMatchesParallel(t *testing.T) {
	prevMax, prevParallel := setBudget(48, true)
	defer restoreBudget(prevMax, prevParallel)

	parallelBook := NewBook()
	parallelBook.Generate()

	setBudget(48, false)
	sequentialBook := NewBook()
	sequentialBook.Generate()

	assert.Equal(t, parallelBook.NumberOfEntries(), sequentialBook.NumberOfEntries())
}

// setBudget overrides the book generation config for a single test and
// returns the previous values so the caller can restore them.
func setBudget(maxBoards int, parallel bool) (int, bool) {
	prevMax, prevParallel := config.Settings.Book.MaxBoards, config.Settings.Book.Parallel
	config.Settings.Book.MaxBoards = maxBoards
	config.Settings.Book.Parallel = parallel
	return prevMax, prevParallel
}

func restoreBudget(prevMax int, prevParallel bool) {
	config.Settings.Book.MaxBoards = prevMax
	config.Settings.Book.Parallel = prevParallel
}
