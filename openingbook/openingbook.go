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

// Package openingbook builds a book of known positions by breadth-first
// self-play: starting at the initial position, it enumerates legal
// continuations level by level rather than reading a PGN/SAN game
// database. A position already reached by a different transposition is
// recorded once and not re-expanded.
package openingbook

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nazarovsa/franky/config"
	myLogging "github.com/nazarovsa/franky/logging"
	"github.com/nazarovsa/franky/movegen"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/zobrist"
	. "github.com/nazarovsa/franky/types"
)

var out = message.NewPrinter(language.English)

// Successor pairs a move with the zobrist key of the position it leads to.
type Successor struct {
	Move Move
	Key  zobrist.Key
}

// BookEntry describes a single position reached during generation: its
// key, how many distinct lines transposed into it, and the moves known
// to lead away from it.
type BookEntry struct {
	Key     zobrist.Key
	Counter int
	Moves   []Successor
}

// Book is an in-memory opening book built by Generate.
type Book struct {
	log         *logging.Logger
	entries     map[zobrist.Key]BookEntry
	rootKey     zobrist.Key
	initialized bool
}

// NewBook returns an empty, ungenerated book.
func NewBook() *Book {
	return &Book{
		log:     myLogging.GetLog(),
		entries: make(map[zobrist.Key]BookEntry),
	}
}

// childMove pairs a move played from a frontier board with the
// resulting board, the unit of work expand hands back to Generate.
type childMove struct {
	move  Move
	board *position.Position
}

// Generate runs the BFS. It expands at most
// config.Settings.Book.MaxBoards boards total, budget spent one board
// per frontier member per level - the same board-count budget
// OpeningBookGenerate spends one board at a time, just amortized over
// whole frontier levels here so the per-level expansion can run in
// parallel goroutines via errgroup.
func (b *Book) Generate() {
	if b.initialized {
		return
	}
	start := time.Now()

	root := position.NewStartPos(0)
	b.rootKey = root.Key()
	b.entries[b.rootKey] = BookEntry{Key: b.rootKey}

	frontier := []*position.Position{root}
	budget := config.Settings.Book.MaxBoards

	for len(frontier) > 0 && budget > 0 {
		if len(frontier) > budget {
			frontier = frontier[:budget]
		}
		budget -= len(frontier)

		expansions := make([][]childMove, len(frontier))
		if config.Settings.Book.Parallel {
			var g errgroup.Group
			for i, p := range frontier {
				i, p := i, p
				g.Go(func() error {
					expansions[i] = expand(p)
					return nil
				})
			}
			_ = g.Wait()
		} else {
			for i, p := range frontier {
				expansions[i] = expand(p)
			}
		}

		var nextFrontier []*position.Position
		for i, kids := range expansions {
			parent := frontier[i]
			entry := b.entries[parent.Key()]
			for _, kid := range kids {
				entry.Moves = append(entry.Moves, Successor{Move: kid.move, Key: kid.board.Key()})
				if existing, ok := b.entries[kid.board.Key()]; ok {
					existing.Counter++
					b.entries[kid.board.Key()] = existing
				} else {
					b.entries[kid.board.Key()] = BookEntry{Key: kid.board.Key(), Counter: 1}
					nextFrontier = append(nextFrontier, kid.board)
				}
			}
			b.entries[parent.Key()] = entry
		}
		frontier = nextFrontier
	}

	b.initialized = true
	b.log.Infof("opening book generated %s entries in %d ms",
		out.Sprintf("%d", len(b.entries)), time.Since(start).Milliseconds())
}

// expand plays every legal move from p and returns the resulting boards.
// movegen is not safe to share across goroutines, so callers must only
// invoke expand for one board at a time per goroutine.
func expand(p *position.Position) []childMove {
	ml := movegen.Generate(p).Slice()
	kids := make([]childMove, 0, len(ml))
	for _, m := range ml {
		child := p.ApplyMove(m)
		kids = append(kids, childMove{move: m, board: &child})
	}
	return kids
}

// NumberOfEntries returns how many distinct positions the book knows.
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// GetEntry returns a copy of the entry for key, if the BFS ever reached it.
func (b *Book) GetEntry(key zobrist.Key) (BookEntry, bool) {
	e, ok := b.entries[key]
	return e, ok
}

// BookMove returns a known continuation for pos. ok is false if pos was
// never reached during generation or has no recorded successors.
func (b *Book) BookMove(pos *position.Position) (Move, bool) {
	entry, ok := b.entries[pos.Key()]
	if !ok || len(entry.Moves) == 0 {
		return MoveNone, false
	}
	return entry.Moves[0].Move, true
}

// Reset discards all entries so the book can be generated again.
func (b *Book) Reset() {
	b.entries = make(map[zobrist.Key]BookEntry)
	b.rootKey = 0
	b.initialized = false
}
