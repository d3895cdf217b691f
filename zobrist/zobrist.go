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

// Package zobrist computes and persists the random 64-bit key tables
// used to hash chess positions for the transposition table. The key
// tables are drawn once at process start: from the seed file if one
// exists on disk, or freshly from a deterministic PRNG (and then saved)
// otherwise.
package zobrist

import (
	"github.com/nazarovsa/franky/config"
	"github.com/nazarovsa/franky/logging"
	. "github.com/nazarovsa/franky/types"
)

var log = logging.GetLog()

// Key is a Zobrist hash value.
type Key uint64

// table holds one random value per hashable position feature.
type table struct {
	piecePos    [SqLength][PieceLength]Key
	enPassant   [SqLength]Key
	castling    [4]Key
	blackToMove Key
}

var keys table

func init() {
	if err := load(config.Settings.Zobrist.SeedFilePath); err != nil {
		log.Infof("zobrist: no usable seed file (%v), generating new keys", err)
		generate(config.Settings.Zobrist.PRNGSeed)
		if err := save(config.Settings.Zobrist.SeedFilePath); err != nil {
			log.Warningf("zobrist: could not save seed file: %v", err)
		}
	}
}

// generate draws a fresh random key table from the given PRNG seed.
func generate(seed int64) {
	r := newRandom(seed)
	for sq := Square(0); sq < SqLength; sq++ {
		for p := Piece(0); p < PieceLength; p++ {
			keys.piecePos[sq][p] = Key(r.rand64())
		}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		keys.enPassant[sq] = Key(r.rand64())
	}
	for i := range keys.castling {
		keys.castling[i] = Key(r.rand64())
	}
	keys.blackToMove = Key(r.rand64())
}

// Hash computes the Zobrist key of a position described by its piece
// placement, side to move, castling rights and en-passant square.
func Hash(squares [SqLength]Piece, turn Color, castling CastlingRights, enPassant Square) Key {
	var h Key
	for sq := Square(0); sq < SqLength; sq++ {
		if p := squares[sq]; !p.IsEmpty() {
			h ^= keys.piecePos[sq][p]
		}
	}
	if enPassant != SqNone {
		h ^= keys.enPassant[enPassant]
	}
	for i := 0; i < 4; i++ {
		if castling.Bit(i) {
			h ^= keys.castling[i]
		}
	}
	if turn == Black {
		h ^= keys.blackToMove
	}
	return h
}
