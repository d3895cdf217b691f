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

// Package attacks pre-computes every lookup table the move generator and
// evaluator need to turn "piece on square" into "squares it attacks":
// magic-bitboard slider attacks for bishop/rook/queen, pseudo attacks for
// knight/king/pawn, and the between-two-squares masks used for check and
// pin detection.
package attacks

import . "github.com/nazarovsa/franky/types"

// magic holds the magic-bitboard data for a single square. Taken from
// Stockfish's "fancy magic bitboards" approach.
type magic struct {
	mask    Bitboard
	number  Bitboard
	attacks []Bitboard
	shift   uint
}

// index computes the slot in attacks for a given occupancy.
func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

var (
	rookTable  []Bitboard
	rookMagics [SqLength]magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]magic

	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}
)

// slidingAttack computes sliding attacks along directions from sq on a
// board occupied by occupied, stopping at (and including) the first
// occupied square in each direction. Only used for pre-computation.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack = SetBit(attack, s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// xorshift64star is Sebastiano Vigna's pseudo-random number generator,
// used here only to find magic numbers during table initialization.
type xorshift64star struct{ s uint64 }

func (r *xorshift64star) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a random value with roughly 1/8th of its bits set,
// which converges to a valid magic number faster than a uniform draw.
func (r *xorshift64star) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

// seeds are the per-rank PRNG seeds Stockfish found converge quickly.
var seeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(table *[]Bitboard, magics *[SqLength]magic, directions [4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var size int
	cnt := 0

	for sq := Square(0); sq < SqLength; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == 0 {
			m.attacks = *table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := xorshift64star{s: seeds[sq.RankOf()]}
		for i := 0; i < size; {
			for {
				m.number = Bitboard(rng.sparse())
				if ((m.number * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func init() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, rookDirections)
	initMagics(&bishopTable, &bishopMagics, bishopDirections)
}
