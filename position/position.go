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

// Package position implements the board representation: piece
// placement as both bitboards and a square array, side to move,
// castling rights, en-passant target, remaining search depth and
// move history. Positions are value types - ApplyMove takes a
// position by value and returns a new one rather than mutating and
// undoing.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nazarovsa/franky/assert"
	"github.com/nazarovsa/franky/attacks"
	. "github.com/nazarovsa/franky/types"
	"github.com/nazarovsa/franky/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position represents a chess position: piece placement, side to
// move, castling rights, en-passant target square and the remaining
// search depth the caller wants explored from this node.
type Position struct {
	pieces    [PieceLength]Bitboard
	squares   [SqLength]Piece
	turn      Color
	castling  CastlingRights
	enPassant Square
	depth     int
	moveList  []Move
}

// NewStartPos returns the standard starting position with the given
// remaining search depth.
func NewStartPos(depth int) *Position {
	p, err := New(StartFen, depth)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN failed to parse: %v", err))
	}
	return p
}

// New decodes a FEN string into a position. The halfmove clock and
// fullmove number fields are accepted but discarded, per spec - the
// engine tracks neither.
func New(fen string, depth int) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 6 {
		return nil, fmt.Errorf("position: invalid FEN %q: need 6 fields, got %d", fen, len(fields))
	}

	var p Position
	for sq := range p.squares {
		p.squares[sq] = Empty
	}
	p.pieces[Empty] = BbAll
	p.enPassant = SqNone
	p.depth = depth

	if err := p.decodePlacement(fields[0]); err != nil {
		return nil, fmt.Errorf("position: invalid FEN %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return nil, fmt.Errorf("position: invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	if err := p.decodeCastling(fields[2]); err != nil {
		return nil, fmt.Errorf("position: invalid FEN %q: %w", fen, err)
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("position: invalid FEN %q: bad en-passant square %q", fen, fields[3])
		}
		p.enPassant = sq
	}

	return &p, nil
}

func (p *Position) decodePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("need 8 ranks separated by '/', got %d", len(ranks))
	}
	for r, rankStr := range ranks {
		file := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			if int(file) > 7 {
				return fmt.Errorf("rank %d overflows the board", r+1)
			}
			pt, color, err := pieceFromChar(ch)
			if err != nil {
				return err
			}
			p.setSquare(SquareOf(file, Rank(r)), MakePiece(color, pt))
			file++
		}
		if int(file) != 8 {
			return fmt.Errorf("rank %d does not cover all 8 files", r+1)
		}
	}
	var whiteKings, blackKings int
	if p.pieces[MakePiece(White, King)].PopCount() == 1 {
		whiteKings = 1
	}
	if p.pieces[MakePiece(Black, King)].PopCount() == 1 {
		blackKings = 1
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("position must have exactly one king per color")
	}
	return nil
}

func pieceFromChar(ch rune) (PieceType, Color, error) {
	color := White
	c := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		c = ch - 'a' + 'A'
	}
	switch c {
	case 'P':
		return Pawn, color, nil
	case 'N':
		return Knight, color, nil
	case 'B':
		return Bishop, color, nil
	case 'R':
		return Rook, color, nil
	case 'Q':
		return Queen, color, nil
	case 'K':
		return King, color, nil
	}
	return 0, 0, fmt.Errorf("unknown piece letter %q", ch)
}

func (p *Position) decodeCastling(field string) error {
	p.castling = CastlingNone
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			p.castling |= CastlingRights(CastlingSqWhiteOO.Bb())
		case 'Q':
			p.castling |= CastlingRights(CastlingSqWhiteOOO.Bb())
		case 'k':
			p.castling |= CastlingRights(CastlingSqBlackOO.Bb())
		case 'q':
			p.castling |= CastlingRights(CastlingSqBlackOOO.Bb())
		default:
			return fmt.Errorf("bad castling field %q", field)
		}
	}
	return nil
}

// String encodes p as a FEN string. The halfmove clock and fullmove
// number are not modeled, so both are always emitted as "0 1".
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.squares[SquareOf(f, r)]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	if p.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	if p.enPassant == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassant.String())
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// StringBoard renders the position as an 8x8 ASCII board for the REPL.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r++ {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.squares[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// Turn returns the color to move.
func (p *Position) Turn() Color { return p.turn }

// Castling returns the currently available castling rights.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en-passant target square, or SqNone.
func (p *Position) EnPassant() Square { return p.enPassant }

// Depth returns the remaining plies the search should still explore
// from this node.
func (p *Position) Depth() int { return p.depth }

// SetDepth overrides the remaining search depth, used by the search
// layer when handing a child node a fresh depth budget at the start
// of an iterative-deepening frontier.
func (p *Position) SetDepth(d int) { p.depth = d }

// PieceOn returns the piece occupying sq, or Empty.
func (p *Position) PieceOn(sq Square) Piece { return p.squares[sq] }

// Pieces returns the bitboard of all squares occupied by piece.
func (p *Position) Pieces(piece Piece) Bitboard { return p.pieces[piece] }

// Occupied returns the bitboard of every occupied square.
func (p *Position) Occupied() Bitboard { return BbAll &^ p.pieces[Empty] }

// OccupiedBy returns the bitboard of every square occupied by a piece
// of the given color.
func (p *Position) OccupiedBy(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt < PtLength; pt++ {
		bb |= p.pieces[MakePiece(c, pt)]
	}
	return bb
}

// King returns the square of the color's king.
func (p *Position) King(c Color) Square {
	return p.pieces[MakePiece(c, King)].GetLSB()
}

// History returns the moves played from the initial position, in order.
func (p *Position) History() []Move { return p.moveList }

// Key computes the Zobrist hash of the position from scratch.
func (p *Position) Key() zobrist.Key {
	return zobrist.Hash(p.squares, p.turn, p.castling, p.enPassant)
}

// setSquare places piece on sq, updating both the square array and
// the bitboard of whatever piece (possibly Empty) previously occupied
// sq and of piece itself. Keeps invariants 1 and 2 in lock step.
func (p *Position) setSquare(sq Square, piece Piece) {
	old := p.squares[sq]
	p.pieces[old] = ClearBit(p.pieces[old], sq)
	p.squares[sq] = piece
	p.pieces[piece] = SetBit(p.pieces[piece], sq)
}

// ApplyMove returns the position resulting from playing m. p is left
// unmodified; positions are copied on every move application rather
// than mutated and undone.
func (p Position) ApplyMove(m Move) Position {
	assert.Assert(p.squares[m.From] == m.Moved, "Position ApplyMove: m.Moved %s does not match piece on %s", m.Moved.String(), m.From.String())
	assert.Assert(m.Moved.ColorOf() == p.turn, "Position ApplyMove: moved piece color does not match side to move")

	np := p
	np.enPassant = SqNone

	for _, trig := range CastlingClearTriggers {
		if trig.Home == m.From || trig.Home == m.To {
			np.castling = np.castling.Clear(trig.Flag)
		}
	}

	moverColor := m.Moved.ColorOf()
	moverType := m.Moved.TypeOf()

	np.setSquare(m.From, Empty)

	dest := m.Moved
	farRank := Rank8
	if moverColor == Black {
		farRank = Rank1
	}
	if moverType == Pawn && m.To.RankOf() == farRank {
		dest = MakePiece(moverColor, Queen)
	}
	np.setSquare(m.To, dest)

	if moverType == Pawn {
		delta := int(m.From) - int(m.To)
		if delta == 16 || delta == -16 {
			np.enPassant = Square((int(m.From) + int(m.To)) / 2)
		} else if m.To == p.enPassant {
			capSq := m.To - 8
			if moverColor == White {
				capSq = m.To + 8
			}
			np.setSquare(capSq, Empty)
		}
	}

	if m.IsCastling() {
		rank := m.From.RankOf()
		if m.To.FileOf() == FileG {
			np.setSquare(SquareOf(FileH, rank), Empty)
			np.setSquare(SquareOf(FileF, rank), MakePiece(moverColor, Rook))
		} else {
			np.setSquare(SquareOf(FileA, rank), Empty)
			np.setSquare(SquareOf(FileD, rank), MakePiece(moverColor, Rook))
		}
	}

	np.turn = p.turn.Flip()
	np.depth = p.depth - 1

	np.moveList = make([]Move, len(p.moveList)+1)
	copy(np.moveList, p.moveList)
	np.moveList[len(p.moveList)] = m

	return np
}

// AttackersTo returns every piece, of either color, that attacks sq
// given occupancy occ. occ is a parameter rather than always
// p.Occupied() so callers can remove a king from occupancy first (see
// AttackedByOpponent) to let sliders see through it for king-move
// legality.
func (p *Position) AttackersTo(sq Square, occ Bitboard) Bitboard {
	var att Bitboard
	att |= attacks.PawnAttacks(Black, sq) & p.pieces[MakePiece(White, Pawn)]
	att |= attacks.PawnAttacks(White, sq) & p.pieces[MakePiece(Black, Pawn)]
	knights := p.pieces[MakePiece(White, Knight)] | p.pieces[MakePiece(Black, Knight)]
	att |= attacks.PseudoAttacks(Knight, sq) & knights
	kings := p.pieces[MakePiece(White, King)] | p.pieces[MakePiece(Black, King)]
	att |= attacks.PseudoAttacks(King, sq) & kings
	bishopLike := p.pieces[MakePiece(White, Bishop)] | p.pieces[MakePiece(Black, Bishop)] |
		p.pieces[MakePiece(White, Queen)] | p.pieces[MakePiece(Black, Queen)]
	att |= attacks.Attacks(Bishop, sq, occ) & bishopLike
	rookLike := p.pieces[MakePiece(White, Rook)] | p.pieces[MakePiece(Black, Rook)] |
		p.pieces[MakePiece(White, Queen)] | p.pieces[MakePiece(Black, Queen)]
	att |= attacks.Attacks(Rook, sq, occ) & rookLike
	return att
}

// Checkers returns the enemy pieces giving check to the side to move's king.
func (p *Position) Checkers() Bitboard {
	us := p.turn
	them := us.Flip()
	return p.AttackersTo(p.King(us), p.Occupied()) & p.OccupiedBy(them)
}

// AttackedByOpponent returns the union of squares attacked by the side
// not to move, with our own king removed from occupancy so sliding
// attacks see through it - needed so a king cannot "hide" behind
// itself when evaluating its own destination squares.
func (p *Position) AttackedByOpponent() Bitboard {
	us := p.turn
	them := us.Flip()
	occ := p.Occupied() &^ p.King(us).Bb()

	var attacked Bitboard
	pawns := p.pieces[MakePiece(them, Pawn)]
	for pawns != 0 {
		attacked |= attacks.PawnAttacks(them, pawns.PopLSB())
	}
	knights := p.pieces[MakePiece(them, Knight)]
	for knights != 0 {
		attacked |= attacks.PseudoAttacks(Knight, knights.PopLSB())
	}
	attacked |= attacks.PseudoAttacks(King, p.King(them))
	bishopLike := p.pieces[MakePiece(them, Bishop)] | p.pieces[MakePiece(them, Queen)]
	for bishopLike != 0 {
		attacked |= attacks.Attacks(Bishop, bishopLike.PopLSB(), occ)
	}
	rookLike := p.pieces[MakePiece(them, Rook)] | p.pieces[MakePiece(them, Queen)]
	for rookLike != 0 {
		attacked |= attacks.Attacks(Rook, rookLike.PopLSB(), occ)
	}
	return attacked
}

// Pinned returns our pieces that would expose our king to check if
// they moved off the line connecting them to it. Only a same-color
// blocker can pin - an enemy piece sitting between its own slider and
// our king merely blocks, it never pins.
func (p *Position) Pinned() Bitboard {
	var bb Bitboard
	for sq, line := range p.pinLines() {
		if line != 0 {
			bb = SetBit(bb, sq)
		}
	}
	return bb
}

// PinLine returns the squares a pinned piece on sq may still move to:
// the line between it and our king, plus the pinning slider's own
// square (capturing the pinner is always legal). Returns BbZero if sq
// is not pinned.
func (p *Position) PinLine(sq Square) Bitboard {
	return p.pinLines()[sq]
}

func (p *Position) pinLines() map[Square]Bitboard {
	us := p.turn
	them := us.Flip()
	kingSq := p.King(us)
	occ := p.Occupied()
	lines := make(map[Square]Bitboard)

	scan := func(pt PieceType, sliders Bitboard) {
		candidates := attacks.Attacks(pt, kingSq, BbZero) & sliders
		for candidates != 0 {
			s := candidates.PopLSB()
			between := attacks.Between(kingSq, s)
			blockers := between & occ
			if blockers.PopCount() != 1 {
				continue
			}
			blockerSq := blockers.GetLSB()
			if p.squares[blockerSq].ColorOf() == us {
				lines[blockerSq] = between | s.Bb()
			}
		}
	}
	scan(Bishop, p.pieces[MakePiece(them, Bishop)]|p.pieces[MakePiece(them, Queen)])
	scan(Rook, p.pieces[MakePiece(them, Rook)]|p.pieces[MakePiece(them, Queen)])
	return lines
}
