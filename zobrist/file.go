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

package zobrist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/nazarovsa/franky/types"
)

// load reads the key table from a text seed file. The file has four
// blocks of whitespace-separated unsigned 64-bit decimals, one value
// per table entry: 64 lines of 13 values (piece position keys, one
// line per square), one line of 64 values (en passant), one line of 4
// values (castling) and one line of 1 value (black to move).
func load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var t table
	for sq := Square(0); sq < SqLength; sq++ {
		line, err := nextLine(scanner)
		if err != nil {
			return fmt.Errorf("zobrist seed file %s: piece row %d: %w", path, sq, err)
		}
		fields := strings.Fields(line)
		if len(fields) != PieceLength {
			return fmt.Errorf("zobrist seed file %s: piece row %d has %d fields, want %d", path, sq, len(fields), PieceLength)
		}
		for p := 0; p < PieceLength; p++ {
			v, err := strconv.ParseUint(fields[p], 10, 64)
			if err != nil {
				return fmt.Errorf("zobrist seed file %s: piece row %d: %w", path, sq, err)
			}
			t.piecePos[sq][p] = Key(v)
		}
	}

	if err := parseRow(scanner, path, "en passant", t.enPassant[:]); err != nil {
		return err
	}
	if err := parseRow(scanner, path, "castling", t.castling[:]); err != nil {
		return err
	}
	btm := make([]Key, 1)
	if err := parseRow(scanner, path, "black to move", btm); err != nil {
		return err
	}
	t.blackToMove = btm[0]

	keys = t
	return nil
}

func nextLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of file")
	}
	return scanner.Text(), nil
}

func parseRow(scanner *bufio.Scanner, path, name string, dst []Key) error {
	line, err := nextLine(scanner)
	if err != nil {
		return fmt.Errorf("zobrist seed file %s: %s row: %w", path, name, err)
	}
	fields := strings.Fields(line)
	if len(fields) != len(dst) {
		return fmt.Errorf("zobrist seed file %s: %s row has %d fields, want %d", path, name, len(fields), len(dst))
	}
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return fmt.Errorf("zobrist seed file %s: %s row: %w", path, name, err)
		}
		dst[i] = Key(v)
	}
	return nil
}

// save writes the current key table to path in the format load expects.
func save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for sq := Square(0); sq < SqLength; sq++ {
		for p := 0; p < PieceLength; p++ {
			if p > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", uint64(keys.piecePos[sq][p]))
		}
		fmt.Fprintln(w)
	}
	writeRow(w, keys.enPassant[:])
	writeRow(w, keys.castling[:])
	writeRow(w, []Key{keys.blackToMove})
	return w.Flush()
}

func writeRow(w *bufio.Writer, row []Key) {
	for i, v := range row {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%d", uint64(v))
	}
	fmt.Fprintln(w)
}
