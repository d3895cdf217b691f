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

// Package testsuite loads the three plain-text fixture formats the
// engine's test drivers read: heuristicTestPositions.in (FEN,score),
// dictionaryTestPositions.in (FEN,score,depth) and
// ZobristTestPosition.in (one FEN per line). Unlike the teacher's EPD
// test suite, these formats carry no move-target opcodes - each line
// is a bare CSV record or bare FEN, matching the original C drivers'
// fscanf/strtok parsing exactly.
//
// A fixture file may optionally start with a YAML front-matter block
// (delimited by a line of "---" before and after) carrying descriptive
// metadata about where the cases came from; this is decoration for
// humans reading the file; case parsing ignores it.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata is the optional YAML front-matter a fixture file may carry.
type Metadata struct {
	Description string `yaml:"description"`
	Source      string `yaml:"source"`
}

// HeuristicCase is one row of heuristicTestPositions.in: a position and
// the evaluator score it is expected to produce.
type HeuristicCase struct {
	FEN           string
	ExpectedScore int
}

// DictionaryCase is one row of dictionaryTestPositions.in: a position,
// an expected score and the depth it should be cached at.
type DictionaryCase struct {
	FEN           string
	ExpectedScore int
	Depth         int
}

// ZobristCase is one row of ZobristTestPosition.in: just a FEN, used to
// print its resulting hash for visual comparison against a reference run.
type ZobristCase struct {
	FEN string
}

// LoadHeuristicCases reads a heuristicTestPositions.in-formatted file:
// one "FEN,expectedScore" pair per line.
func LoadHeuristicCases(path string) ([]HeuristicCase, Metadata, error) {
	lines, meta, err := readFixture(path)
	if err != nil {
		return nil, meta, err
	}
	cases := make([]HeuristicCase, 0, len(lines))
	for i, line := range lines {
		fields := splitCSV(line)
		if len(fields) != 2 {
			return nil, meta, fmt.Errorf("testsuite: %s:%d: want 2 fields, got %d", path, i+1, len(fields))
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, meta, fmt.Errorf("testsuite: %s:%d: bad score %q: %w", path, i+1, fields[1], err)
		}
		cases = append(cases, HeuristicCase{FEN: fields[0], ExpectedScore: score})
	}
	return cases, meta, nil
}

// LoadDictionaryCases reads a dictionaryTestPositions.in-formatted
// file: one "FEN,expectedScore,depth" triple per line.
func LoadDictionaryCases(path string) ([]DictionaryCase, Metadata, error) {
	lines, meta, err := readFixture(path)
	if err != nil {
		return nil, meta, err
	}
	cases := make([]DictionaryCase, 0, len(lines))
	for i, line := range lines {
		fields := splitCSV(line)
		if len(fields) != 3 {
			return nil, meta, fmt.Errorf("testsuite: %s:%d: want 3 fields, got %d", path, i+1, len(fields))
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, meta, fmt.Errorf("testsuite: %s:%d: bad score %q: %w", path, i+1, fields[1], err)
		}
		depth, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, meta, fmt.Errorf("testsuite: %s:%d: bad depth %q: %w", path, i+1, fields[2], err)
		}
		cases = append(cases, DictionaryCase{FEN: fields[0], ExpectedScore: score, Depth: depth})
	}
	return cases, meta, nil
}

// LoadZobristCases reads a ZobristTestPosition.in-formatted file: one
// bare FEN per line, no comma fields.
func LoadZobristCases(path string) ([]ZobristCase, Metadata, error) {
	lines, meta, err := readFixture(path)
	if err != nil {
		return nil, meta, err
	}
	cases := make([]ZobristCase, 0, len(lines))
	for _, line := range lines {
		cases = append(cases, ZobristCase{FEN: line})
	}
	return cases, meta, nil
}

// readFixture returns the non-blank data lines of path with any
// leading YAML front-matter block stripped off and decoded separately.
func readFixture(path string) ([]string, Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer f.Close()

	var meta Metadata
	var frontMatter []string
	var lines []string
	inFrontMatter := false
	sawFrontMatter := false

	scanner := bufio.NewScanner(f)
	for lineNo := 0; scanner.Scan(); lineNo++ {
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)

		if lineNo == 0 && trimmed == "---" {
			inFrontMatter = true
			sawFrontMatter = true
			continue
		}
		if inFrontMatter {
			if trimmed == "---" {
				inFrontMatter = false
				continue
			}
			frontMatter = append(frontMatter, raw)
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, trimmed)
	}
	if err := scanner.Err(); err != nil {
		return nil, meta, err
	}

	if sawFrontMatter {
		if err := yaml.Unmarshal([]byte(strings.Join(frontMatter, "\n")), &meta); err != nil {
			return nil, meta, fmt.Errorf("testsuite: %s: bad YAML front matter: %w", path, err)
		}
	}
	return lines, meta, nil
}

// splitCSV splits a "FEN,score[,depth]" line on commas and trims
// surrounding whitespace from each field, the way the original C test
// drivers' fscanf/strtok parsing tolerates spaces after commas.
func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
