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

// Command franky is the engine's external collaborator: a single
// executable taking no arguments (read-eval loop over stdin), or
// --api <FEN> to emit one chosen move and exit, or --train to run the
// opening-book self-play driver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nazarovsa/franky/config"
	"github.com/nazarovsa/franky/evaluator"
	myLogging "github.com/nazarovsa/franky/logging"
	"github.com/nazarovsa/franky/movegen"
	"github.com/nazarovsa/franky/openingbook"
	"github.com/nazarovsa/franky/position"
	"github.com/nazarovsa/franky/search"
	"github.com/nazarovsa/franky/transpositiontable"
	. "github.com/nazarovsa/franky/types"
	"github.com/nazarovsa/franky/util"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "config/config.toml", "path to configuration settings file")
	apiFen := flag.String("api", "", "decode the given FEN, print the engine's chosen move and exit")
	train := flag.Bool("train", false, "generate the self-play opening book and exit")
	flag.Parse()

	resolved, err := util.ResolveFile(*configFile)
	if err != nil {
		resolved = *configFile
	}
	config.Setup(resolved)
	log := myLogging.GetLog()

	tt := transpositiontable.New(config.Settings.TT.Buckets)
	if config.Settings.TT.Enabled {
		if err := tt.Load(config.Settings.TT.DictFilePath); err != nil {
			log.Infof("transposition table: no usable file at %s (%v), starting empty", config.Settings.TT.DictFilePath, err)
		}
	}
	eval := evaluator.NewEvaluator(tt)
	srch := search.NewSearch(eval, tt)

	saveTT := func() {
		if !config.Settings.TT.Enabled {
			return
		}
		if err := tt.Save(config.Settings.TT.DictFilePath); err != nil {
			log.Warningf("transposition table: could not save to %s: %v", config.Settings.TT.DictFilePath, err)
		}
	}
	defer saveTT()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown requested, saving transposition table")
		saveTT()
		os.Exit(0)
	}()

	switch {
	case *train:
		runTrain(log)
	case *apiFen != "":
		runAPI(*apiFen, srch, log)
	default:
		runRepl(srch, log)
	}
}

func runTrain(log *logging.Logger) {
	book := openingbook.NewBook()
	start := time.Now()
	book.Generate()
	log.Infof("opening book generation finished in %d ms", time.Since(start).Milliseconds())
	out.Printf("generated %d opening book entries in %d ms\n", book.NumberOfEntries(), time.Since(start).Milliseconds())
}

func runAPI(fen string, srch *search.Search, log *logging.Logger) {
	pos, err := position.New(fen, 0)
	if err != nil {
		log.Errorf("invalid FEN %q: %s", fen, err)
		out.Printf("error: invalid FEN: %s\n", err)
		os.Exit(1)
	}
	result := srch.BestMove(pos, search.NewSearchLimits())
	if result.BestMove == MoveNone {
		out.Println("no legal moves")
		return
	}
	out.Println(result.BestMove.String())
}

func runRepl(srch *search.Search, log *logging.Logger) {
	pos := position.NewStartPos(0)
	limits := search.NewSearchLimits()
	scanner := bufio.NewScanner(os.Stdin)

	printPosition(pos)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		move, err := parseUserMove(line, pos)
		if err != nil {
			out.Printf("illegal move: %s\n", line)
			continue
		}
		applied := pos.ApplyMove(move)
		pos = &applied

		if outcome, over := gameOver(pos); over {
			printPosition(pos)
			out.Println(outcome)
			return
		}

		result := srch.BestMove(pos, limits)
		if result.BestMove == MoveNone {
			printPosition(pos)
			out.Println("no legal moves for the engine")
			return
		}
		applied = pos.ApplyMove(result.BestMove)
		pos = &applied
		out.Printf("engine plays %s\n", result.BestMove.String())

		printPosition(pos)
		if outcome, over := gameOver(pos); over {
			out.Println(outcome)
			return
		}
	}
}

// parseUserMove matches a four or five character coordinate move string
// (a fifth promotion letter is accepted but ignored, since the engine
// only ever generates queen promotions) against the legal moves in pos.
func parseUserMove(s string, pos *position.Position) (Move, error) {
	s = strings.ToLower(s)
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, fmt.Errorf("malformed move string: %s", s)
	}
	from := MakeSquare(s[0:2])
	to := MakeSquare(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, fmt.Errorf("malformed move string: %s", s)
	}
	for _, m := range movegen.Generate(pos).Slice() {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("illegal move: %s", s)
}

// gameOver reports checkmate or stalemate once pos has no legal moves.
func gameOver(pos *position.Position) (string, bool) {
	if len(movegen.Generate(pos).Slice()) > 0 {
		return "", false
	}
	if pos.Checkers() != BbZero {
		return "checkmate", true
	}
	return "stalemate", true
}

func printPosition(pos *position.Position) {
	out.Println(pos.String())
}
