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

// Package config reads the engine's toml configuration file and exposes
// it as a set of package-level settings every other package consults.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the config file.
	LogLevel = 2

	// SearchLogLevel defines the search log level set by default or given by the config file.
	SearchLogLevel = 2

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log     logConfiguration
	Search  searchConfiguration
	Eval    evalConfiguration
	TT      ttConfiguration
	Zobrist zobristConfiguration
	Book    bookConfiguration
}

// Setup loads the toml file at path (defaulting to "config/config.toml")
// on top of the package defaults. Safe to call more than once; only the
// first call does any work.
func Setup(path string) {
	if initialized {
		return
	}
	if path == "" {
		path = "config/config.toml"
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: using defaults:", err)
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	setupTT()
	setupZobrist()
	setupBook()
	initialized = true
}
