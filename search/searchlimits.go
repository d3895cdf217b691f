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

package search

import (
	"time"

	"github.com/nazarovsa/franky/config"
)

// SearchLimits bundles the knobs iterative deepening is controlled by.
// Search needs to read these and determine how far and how long to look.
type SearchLimits struct {
	MinDepth   int
	DepthStep  int
	TimeBudget time.Duration
	Verbose    bool
}

// NewSearchLimits returns limits matching the engine's configured
// defaults (config.Settings.Search.*).
func NewSearchLimits() SearchLimits {
	return SearchLimits{
		MinDepth:   config.Settings.Search.MinDepth,
		DepthStep:  config.Settings.Search.DepthStep,
		TimeBudget: config.Settings.Search.TimeBudget(),
		Verbose:    config.Settings.Search.Verbose,
	}
}
