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

package transpositiontable

import (
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/types"
)

// entrySize is used to translate a requested MB budget into a maximum entry
// count: a rough per-entry byte estimate covering the Entry itself plus the
// map/list bookkeeping, which an array-backed table would not pay but a
// map+list one does.
const entrySize = 32

// Bound says how Entry.Value relates to the stored position's true value:
// an exact score, or a score that only bounds the true value from one side
// (the result of an alpha or beta cutoff upstream).
type Bound int8

// Bound kind constants.
const (
	BoundNone       Bound = 0
	BoundExact      Bound = 1
	BoundLowerBound Bound = 2 // true value >= Entry.Value (beta cutoff)
	BoundUpperBound Bound = 3 // true value <= Entry.Value (alpha cutoff)
)

var boundToString = [4]string{"NoBound", "Exact", "LowerBound", "UpperBound"}

// String returns a human readable name of the bound kind.
func (b Bound) String() string {
	if b < BoundNone || b > BoundUpperBound {
		return "NoBound"
	}
	return boundToString[b]
}

// Entry is the data stored in the table for one Zobrist key: the best move
// found for that position, the search depth it was stored at, and a value
// from the side-to-move's perspective together with the bound kind that
// says how that value relates to the position's true value.
type Entry struct {
	Key   position.Key
	Move  types.Move
	Depth int8
	Value int
	Bound Bound
}
