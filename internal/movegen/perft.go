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

package movegen

import "github.com/corvidchess/core/internal/position"

// Perft counts the number of leaf nodes reachable from p in exactly depth
// half moves, used as the move generator's correctness oracle: a mismatch
// against a known-good node count means GeneratePseudoLegal/GenerateLegal
// has a bug.
func Perft(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.Make(m), depth-1)
	}
	return nodes
}

// Divide runs Perft one depth at a time for each legal root move, returning
// a per-move node count breakdown. Used to localize a perft discrepancy to a
// specific branch of the move tree.
func Divide(p position.Position, depth int) map[string]uint64 {
	moves := GenerateLegal(p)
	result := make(map[string]uint64, len(moves))
	for _, m := range moves {
		result[m.StringUci()] = Perft(p.Make(m), depth-1)
	}
	return result
}
