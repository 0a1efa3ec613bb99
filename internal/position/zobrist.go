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

package position

import (
	"github.com/corvidchess/core/internal/types"
)

// Key is a Zobrist hash of a position, suitable as a transposition table key.
type Key uint64

// zobrist holds the random base values combined (by XOR) to build a
// position's incremental hash. Populated once in initZobrist().
type zobrist struct {
	pieces         [16][types.SqLength]Key
	castlingRights [int(types.CastlingAny) + 1]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

var zobristBase = zobrist{}

func initZobrist() {
	r := newRandom(1070372)
	for cp := 0; cp < 16; cp++ {
		for sq := types.SqA1; sq < types.SqNone; sq++ {
			zobristBase.pieces[cp][sq] = Key(r.rand64())
		}
	}
	for cr := 0; cr <= int(types.CastlingAny); cr++ {
		zobristBase.castlingRights[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	zobristBase.nextPlayer = Key(r.rand64())
}

// random is a xorshift64star pseudo-random number generator, dedicated to the
// public domain by Sebastiano Vigna (2014). Used only to seed the Zobrist
// base table once at package init, never on a hot path.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("seed of random cannot be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * uint64(2685821657736338717)
}
