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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/types"
)

func TestNewAndProbeMiss(t *testing.T) {
	tt := New(1)
	_, ok := tt.Probe(position.Key(42))
	assert.False(t, ok)
	assert.EqualValues(t, 1, tt.Stats.Probes)
	assert.EqualValues(t, 1, tt.Stats.Misses)
}

func TestPutThenProbeHit(t *testing.T) {
	tt := New(1)
	m := types.CreateMove(types.SqE2, types.SqE4)
	tt.Put(position.Key(7), m, 4, 123, BoundExact)

	e, ok := tt.Probe(position.Key(7))
	assert.True(t, ok)
	assert.Equal(t, m, e.Move)
	assert.EqualValues(t, 4, e.Depth)
	assert.EqualValues(t, 123, e.Value)
	assert.Equal(t, BoundExact, e.Bound)
	assert.EqualValues(t, 1, tt.Len())
}

func TestPutUpdatesExistingKey(t *testing.T) {
	tt := New(1)
	m1 := types.CreateMove(types.SqE2, types.SqE4)
	m2 := types.CreateMove(types.SqD2, types.SqD4)
	tt.Put(position.Key(1), m1, 2, 10, BoundLowerBound)
	tt.Put(position.Key(1), m2, 6, 20, BoundUpperBound)

	e, ok := tt.Probe(position.Key(1))
	assert.True(t, ok)
	assert.Equal(t, m2, e.Move)
	assert.EqualValues(t, 6, e.Depth)
	assert.EqualValues(t, 20, e.Value)
	assert.Equal(t, BoundUpperBound, e.Bound)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.Updates)
}

func TestEvictsOldestOnOverflow(t *testing.T) {
	tt := New(1)
	tt.maxEntries = 2 // force a tiny, deterministic capacity for this test

	m := types.CreateMove(types.SqE2, types.SqE4)
	tt.Put(position.Key(1), m, 1, 0, BoundExact)
	tt.Put(position.Key(2), m, 1, 0, BoundExact)
	tt.Put(position.Key(3), m, 1, 0, BoundExact)

	assert.EqualValues(t, 2, tt.Len())
	_, ok := tt.Probe(position.Key(1))
	assert.False(t, ok, "oldest insertion should have been evicted")
	_, ok = tt.Probe(position.Key(2))
	assert.True(t, ok)
	_, ok = tt.Probe(position.Key(3))
	assert.True(t, ok)
	assert.EqualValues(t, 1, tt.Stats.Evictions)
}

func TestClearResetsTable(t *testing.T) {
	tt := New(1)
	m := types.CreateMove(types.SqE2, types.SqE4)
	tt.Put(position.Key(1), m, 1, 0, BoundExact)
	tt.Clear()

	assert.EqualValues(t, 0, tt.Len())
	_, ok := tt.Probe(position.Key(1))
	assert.False(t, ok)
}

func TestHashfull(t *testing.T) {
	tt := New(1)
	tt.maxEntries = 10
	m := types.CreateMove(types.SqE2, types.SqE4)
	for i := 0; i < 5; i++ {
		tt.Put(position.Key(i), m, 1, 0, BoundExact)
	}
	assert.Equal(t, 500, tt.Hashfull())
}

func TestNonPositiveSizeIsUnbounded(t *testing.T) {
	tt := New(0)
	m := types.CreateMove(types.SqE2, types.SqE4)
	const n = 10_000
	for i := 0; i < n; i++ {
		tt.Put(position.Key(i), m, 1, 0, BoundExact)
	}

	assert.EqualValues(t, n, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.Evictions)
	for i := 0; i < n; i++ {
		_, ok := tt.Probe(position.Key(i))
		assert.True(t, ok, "key %d should still be retrievable in an unbounded table", i)
	}
	assert.Equal(t, 0, tt.Hashfull())
}
