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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/transpositiontable"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	e := New(1)
	assert.Equal(t, position.StartFen, e.Fen())
	assert.Equal(t, 20, e.GenerateMoves().Len())
}

func TestSetPositionStartpos(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("startpos", nil))
	assert.Equal(t, position.StartFen, e.Fen())
}

func TestSetPositionStartposWithMoves(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("startpos", []string{"e2e4", "e7e5", "g1f3"}))
	assert.Contains(t, e.Fen(), "rnbqkbnr/pppp1ppp")
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	e := New(1)
	err := e.SetPosition("startpos", []string{"e2e5"})
	require.Error(t, err)
	var illegal *ErrIllegalMove
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "e2e5", illegal.Uci)
}

func TestSetPositionRejectsMalformedFen(t *testing.T) {
	e := New(1)
	err := e.SetPosition("not-a-fen", nil)
	require.Error(t, err)
}

func TestMakeUciPlaysMove(t *testing.T) {
	e := New(1)
	require.NoError(t, e.MakeUCI("e2e4"))
	assert.Contains(t, e.Fen(), "4P3")
}

func TestMakeUciRejectsIllegalMove(t *testing.T) {
	e := New(1)
	err := e.MakeUCI("a1a8")
	require.Error(t, err)
}

func TestHashChangesAfterMove(t *testing.T) {
	e := New(1)
	before := e.Hash()
	require.NoError(t, e.MakeUCI("e2e4"))
	assert.NotEqual(t, before, e.Hash())
}

func TestNewGameResetsPositionAndTable(t *testing.T) {
	e := New(1)
	require.NoError(t, e.MakeUCI("e2e4"))
	e.tt.Put(position.Key(1), 0, 1, 0, transpositiontable.BoundExact)

	e.NewGame()

	assert.Equal(t, position.StartFen, e.Fen())
	assert.Equal(t, 0, e.tt.Len())
}
