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

// Package engine is the facade a UCI line parser or search algorithm would
// sit behind: it owns one position.Position and one transpositiontable.Table
// and exposes set_position/generate_moves/make/hash as the spec's external
// interface names it, grounded on the teacher's UciHandler owning a
// position.Position and a search.Search (which itself owns a TtTable).
package engine

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/movegen"
	"github.com/corvidchess/core/internal/moveslice"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/transpositiontable"
)

var out = message.NewPrinter(language.German)

// ErrIllegalMove reports that MakeUCI was asked to play a move that does
// not appear in the current position's legal move list.
type ErrIllegalMove struct {
	Uci string
	Fen string
}

func (e *ErrIllegalMove) Error() string {
	return out.Sprintf("illegal move '%s' in position '%s'", e.Uci, e.Fen)
}

// Engine is the boundary between move generation / the transposition table
// and whatever drives them - a UCI handler or a search algorithm, neither of
// which this package implements.
type Engine struct {
	log *logging.Logger

	pos position.Position
	tt  *transpositiontable.Table
}

// New creates an Engine at the standard starting position with a
// transposition table sized to hold roughly ttSizeMB megabytes.
func New(ttSizeMB int) *Engine {
	return &Engine{
		log: myLogging.GetEngineLog(),
		pos: position.NewPosition(),
		tt:  transpositiontable.New(ttSizeMB),
	}
}

// SetPosition replaces the current position with startposOrFen ("startpos"
// or a FEN string) and then plays moves, given in UCI move text, against it
// in order. It returns the first error encountered and leaves the position
// unchanged from before the call in that case.
func (e *Engine) SetPosition(startposOrFen string, moves []string) error {
	fen := startposOrFen
	if fen == "startpos" {
		fen = position.StartFen
	}

	next, err := position.NewPositionFen(fen)
	if err != nil {
		return err
	}

	for _, uci := range moves {
		m, ok := movegen.FindMove(next, uci)
		if !ok {
			return &ErrIllegalMove{Uci: uci, Fen: next.Fen()}
		}
		next = next.Make(m)
	}

	e.pos = next
	e.log.Debugf("position set: %s", e.pos.Fen())
	return nil
}

// GenerateMoves returns every legal move in the current position, sorted by
// UCI move text for a deterministic, reproducible listing.
func (e *Engine) GenerateMoves() *moveslice.MoveSlice {
	ms := moveslice.MoveSlice(movegen.GenerateLegal(e.pos))
	ms.Sort()
	return &ms
}

// MakeUCI plays the move named by its UCI move text against the current
// position. It returns ErrIllegalMove if uci does not name a legal move.
func (e *Engine) MakeUCI(uci string) error {
	m, ok := movegen.FindMove(e.pos, uci)
	if !ok {
		return &ErrIllegalMove{Uci: uci, Fen: e.pos.Fen()}
	}
	e.pos = e.pos.Make(m)
	e.log.Debugf("made move %s, new position: %s", uci, e.pos.Fen())
	return nil
}

// Hash returns the current position's Zobrist key.
func (e *Engine) Hash() uint64 {
	return uint64(e.pos.ZobristKey())
}

// Fen returns the current position in FEN notation.
func (e *Engine) Fen() string {
	return e.pos.Fen()
}

// String returns a human-readable board diagram of the current position.
func (e *Engine) String() string {
	return e.pos.String()
}

// NewGame resets the position to the standard starting position and clears
// the transposition table, per the table's documented per-game lifecycle.
func (e *Engine) NewGame() {
	e.pos = position.NewPosition()
	e.tt.Clear()
	e.log.Info("new game")
}
