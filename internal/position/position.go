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

// Package position implements the chess board representation: a bitboard
// position plus an 8x8 mailbox, Zobrist hashing and the copy-make update
// model (Make returns a new Position rather than mutating in place with an
// undo stack).
package position

import (
	"strings"

	"github.com/corvidchess/core/internal/types"
)

// StartFen is the FEN string for the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// Position represents one immutable snapshot of a chess board. Position
// values are cheap to copy (a handful of bitboards and a 64 byte mailbox) and
// are meant to be passed and returned by value; Make produces a new Position
// rather than mutating the receiver.
type Position struct {
	pieceBb    [types.ColorLength][types.PieceLen]types.Bitboard
	occupiedBy [types.ColorLength]types.Bitboard
	board      [types.SqLength]types.ColoredPiece

	nextPlayer     types.Color
	castlingRights types.CastlingRights
	enPassantSq    types.Square

	halfMoveClock  uint16
	nextHalfMoveNo uint16

	zobristKey Key
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("position: malformed built-in StartFen: " + err.Error())
	}
	return p
}

// Occupied returns the bitboard of all occupied squares.
func (p Position) Occupied() types.Bitboard {
	return p.occupiedBy[types.White] | p.occupiedBy[types.Black]
}

// OccupiedBy returns the bitboard of all squares occupied by c's pieces.
func (p Position) OccupiedBy(c types.Color) types.Bitboard {
	return p.occupiedBy[c]
}

// PieceBb returns the bitboard of color c's pieces of kind pt.
func (p Position) PieceBb(c types.Color, pt types.Piece) types.Bitboard {
	return p.pieceBb[c][pt]
}

// PieceOn returns the piece occupying sq, or ColoredPieceNone if it's empty.
func (p Position) PieceOn(sq types.Square) types.ColoredPiece {
	return p.board[sq]
}

// SideToMove returns the color to move next.
func (p Position) SideToMove() types.Color {
	return p.nextPlayer
}

// CastlingRights returns the castling rights still available to either side.
func (p Position) CastlingRights() types.CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the en-passant target square, or SqNone if a
// double pawn push did not happen on the previous move.
func (p Position) EnPassantSquare() types.Square {
	return p.enPassantSq
}

// HalfMoveClock returns the number of half moves since the last capture or
// pawn move, for the fifty-move rule.
func (p Position) HalfMoveClock() uint16 {
	return p.halfMoveClock
}

// NextHalfMoveNumber returns the full move number that the position's next
// half move belongs to.
func (p Position) NextHalfMoveNumber() uint16 {
	return p.nextHalfMoveNo
}

// ZobristKey returns the current Zobrist hash of the position.
func (p Position) ZobristKey() Key {
	return p.zobristKey
}

// KingSquare returns the square of c's king.
func (p Position) KingSquare(c types.Color) types.Square {
	return p.pieceBb[c][types.King].Lsb()
}

// putPiece places cp on sq, updating the bitboards, mailbox and Zobrist key.
// sq must currently be empty.
func (p *Position) putPiece(cp types.ColoredPiece, sq types.Square) {
	p.board[sq] = cp
	c, pt := cp.ColorOf(), cp.TypeOf()
	p.pieceBb[c][pt].PushSquare(sq)
	p.occupiedBy[c].PushSquare(sq)
	p.zobristKey ^= zobristBase.pieces[cp][sq]
}

// removePiece clears sq, which must currently hold cp.
func (p *Position) removePiece(cp types.ColoredPiece, sq types.Square) {
	p.board[sq] = types.ColoredPieceNone
	c, pt := cp.ColorOf(), cp.TypeOf()
	p.pieceBb[c][pt].PopSquare(sq)
	p.occupiedBy[c].PopSquare(sq)
	p.zobristKey ^= zobristBase.pieces[cp][sq]
}

// movePiece relocates cp from `from` to the empty square `to`.
func (p *Position) movePiece(cp types.ColoredPiece, from, to types.Square) {
	p.removePiece(cp, from)
	p.putPiece(cp, to)
}

// IsAttacked reports whether any of attacker's pieces attacks sq on the
// current board.
func (p Position) IsAttacked(sq types.Square, attacker types.Color) bool {
	occ := p.Occupied()

	if types.GetAttacksBb(types.Rook, sq, occ)&(p.pieceBb[attacker][types.Rook]|p.pieceBb[attacker][types.Queen]) != 0 {
		return true
	}
	if types.GetAttacksBb(types.Bishop, sq, occ)&(p.pieceBb[attacker][types.Bishop]|p.pieceBb[attacker][types.Queen]) != 0 {
		return true
	}
	if types.GetPseudoAttacks(types.Knight, sq)&p.pieceBb[attacker][types.Knight] != 0 {
		return true
	}
	if types.GetPseudoAttacks(types.King, sq)&p.pieceBb[attacker][types.King] != 0 {
		return true
	}
	// a pawn attacks sq from the squares sq itself would capture on, looked
	// up with the victim's, not the attacker's, push direction.
	if types.GetPawnAttacks(attacker.Flip(), sq)&p.pieceBb[attacker][types.Pawn] != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.nextPlayer), p.nextPlayer.Flip())
}

// String renders the position as an 8x8 ASCII board followed by its FEN.
func (p Position) String() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; ; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			cp := p.board[types.SquareOf(f, r)]
			if cp == types.ColoredPieceNone {
				b.WriteString("|   ")
			} else {
				b.WriteString("| " + cp.Char() + " ")
			}
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == types.Rank1 {
			break
		}
	}
	b.WriteString(p.Fen())
	return b.String()
}
