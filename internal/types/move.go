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

package types

import "strings"

// MoveType distinguishes the handful of special move mechanics from a plain
// piece movement or capture.
type MoveType uint8

// Move type constants.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// String names the move type.
func (mt MoveType) String() string {
	switch mt {
	case Promotion:
		return "Promotion"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "Normal"
	}
}

// Move packs a from-square, to-square, promotion piece and move type into a
// single 32 bit value:
//
//	bits 0-5    from square  (0-63)
//	bits 6-11   to square    (0-63)
//	bits 12-14  promotion piece kind (Knight..Queen, only meaningful for Promotion)
//	bits 15-16  move type
type Move uint32

const (
	moveFromMask  = 0x3f
	moveToShift   = 6
	moveToMask    = 0x3f << moveToShift
	movePromShift = 12
	movePromMask  = 0x7 << movePromShift
	moveTypeShift = 15
	moveTypeMask  = 0x3 << moveTypeShift
)

// MoveNone represents the absence of a move.
const MoveNone Move = 0

// CreateMove builds a Normal move between two squares.
func CreateMove(from, to Square) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift)
}

// CreateCastlingMove builds a Castling move; from/to are the king's squares.
func CreateCastlingMove(from, to Square) Move {
	return CreateMove(from, to) | Move(uint32(Castling)<<moveTypeShift)
}

// CreateEnPassantMove builds an EnPassant capture move.
func CreateEnPassantMove(from, to Square) Move {
	return CreateMove(from, to) | Move(uint32(EnPassant)<<moveTypeShift)
}

// CreatePromotionMove builds a Promotion move to the given piece kind, which
// must be one of Knight, Bishop, Rook or Queen.
func CreatePromotionMove(from, to Square, promotes Piece) Move {
	return CreateMove(from, to) |
		Move(uint32(promotes)<<movePromShift) |
		Move(uint32(Promotion)<<moveTypeShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// PromotionType returns the piece kind a Promotion move promotes to, or
// PieceNone for any other move type.
func (m Move) PromotionType() Piece {
	return Piece((m & movePromMask) >> movePromShift)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m & moveTypeMask) >> moveTypeShift)
}

// IsValid reports whether m encodes distinct, in-range from/to squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci returns the move in long algebraic (UCI) notation, e.g. "e2e4"
// or "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// String is an alias of StringUci, matching the teacher's convention of
// printing moves in UCI form by default.
func (m Move) String() string {
	return m.StringUci()
}
