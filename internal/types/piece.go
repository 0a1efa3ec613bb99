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

// Piece is the set of chess piece kinds, independent of color.
//
//	PieceNone = 0b0000
//	King   = 0b0001 // non sliding
//	Pawn   = 0b0010 // non sliding
//	Knight = 0b0011 // non sliding
//	Bishop = 0b0100 // sliding
//	Rook   = 0b0101 // sliding
//	Queen  = 0b0110 // sliding
type Piece uint8

// Piece kind constants.
const (
	PieceNone Piece = 0b0000
	King      Piece = 0b0001
	Pawn      Piece = 0b0010
	Knight    Piece = 0b0011
	Bishop    Piece = 0b0100
	Rook      Piece = 0b0101
	Queen     Piece = 0b0110
	PieceLen  Piece = 0b0111
)

// IsValid checks if p is a valid piece kind.
func (p Piece) IsValid() bool {
	return p > PieceNone && p < PieceLen
}

// IsSlider reports whether pieces of this kind move along rays (rook,
// bishop, queen) and therefore need magic-bitboard attack lookups.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

var pieceToString = [PieceLen]string{"NoPiece", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns a human readable name of the piece kind.
func (p Piece) String() string {
	if p >= PieceLen {
		return "NoPiece"
	}
	return pieceToString[p]
}

const pieceKindChars = "-KPNBRQ"

// Char returns the single uppercase SAN letter for the piece kind
// ("-" for PieceNone, "P" for Pawn, etc).
func (p Piece) Char() string {
	if p >= PieceLen {
		return "-"
	}
	return string(pieceKindChars[p])
}

// ColoredPiece packs a Color and a Piece kind into a single byte: the
// product Color x Piece described by the spec. Encoded as
// (color << 3) | kind so White pieces and Black pieces never collide,
// mirroring the teacher's own Piece encoding (WhiteKing=1, BlackKing=9).
type ColoredPiece uint8

// ColoredPieceNone is the empty-square sentinel.
const ColoredPieceNone ColoredPiece = 0

// MakeColoredPiece builds a ColoredPiece from a Color and a Piece kind.
func MakeColoredPiece(c Color, p Piece) ColoredPiece {
	return ColoredPiece(uint8(c)<<3 | uint8(p))
}

// ColorOf returns the color of the piece.
func (cp ColoredPiece) ColorOf() Color {
	return Color(cp >> 3)
}

// TypeOf returns the piece kind, ignoring color.
func (cp ColoredPiece) TypeOf() Piece {
	return Piece(cp & 0b0111)
}

// IsValid reports whether cp encodes an actual piece (not empty).
func (cp ColoredPiece) IsValid() bool {
	return cp.TypeOf().IsValid()
}

// Char returns the canonical SAN letter: uppercase for White, lowercase for
// Black, "-" for an empty square.
func (cp ColoredPiece) Char() string {
	s := cp.TypeOf().Char()
	if cp.ColorOf() == Black {
		return strings.ToLower(s)
	}
	return s
}

// ColoredPieceFromChar parses a single SAN letter (e.g. "P", "q") into a
// ColoredPiece, or returns ColoredPieceNone if c is not a recognized letter.
func ColoredPieceFromChar(c byte) ColoredPiece {
	switch c {
	case 'K':
		return MakeColoredPiece(White, King)
	case 'Q':
		return MakeColoredPiece(White, Queen)
	case 'R':
		return MakeColoredPiece(White, Rook)
	case 'B':
		return MakeColoredPiece(White, Bishop)
	case 'N':
		return MakeColoredPiece(White, Knight)
	case 'P':
		return MakeColoredPiece(White, Pawn)
	case 'k':
		return MakeColoredPiece(Black, King)
	case 'q':
		return MakeColoredPiece(Black, Queen)
	case 'r':
		return MakeColoredPiece(Black, Rook)
	case 'b':
		return MakeColoredPiece(Black, Bishop)
	case 'n':
		return MakeColoredPiece(Black, Knight)
	case 'p':
		return MakeColoredPiece(Black, Pawn)
	default:
		return ColoredPieceNone
	}
}
