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

// CastlingRights encodes the four individual castling rights as a bitmask.
//
//	CastlingNone    = 0000
//	CastlingWhiteOO = 0001
//	CastlingWhiteOOO= 0010
//	CastlingBlackOO = 0100
//	CastlingBlackOOO= 1000
type CastlingRights uint8

// Castling right constants.
const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteOO CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny      CastlingRights = CastlingWhite | CastlingBlack
)

// Has reports whether every right in rhs is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given rights from cr and returns the result.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// String returns the FEN castling-availability field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}

// CastlingRightsFromChar maps a single FEN castling-availability letter to
// the right it grants, or CastlingNone if c is not one of "KQkq".
func CastlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return CastlingWhiteOO
	case 'Q':
		return CastlingWhiteOOO
	case 'k':
		return CastlingBlackOO
	case 'q':
		return CastlingBlackOOO
	default:
		return CastlingNone
	}
}

// KingSideRight and QueenSideRight return the castling right that belongs
// to color c on the given side.
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// RightsForColor returns both castling rights belonging to color c.
func RightsForColor(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}
