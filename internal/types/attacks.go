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

// Package types holds the chess primitives (squares, pieces, bitboards) and
// the magic-bitboard sliding attack tables built once at package init.
package types

// Table sizes for the fancy magic bitboard scheme: the sum, over all 64
// squares, of 2^popcount(relevant occupancy mask).
const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var (
	rookAttackTable   []Bitboard
	bishopAttackTable []Bitboard

	// pseudoAttacks holds attacks on an otherwise empty board for the
	// non-sliding pieces (King, Knight) indexed by piece kind and square.
	pseudoAttacks [PieceLen][SqLength]Bitboard

	// pawnAttacks holds the (up to two) diagonal capture squares for a pawn
	// of the given color standing on the given square.
	pawnAttacks [ColorLength][SqLength]Bitboard
)

func init() {
	initBitboards()
	initNonSliderAttacks()
	rookAttackTable = make([]Bitboard, rookTableSize)
	bishopAttackTable = make([]Bitboard, bishopTableSize)
	initMagics(&rookAttackTable, &rookMagics, &RookDirections)
	initMagics(&bishopAttackTable, &bishopMagics, &BishopDirections)
}

func initNonSliderAttacks() {
	for sq := SqA1; sq < SqNone; sq++ {
		var king, knight Bitboard
		for _, d := range KingDirections {
			if t := sq.To(d); t.IsValid() && SquareDistance(sq, t) == 1 {
				king.PushSquare(t)
			}
		}
		for _, kd := range KnightDeltas {
			f := int(sq.FileOf()) + kd.df
			r := int(sq.RankOf()) + kd.dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			knight.PushSquare(SquareOf(File(f), Rank(r)))
		}
		pseudoAttacks[King][sq] = king
		pseudoAttacks[Knight][sq] = knight

		var whitePawn, blackPawn Bitboard
		if t := sq.To(Northeast); t.IsValid() && SquareDistance(sq, t) == 1 {
			whitePawn.PushSquare(t)
		}
		if t := sq.To(Northwest); t.IsValid() && SquareDistance(sq, t) == 1 {
			whitePawn.PushSquare(t)
		}
		if t := sq.To(Southeast); t.IsValid() && SquareDistance(sq, t) == 1 {
			blackPawn.PushSquare(t)
		}
		if t := sq.To(Southwest); t.IsValid() && SquareDistance(sq, t) == 1 {
			blackPawn.PushSquare(t)
		}
		pawnAttacks[White][sq] = whitePawn
		pawnAttacks[Black][sq] = blackPawn
	}
}

// GetPseudoAttacks returns the attack bitboard of a King or Knight standing
// on sq, on an otherwise empty board.
func GetPseudoAttacks(p Piece, sq Square) Bitboard {
	return pseudoAttacks[p][sq]
}

// GetPawnAttacks returns the (up to two) squares a pawn of color c standing
// on sq could capture on.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}
