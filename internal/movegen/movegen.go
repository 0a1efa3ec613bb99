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

// Package movegen generates chess moves in two phases: GeneratePseudoLegal
// enumerates every move the rules of piece movement allow without regard to
// whether it leaves the mover's own king in check, and GenerateLegal filters
// that list down with a make-and-look-back legality check.
package movegen

import (
	"github.com/corvidchess/core/internal/assert"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/types"
)

// promotionPieces lists the four piece kinds a pawn may promote to, queen
// first since it is by far the most common choice.
var promotionPieces = [4]types.Piece{types.Queen, types.Rook, types.Bishop, types.Knight}

// GeneratePseudoLegal returns every move Phase A allows for the side to move
// in p: piece movement and capture rules, including castling and en-passant,
// but without verifying the mover's king is safe afterwards.
func GeneratePseudoLegal(p position.Position) []types.Move {
	moves := make([]types.Move, 0, 48)
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	occ := p.Occupied()

	moves = generatePawnMoves(p, us, moves)

	for _, pt := range [3]types.Piece{types.Knight, types.Bishop, types.Rook} {
		moves = generatePieceMoves(p, us, pt, own, occ, moves)
	}
	moves = generatePieceMoves(p, us, types.Queen, own, occ, moves)
	moves = generateKingMoves(p, us, own, occ, moves)
	moves = generateCastlingMoves(p, us, occ, moves)

	return moves
}

// FindMove looks up the legal move in p matching UCI move text such as
// "e2e4" or "e7e8q", returning ok=false if uci names no legal move.
func FindMove(p position.Position, uci string) (types.Move, bool) {
	for _, m := range GenerateLegal(p) {
		if m.StringUci() == uci {
			return m, true
		}
	}
	return types.MoveNone, false
}

// GenerateLegal returns the subset of GeneratePseudoLegal(p) that does not
// leave the mover's own king in check - Phase B of the two-phase scheme.
func GenerateLegal(p position.Position) []types.Move {
	pseudo := GeneratePseudoLegal(p)
	us := p.SideToMove()
	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := p.Make(m)
		if !next.IsAttacked(next.KingSquare(us), us.Flip()) {
			legal = append(legal, m)
		}
	}
	return legal
}

func generatePieceMoves(p position.Position, us types.Color, pt types.Piece, own, occ types.Bitboard, moves []types.Move) []types.Move {
	bb := p.PieceBb(us, pt)
	for bb != types.BbZero {
		from := bb.PopLsb()
		var targets types.Bitboard
		if pt.IsSlider() {
			targets = types.GetAttacksBb(pt, from, occ) &^ own
		} else {
			targets = types.GetPseudoAttacks(pt, from) &^ own
		}
		for targets != types.BbZero {
			to := targets.PopLsb()
			moves = append(moves, types.CreateMove(from, to))
		}
	}
	return moves
}

func generateKingMoves(p position.Position, us types.Color, own, occ types.Bitboard, moves []types.Move) []types.Move {
	from := p.KingSquare(us)
	targets := types.GetPseudoAttacks(types.King, from) &^ own
	for targets != types.BbZero {
		to := targets.PopLsb()
		moves = append(moves, types.CreateMove(from, to))
	}
	return moves
}

func generateCastlingMoves(p position.Position, us types.Color, occ types.Bitboard, moves []types.Move) []types.Move {
	them := us.Flip()
	rights := p.CastlingRights()

	type castlingSpec struct {
		right             types.CastlingRights
		kingFrom, kingTo  types.Square
		betweenKingSquare types.Square
		clearSquares      types.Bitboard
	}

	var specs [2]castlingSpec
	if us == types.White {
		specs[0] = castlingSpec{types.CastlingWhiteOO, types.SqE1, types.SqG1, types.SqF1, types.SqF1.Bb() | types.SqG1.Bb()}
		specs[1] = castlingSpec{types.CastlingWhiteOOO, types.SqE1, types.SqC1, types.SqD1, types.SqB1.Bb() | types.SqC1.Bb() | types.SqD1.Bb()}
	} else {
		specs[0] = castlingSpec{types.CastlingBlackOO, types.SqE8, types.SqG8, types.SqF8, types.SqF8.Bb() | types.SqG8.Bb()}
		specs[1] = castlingSpec{types.CastlingBlackOOO, types.SqE8, types.SqC8, types.SqD8, types.SqB8.Bb() | types.SqC8.Bb() | types.SqD8.Bb()}
	}

	for _, s := range specs {
		if !rights.Has(s.right) {
			continue
		}
		if occ&s.clearSquares != types.BbZero {
			continue
		}
		if p.IsAttacked(s.kingFrom, them) || p.IsAttacked(s.betweenKingSquare, them) || p.IsAttacked(s.kingTo, them) {
			continue
		}
		if assert.DEBUG {
			assert.Assert(p.KingSquare(us) == s.kingFrom, "MoveGen Castling: king not on expected square")
		}
		moves = append(moves, types.CreateCastlingMove(s.kingFrom, s.kingTo))
	}

	return moves
}

func generatePawnMoves(p position.Position, us types.Color, moves []types.Move) []types.Move {
	them := us.Flip()
	occ := p.Occupied()
	theirs := p.OccupiedBy(them)
	pawns := p.PieceBb(us, types.Pawn)
	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRankBb()
	startRank := us.PawnStartRankBb()

	bb := pawns
	for bb != types.BbZero {
		from := bb.PopLsb()

		if one := from.To(pushDir); one.IsValid() && !occ.Has(one) {
			moves = appendPawnMove(moves, from, one, promoRank)

			if startRank.Has(from) {
				if two := one.To(pushDir); two.IsValid() && !occ.Has(two) {
					moves = append(moves, types.CreateMove(from, two))
				}
			}
		}

		for _, to := range captureSquares(from, us) {
			if !to.IsValid() {
				continue
			}
			if theirs.Has(to) {
				moves = appendPawnMove(moves, from, to, promoRank)
			} else if to == p.EnPassantSquare() {
				moves = append(moves, types.CreateEnPassantMove(from, to))
			}
		}
	}
	return moves
}

// captureSquares returns the (up to two) diagonal squares a pawn of color us
// standing on from could capture on.
func captureSquares(from types.Square, us types.Color) [2]types.Square {
	if us == types.White {
		return [2]types.Square{from.To(types.Northeast), from.To(types.Northwest)}
	}
	return [2]types.Square{from.To(types.Southeast), from.To(types.Southwest)}
}

func appendPawnMove(moves []types.Move, from, to types.Square, promoRank types.Bitboard) []types.Move {
	if promoRank.Has(to) {
		for _, pt := range promotionPieces {
			moves = append(moves, types.CreatePromotionMove(from, to, pt))
		}
		return moves
	}
	return append(moves, types.CreateMove(from, to))
}
