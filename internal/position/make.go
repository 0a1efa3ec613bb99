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

import "github.com/corvidchess/core/internal/types"

// castlingRightLostBy maps a corner square (the home square of a rook, or a
// king's home square) to the castling right that is permanently lost the
// moment a piece leaves from, or a capture lands on, that square.
var castlingRightLostBy = map[types.Square]types.CastlingRights{
	types.SqA1: types.CastlingWhiteOOO,
	types.SqH1: types.CastlingWhiteOO,
	types.SqE1: types.CastlingWhite,
	types.SqA8: types.CastlingBlackOOO,
	types.SqH8: types.CastlingBlackOO,
	types.SqE8: types.CastlingBlack,
}

// Make applies m to a copy of p and returns the resulting position. m is
// trusted to be pseudo-legal for p (movegen's Phase A contract); Make itself
// never checks whether the mover's king ends up in check - that legality
// filter is Phase B, applied by the caller via IsAttacked on the mover's
// king square in the result.
func (p Position) Make(m types.Move) Position {
	next := p

	us := p.nextPlayer
	them := us.Flip()
	from, to := m.From(), m.To()
	moving := p.board[from]

	next.zobristKey ^= zobristBase.castlingRights[next.castlingRights]

	if next.enPassantSq != types.SqNone {
		next.zobristKey ^= zobristBase.enPassantFile[next.enPassantSq.FileOf()]
	}
	next.enPassantSq = types.SqNone

	switch m.Type() {
	case types.Castling:
		next.movePiece(moving, from, to)
		rookFrom, rookTo := castlingRookSquares(to)
		next.movePiece(types.MakeColoredPiece(us, types.Rook), rookFrom, rookTo)

	case types.EnPassant:
		capturedSq := types.SquareOf(to.FileOf(), from.RankOf())
		next.removePiece(types.MakeColoredPiece(them, types.Pawn), capturedSq)
		next.movePiece(moving, from, to)

	case types.Promotion:
		if captured := next.board[to]; captured != types.ColoredPieceNone {
			next.removePiece(captured, to)
		}
		next.removePiece(moving, from)
		next.putPiece(types.MakeColoredPiece(us, m.PromotionType()), to)

	default:
		if captured := next.board[to]; captured != types.ColoredPieceNone {
			next.removePiece(captured, to)
			next.castlingRights.Remove(castlingRightLostBy[to])
		}
		next.movePiece(moving, from, to)

		if moving.TypeOf() == types.Pawn && types.SquareDistance(from, to) == 2 {
			next.enPassantSq = types.SquareOf(from.FileOf(), us.EpTargetRank())
			next.zobristKey ^= zobristBase.enPassantFile[next.enPassantSq.FileOf()]
		}
	}

	next.castlingRights.Remove(castlingRightLostBy[from])
	next.castlingRights.Remove(castlingRightLostBy[to])
	next.zobristKey ^= zobristBase.castlingRights[next.castlingRights]

	if moving.TypeOf() == types.Pawn || p.board[to] != types.ColoredPieceNone {
		next.halfMoveClock = 0
	} else if p.halfMoveClock < 0xffff {
		next.halfMoveClock = p.halfMoveClock + 1
	}

	if us == types.Black && p.nextHalfMoveNo < 0xffff {
		next.nextHalfMoveNo = p.nextHalfMoveNo + 1
	}

	next.nextPlayer = them
	next.zobristKey ^= zobristBase.nextPlayer

	return next
}

// castlingRookSquares returns the rook's from/to squares for a castling move
// whose king lands on kingTo.
func castlingRookSquares(kingTo types.Square) (from, to types.Square) {
	switch kingTo {
	case types.SqG1:
		return types.SqH1, types.SqF1
	case types.SqC1:
		return types.SqA1, types.SqD1
	case types.SqG8:
		return types.SqH8, types.SqF8
	case types.SqC8:
		return types.SqA8, types.SqD8
	default:
		return types.SqNone, types.SqNone
	}
}
