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

import (
	"strconv"
	"strings"

	"github.com/corvidchess/core/internal/types"
)

// NewPositionFen parses a FEN string into a Position. The string must have
// the six standard whitespace-separated fields: piece placement, side to
// move, castling availability, en-passant target, half move clock and full
// move number.
func NewPositionFen(fen string) (Position, error) {
	var p Position

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 6 {
		return Position{}, ErrMalformedFen
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = types.White
	case "b":
		p.nextPlayer = types.Black
	default:
		return Position{}, ErrMalformedFen
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			right := types.CastlingRightsFromChar(fields[2][i])
			if right == types.CastlingNone {
				return Position{}, ErrMalformedFen
			}
			p.castlingRights |= right
		}
	}

	p.enPassantSq = types.SqNone
	if fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if sq == types.SqNone {
			return Position{}, ErrMalformedFen
		}
		p.enPassantSq = sq
		p.zobristKey ^= zobristBase.enPassantFile[sq.FileOf()]
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, ErrMalformedFen
		}
		p.halfMoveClock = clampUint16(n)
	}

	p.nextHalfMoveNo = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, ErrMalformedFen
		}
		p.nextHalfMoveNo = clampUint16(n)
	}

	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	if p.nextPlayer == types.Black {
		p.zobristKey ^= zobristBase.nextPlayer
	}

	return p, nil
}

func clampUint16(n int) uint16 {
	if n > 0xffff {
		return 0xffff
	}
	return uint16(n)
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return ErrMalformedFen
	}
	for i, rankStr := range ranks {
		r := types.Rank8 - types.Rank(i)
		f := types.FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += types.File(c - '0')
				continue
			}
			cp := types.ColoredPieceFromChar(c)
			if cp == types.ColoredPieceNone || !f.IsValid() {
				return ErrMalformedFen
			}
			p.putPiece(cp, types.SquareOf(f, r))
			f++
		}
		if f != types.FileNone {
			return ErrMalformedFen
		}
	}
	return nil
}

// Fen returns the FEN string of the position.
func (p Position) Fen() string {
	var b strings.Builder

	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			cp := p.board[types.SquareOf(f, r)]
			if cp == types.ColoredPieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(cp.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != types.Rank1 {
			b.WriteByte('/')
		} else {
			break
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.nextPlayer.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSq.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.halfMoveClock)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.nextHalfMoveNo)))

	return b.String()
}
