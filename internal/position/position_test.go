package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/types"
)

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAny, p.CastlingRights())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	assert.EqualValues(t, 16, p.OccupiedBy(types.White).PopCount())
	assert.EqualValues(t, 16, p.OccupiedBy(types.Black).PopCount())
}

func TestParseFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestParseFenRejectsMalformed(t *testing.T) {
	_, err := NewPositionFen("not a fen")
	assert.ErrorIs(t, err, ErrMalformedFen)

	_, err = NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.ErrorIs(t, err, ErrMalformedFen)
}

func TestKingSquare(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, types.SqE1, p.KingSquare(types.White))
	assert.Equal(t, types.SqE8, p.KingSquare(types.Black))
}

func TestInCheck(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.InCheck())

	p2 := NewPosition()
	assert.False(t, p2.InCheck())
}

func TestMakeSimplePawnPush(t *testing.T) {
	p := NewPosition()
	m := types.CreateMove(types.SqE2, types.SqE4)
	next := p.Make(m)

	assert.Equal(t, types.Black, next.SideToMove())
	assert.Equal(t, types.SqE3, next.EnPassantSquare())
	assert.Equal(t, types.MakeColoredPiece(types.White, types.Pawn), next.PieceOn(types.SqE4))
	assert.Equal(t, types.ColoredPieceNone, next.PieceOn(types.SqE2))
	assert.EqualValues(t, 0, next.HalfMoveClock())
	assert.EqualValues(t, 1, next.NextHalfMoveNumber())
}

func TestMakeBlackMoveIncrementsFullMove(t *testing.T) {
	p := NewPosition()
	p = p.Make(types.CreateMove(types.SqE2, types.SqE4))
	p = p.Make(types.CreateMove(types.SqE7, types.SqE5))
	assert.EqualValues(t, 2, p.NextHalfMoveNumber())
}

func TestMakeCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	next := p.Make(types.CreateMove(types.SqE4, types.SqE5))
	assert.Equal(t, types.MakeColoredPiece(types.White, types.Pawn), next.PieceOn(types.SqE5))
	assert.EqualValues(t, 0, next.HalfMoveClock())
}

func TestMakeEnPassant(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	next := p.Make(types.CreateEnPassantMove(types.SqE5, types.SqD6))
	assert.Equal(t, types.ColoredPieceNone, next.PieceOn(types.SqD5))
	assert.Equal(t, types.MakeColoredPiece(types.White, types.Pawn), next.PieceOn(types.SqD6))
}

func TestMakeCastlingKingSide(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	next := p.Make(types.CreateCastlingMove(types.SqE1, types.SqG1))
	assert.Equal(t, types.MakeColoredPiece(types.White, types.King), next.PieceOn(types.SqG1))
	assert.Equal(t, types.MakeColoredPiece(types.White, types.Rook), next.PieceOn(types.SqF1))
	assert.Equal(t, types.ColoredPieceNone, next.PieceOn(types.SqE1))
	assert.Equal(t, types.ColoredPieceNone, next.PieceOn(types.SqH1))
	assert.False(t, next.CastlingRights().Has(types.CastlingWhiteOO))
	assert.False(t, next.CastlingRights().Has(types.CastlingWhiteOOO))
}

func TestMakePromotion(t *testing.T) {
	p, err := NewPositionFen("8/4P3/8/8/8/8/4k3/4K3 w - - 0 1")
	require.NoError(t, err)
	next := p.Make(types.CreatePromotionMove(types.SqE7, types.SqE8, types.Queen))
	assert.Equal(t, types.MakeColoredPiece(types.White, types.Queen), next.PieceOn(types.SqE8))
}

func TestMakeRookMoveLosesCastlingRight(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	next := p.Make(types.CreateMove(types.SqH1, types.SqH2))
	assert.False(t, next.CastlingRights().Has(types.CastlingWhiteOO))
	assert.True(t, next.CastlingRights().Has(types.CastlingWhiteOOO))
}

func TestZobristKeyChangesAfterMove(t *testing.T) {
	p := NewPosition()
	next := p.Make(types.CreateMove(types.SqE2, types.SqE4))
	assert.NotEqual(t, p.ZobristKey(), next.ZobristKey())
}

func TestZobristKeyTranspositionConverges(t *testing.T) {
	p := NewPosition()
	viaE3 := p.Make(types.CreateMove(types.SqG1, types.SqF3)).Make(types.CreateMove(types.SqG8, types.SqF6))
	viaOther := p.Make(types.CreateMove(types.SqG8, types.SqF6)).Make(types.CreateMove(types.SqG1, types.SqF3))
	assert.Equal(t, viaE3.ZobristKey(), viaOther.ZobristKey())
}
