package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceIsValid(t *testing.T) {
	assert.True(t, King.IsValid())
	assert.True(t, Queen.IsValid())
	assert.False(t, PieceNone.IsValid())
	assert.False(t, PieceLen.IsValid())
}

func TestPieceIsSlider(t *testing.T) {
	assert.True(t, Bishop.IsSlider())
	assert.True(t, Rook.IsSlider())
	assert.True(t, Queen.IsSlider())
	assert.False(t, King.IsSlider())
	assert.False(t, Knight.IsSlider())
	assert.False(t, Pawn.IsSlider())
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, "K", King.Char())
	assert.Equal(t, "Q", Queen.Char())
	assert.Equal(t, "P", Pawn.Char())
	assert.Equal(t, "-", PieceNone.Char())
}

func TestMakeColoredPiece(t *testing.T) {
	wk := MakeColoredPiece(White, King)
	bq := MakeColoredPiece(Black, Queen)

	assert.Equal(t, White, wk.ColorOf())
	assert.Equal(t, King, wk.TypeOf())
	assert.Equal(t, Black, bq.ColorOf())
	assert.Equal(t, Queen, bq.TypeOf())

	assert.True(t, wk.IsValid())
	assert.False(t, ColoredPieceNone.IsValid())
}

func TestColoredPieceChar(t *testing.T) {
	assert.Equal(t, "K", MakeColoredPiece(White, King).Char())
	assert.Equal(t, "k", MakeColoredPiece(Black, King).Char())
	assert.Equal(t, "Q", MakeColoredPiece(White, Queen).Char())
	assert.Equal(t, "q", MakeColoredPiece(Black, Queen).Char())
}

func TestColoredPieceFromChar(t *testing.T) {
	assert.Equal(t, MakeColoredPiece(White, King), ColoredPieceFromChar('K'))
	assert.Equal(t, MakeColoredPiece(Black, Pawn), ColoredPieceFromChar('p'))
	assert.Equal(t, ColoredPieceNone, ColoredPieceFromChar('x'))
}
