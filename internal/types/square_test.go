package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareOf(t *testing.T) {
	assert.EqualValues(t, SqA1, SquareOf(FileA, Rank1))
	assert.EqualValues(t, SqH8, SquareOf(FileH, Rank8))
	assert.EqualValues(t, SqE4, SquareOf(FileE, Rank4))
}

func TestMakeSquare(t *testing.T) {
	require.Equal(t, SqE4, MakeSquare("e4"))
	require.Equal(t, SqA1, MakeSquare("a1"))
	require.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
	assert.Equal(t, SqNone, MakeSquare("e44"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFileRankOf(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqNone, SqH8.To(North))
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
}
