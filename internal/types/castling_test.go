package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRightsHasRemove(t *testing.T) {
	cr := CastlingAny
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.True(t, cr.Has(CastlingBlackOOO))

	cr.Remove(CastlingWhiteOO)
	assert.False(t, cr.Has(CastlingWhiteOO))
	assert.True(t, cr.Has(CastlingWhiteOOO))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "Kq", (CastlingWhiteOO | CastlingBlackOOO).String())
}

func TestCastlingRightsFromChar(t *testing.T) {
	assert.Equal(t, CastlingWhiteOO, CastlingRightsFromChar('K'))
	assert.Equal(t, CastlingBlackOOO, CastlingRightsFromChar('q'))
	assert.Equal(t, CastlingNone, CastlingRightsFromChar('x'))
}

func TestKingQueenSideRight(t *testing.T) {
	assert.Equal(t, CastlingWhiteOO, KingSideRight(White))
	assert.Equal(t, CastlingBlackOO, KingSideRight(Black))
	assert.Equal(t, CastlingWhiteOOO, QueenSideRight(White))
	assert.Equal(t, CastlingBlackOOO, QueenSideRight(Black))
	assert.Equal(t, CastlingWhite, RightsForColor(White))
	assert.Equal(t, CastlingBlack, RightsForColor(Black))
}
