package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.Type())
	assert.True(t, m.IsValid())
}

func TestCreatePromotionMove(t *testing.T) {
	m := CreatePromotionMove(SqE7, SqE8, Queen)
	assert.Equal(t, Promotion, m.Type())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())
}

func TestCreateEnPassantMove(t *testing.T) {
	m := CreateEnPassantMove(SqE5, SqD6)
	assert.Equal(t, EnPassant, m.Type())
	assert.Equal(t, "e5d6", m.StringUci())
}

func TestCreateCastlingMove(t *testing.T) {
	m := CreateCastlingMove(SqE1, SqG1)
	assert.Equal(t, Castling, m.Type())
	assert.Equal(t, "e1g1", m.StringUci())
}

func TestMoveNone(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestMoveIsValidRejectsSameSquare(t *testing.T) {
	m := CreateMove(SqE4, SqE4)
	assert.False(t, m.IsValid())
}
