package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/types"
)

func TestPerftStartPos(t *testing.T) {
	p := position.NewPosition()
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609}
	for depth, want := range expected {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

// Kiwipete, a position famous for exercising castling, en-passant and
// promotion edge cases in one spot.
func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	expected := []uint64{1, 48, 2039, 97862}
	for depth, want := range expected {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	p, err := position.NewPositionFen("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	expected := []uint64{1, 14, 191, 2812, 43238}
	for depth, want := range expected {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	expected := []uint64{1, 6, 264, 9467}
	for depth, want := range expected {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	p, err := position.NewPositionFen("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)
	expected := []uint64{1, 44, 1486, 62379}
	for depth, want := range expected {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

func TestGeneratePseudoLegalStartPosCount(t *testing.T) {
	p := position.NewPosition()
	moves := GeneratePseudoLegal(p)
	assert.Len(t, moves, 20)
}

func TestGenerateLegalExcludesMovesIntoCheck(t *testing.T) {
	// the white king on e1 is in check from the black rook on e8: stepping
	// to e2 stays on the attacked e-file and must not appear.
	p, err := position.NewPositionFen("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegal(p)
	for _, m := range moves {
		assert.NotEqual(t, types.SqE2, m.To(), "king must not move back onto the attacked e-file")
	}
}

func TestGenerateLegalCastlingBlockedByCheck(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/4R3/8/4K3 b kq - 0 1")
	require.NoError(t, err)
	moves := GenerateLegal(p)
	for _, m := range moves {
		if m.Type() == types.Castling {
			t.Fatalf("castling should be illegal while in check, got %s", m.StringUci())
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	p := position.NewPosition()
	div := Divide(p, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	assert.Equal(t, Perft(p, 3), sum)
}
