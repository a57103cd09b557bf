package game

import (
	"strings"
	"testing"

	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession([]string{" Anna ", "", "Bert"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Player 2", "Bert"}, s.Players)
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Rounds)

	_, err = NewSession([]string{"a", "b"})
	assert.Equal(t, errutil.ErrIllegalPlayerCount, err)

	_, err = NewSession(make([]string, 7))
	assert.Equal(t, errutil.ErrIllegalPlayerCount, err)

	_, err = NewSession([]string{"a", "b", strings.Repeat("x", constant.MaxNameLength+1)})
	assert.Equal(t, errutil.ErrIllegalName, err)

	s, err = NewSession([]string{"a", "b", strings.Repeat("ü", constant.MaxNameLength)})
	require.NoError(t, err)
	assert.Len(t, s.Players, 3)
}

func TestAddRound(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	i, err := s.AddRound(constant.RoundNormal)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	nr, ok := s.Rounds[0].(*scoring.NormalRound)
	require.True(t, ok)
	assert.Len(t, nr.CardPoints, 4)

	i, err = s.AddRound(constant.RoundStalemate)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, constant.RoundStalemate, s.Rounds[1].Kind())
}

func TestStrictAppend(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c"})
	require.NoError(t, err)
	s.StrictAppend = true

	_, err = s.AddRound(constant.RoundNormal)
	require.NoError(t, err)
	_, err = s.AddRound(constant.RoundNormal)
	assert.Equal(t, errutil.ErrRoundIncomplete, err)

	chief, trump, bid := scoring.SeatAt(0), scoring.TrumpRed, scoring.Num(3)
	err = s.UpdateNormal(0, NormalPatch{
		Chief:      &chief,
		ChiefTrump: &trump,
		Bid:        &bid,
		CardPoints: map[int]scoring.Number{0: scoring.Num(16), 1: scoring.Num(10), 2: scoring.Num(10)},
	})
	require.NoError(t, err)
	assert.True(t, s.LastRoundValid())

	_, err = s.AddRound(constant.RoundNormal)
	assert.NoError(t, err)
	assert.Len(t, s.Rounds, 2)
}

func TestRemoveRound(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c"})
	require.NoError(t, err)
	s.AddRound(constant.RoundNormal)
	s.AddRound(constant.RoundStalemate)
	s.AddRound(constant.RoundNormal)

	assert.Equal(t, errutil.ErrRoundNotFound, s.RemoveRound(3))
	assert.Equal(t, errutil.ErrRoundNotFound, s.RemoveRound(-1))

	require.NoError(t, s.RemoveRound(0))
	assert.Len(t, s.Rounds, 2)
	assert.Equal(t, constant.RoundStalemate, s.Rounds[0].Kind())
}

func TestSessionTotals(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)

	require.NoError(t, s.AppendRound(&scoring.StalemateRound{
		Tied:        []int{1, 2, 3},
		Provocateur: scoring.SeatAt(2),
		CardsBid:    scoring.Num(4),
	}))
	// incomplete, skipped
	s.AddRound(constant.RoundNormal)
	require.NoError(t, s.AppendRound(&scoring.StalemateRound{
		Tied:        []int{0, 4},
		Provocateur: scoring.SeatAt(0),
		CardsBid:    scoring.Num(1),
	}))

	assert.Equal(t, []int{0, 20, -40, 20, 0}, s.Subtotals(0))
	assert.Equal(t, []int{0, 20, -40, 20, 0}, s.Subtotals(1))
	assert.Equal(t, []int{-10, 20, -40, 20, 5}, s.Totals())
	assert.Len(t, s.Results(), 3)
	assert.False(t, s.Results()[1].Valid())

	assert.Equal(t, errutil.ErrInvalidParameter, s.AppendRound(nil))
	var nr *scoring.NormalRound
	assert.Equal(t, errutil.ErrInvalidParameter, s.AppendRound(nr))
}

func TestSessionClone(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c"})
	require.NoError(t, err)
	s.AddRound(constant.RoundNormal)

	c := s.Clone()
	c.Players[0] = "z"
	c.Rounds[0].(*scoring.NormalRound).Bid = scoring.Num(2)
	c.Rounds = append(c.Rounds, scoring.NewRound(constant.RoundStalemate, 3))

	assert.Equal(t, "a", s.Players[0])
	assert.False(t, s.Rounds[0].(*scoring.NormalRound).Bid.Valid)
	assert.Len(t, s.Rounds, 1)
}

func TestSheet(t *testing.T) {
	s, err := NewSession([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, s.AppendRound(&scoring.NormalRound{
		Chief:      scoring.SeatAt(0),
		ChiefTrump: scoring.TrumpRed,
		Bid:        scoring.Num(3),
		CardPoints: scoring.Nums(16, 10, 10),
	}))
	s.AddRound(constant.RoundNormal)
	require.NoError(t, s.AppendRound(&scoring.StalemateRound{
		Tied:        []int{0, 1},
		Provocateur: scoring.SeatAt(1),
		CardsBid:    scoring.Num(2),
	}))

	sheet := s.Sheet()
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, 1, sheet.Rows[0].Number)
	assert.True(t, sheet.Rows[0].Valid)
	assert.Equal(t, []int{46, 10, 10}, sheet.Rows[0].Subtotal)
	assert.False(t, sheet.Rows[1].Valid)
	assert.Equal(t, []int{46, 10, 10}, sheet.Rows[1].Subtotal)
	assert.Equal(t, constant.RoundStalemate, sheet.Rows[2].Kind)
	assert.Equal(t, []int{56, -10, 10}, sheet.Total)

	empty, err := NewSession([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, empty.Sheet().Total)
}
