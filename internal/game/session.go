package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/room"
	"github.com/pborman/uuid"
)

// Session is one evening at the table: the players in seating order and
// every round entered so far. A Session is not safe for concurrent use, the
// Manager serializes access to the sessions it owns.
type Session struct {
	ID        string
	Number    room.Number
	Players   []string
	Rounds    []scoring.Round
	CreatedAt time.Time
	UpdatedAt time.Time

	// StrictAppend refuses new rounds while the last one has problems.
	StrictAppend bool
}

// NewSession creates a session for 3 to 6 players. Names are trimmed, a
// blank name becomes "Player N".
func NewSession(names []string) (*Session, error) {
	if len(names) < constant.MinPlayers || len(names) > constant.MaxPlayers {
		return nil, errutil.ErrIllegalPlayerCount
	}

	players := make([]string, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		if utf8.RuneCountInString(name) > constant.MaxNameLength {
			return nil, errutil.ErrIllegalName
		}
		players[i] = name
	}

	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Players:   players,
		Rounds:    []scoring.Round{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PlayerCount returns the number of players.
func (s *Session) PlayerCount() int {
	return len(s.Players)
}

// AddRound appends a blank round of kind and returns its index.
func (s *Session) AddRound(kind constant.RoundKind) (int, error) {
	if s.StrictAppend && !s.LastRoundValid() {
		return 0, errutil.ErrRoundIncomplete
	}
	s.Rounds = append(s.Rounds, scoring.NewRound(kind, s.PlayerCount()))
	return len(s.Rounds) - 1, nil
}

// AppendRound appends a copy of a fully built round, as read from a score
// file. Strict append does not apply.
func (s *Session) AppendRound(r scoring.Round) error {
	if r == nil {
		return errutil.ErrInvalidParameter
	}
	switch r := r.(type) {
	case *scoring.NormalRound:
		if r == nil {
			return errutil.ErrInvalidParameter
		}
	case *scoring.StalemateRound:
		if r == nil {
			return errutil.ErrInvalidParameter
		}
	}
	s.Rounds = append(s.Rounds, r.Clone())
	return nil
}

// RemoveRound deletes round i, later rounds move up by one.
func (s *Session) RemoveRound(i int) error {
	if i < 0 || i >= len(s.Rounds) {
		return errutil.ErrRoundNotFound
	}
	s.Rounds = append(s.Rounds[:i], s.Rounds[i+1:]...)
	return nil
}

// Round returns round i.
func (s *Session) Round(i int) (scoring.Round, error) {
	if i < 0 || i >= len(s.Rounds) {
		return nil, errutil.ErrRoundNotFound
	}
	return s.Rounds[i], nil
}

// LastRoundValid reports whether the most recent round scores without
// problems. An empty session counts as valid.
func (s *Session) LastRoundValid() bool {
	if len(s.Rounds) == 0 {
		return true
	}
	return scoring.Score(s.Rounds[len(s.Rounds)-1], s.PlayerCount()).Valid()
}

// Results scores every round.
func (s *Session) Results() []scoring.Result {
	results := make([]scoring.Result, len(s.Rounds))
	for i, r := range s.Rounds {
		results[i] = scoring.Score(r, s.PlayerCount())
	}
	return results
}

// Subtotals adds up the valid rounds through index upto.
func (s *Session) Subtotals(upto int) []int {
	return scoring.Subtotals(s.Rounds, s.PlayerCount(), upto)
}

// Totals adds up every valid round.
func (s *Session) Totals() []int {
	return scoring.Totals(s.Rounds, s.PlayerCount())
}

// RunningTotals returns the subtotal after each round.
func (s *Session) RunningTotals() [][]int {
	return scoring.RunningTotals(s.Rounds, s.PlayerCount())
}

// Clone returns a deep copy that shares nothing with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Players = append([]string(nil), s.Players...)
	c.Rounds = make([]scoring.Round, len(s.Rounds))
	for i, r := range s.Rounds {
		c.Rounds[i] = r.Clone()
	}
	return &c
}
